// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/mediport/internal/apiclient"
	"github.com/allisson/mediport/internal/config"
	"github.com/allisson/mediport/internal/database"
	"github.com/allisson/mediport/internal/http"
	"github.com/allisson/mediport/internal/metrics"
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
	rbacHTTP "github.com/allisson/mediport/internal/rbac/http"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	remoteMetrics   metrics.RemoteMetrics
	apiClient       *apiclient.Client
	policy          *rbacDomain.Policy

	// Managers
	txManager database.TxManager

	// Session components
	sessionComponents

	// Audit components
	auditComponents

	// Records components
	recordsComponents

	// Servers
	authorizer    *rbacHTTP.Authorizer
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	txManagerInit       sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	remoteMetricsInit   sync.Once
	apiClientInit       sync.Once
	policyInit          sync.Once
	authorizerInit      sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// Policy returns the role permission policy.
func (c *Container) Policy() *rbacDomain.Policy {
	c.policyInit.Do(func() {
		c.policy = rbacDomain.DefaultPolicy()
	})
	return c.policy
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.initErrors["db"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// MetricsProvider returns the OpenTelemetry metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		c.metricsProvider, err = metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. It is a no-op when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// RemoteMetrics returns the recorder of remote API calls. It is a no-op when metrics are disabled.
func (c *Container) RemoteMetrics() (metrics.RemoteMetrics, error) {
	var err error
	c.remoteMetricsInit.Do(func() {
		c.remoteMetrics, err = c.initRemoteMetrics()
		if err != nil {
			c.initErrors["remoteMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["remoteMetrics"]; exists {
		return nil, storedErr
	}
	return c.remoteMetrics, nil
}

// APIClient returns the remote records API client.
func (c *Container) APIClient() (*apiclient.Client, error) {
	var err error
	c.apiClientInit.Do(func() {
		c.apiClient, err = c.initAPIClient()
		if err != nil {
			c.initErrors["apiClient"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["apiClient"]; exists {
		return nil, storedErr
	}
	return c.apiClient, nil
}

// Authorizer returns the capability gate factory used by the router.
func (c *Container) Authorizer() (*rbacHTTP.Authorizer, error) {
	var err error
	c.authorizerInit.Do(func() {
		c.authorizer, err = c.initAuthorizer()
		if err != nil {
			c.initErrors["authorizer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authorizer"]; exists {
		return nil, storedErr
	}
	return c.authorizer, nil
}

// HTTPServer returns the gateway HTTP server with its router configured. ctx bounds the
// background goroutines of the router and should live as long as the server.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer(ctx)
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.credentialCipher != nil {
		if err := c.credentialCipher.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("session keeper close: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(context.Background(), database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}
	return metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
}

func (c *Container) initRemoteMetrics() (metrics.RemoteMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for remote metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpRemoteMetrics(), nil
	}
	return metrics.NewRemoteMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
}

func (c *Container) initAPIClient() (*apiclient.Client, error) {
	remoteMetrics, err := c.RemoteMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get remote metrics for api client: %w", err)
	}

	client, err := apiclient.New(apiclient.Config{
		BaseURL:      c.config.RemoteAPIBaseURL,
		Timeout:      c.config.RemoteAPITimeout,
		RetryMax:     c.config.RemoteAPIRetryMax,
		RetryWaitMin: c.config.RemoteAPIRetryWaitMin,
		RetryWaitMax: c.config.RemoteAPIRetryWaitMax,
	}, remoteMetrics, c.Logger())
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}
	return client, nil
}

func (c *Container) initAuthorizer() (*rbacHTTP.Authorizer, error) {
	auditLogUseCase, err := c.AuditLogUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log use case for authorizer: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for authorizer: %w", err)
	}

	return rbacHTTP.NewAuthorizer(c.Policy(), auditLogUseCase, businessMetrics, c.Logger()), nil
}

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer(ctx context.Context) (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	sessionUseCase, err := c.SessionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get session use case for http server: %w", err)
	}

	auditLogUseCase, err := c.AuditLogUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log use case for http server: %w", err)
	}

	patientUseCase, err := c.PatientUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get patient use case for http server: %w", err)
	}

	medicationUseCase, err := c.MedicationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get medication use case for http server: %w", err)
	}

	userUseCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for http server: %w", err)
	}

	authorizer, err := c.Authorizer()
	if err != nil {
		return nil, fmt.Errorf("failed to get authorizer for http server: %w", err)
	}

	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(ctx, c.config, http.Handlers{
		Session:    c.sessionHandler(sessionUseCase),
		Permission: c.permissionHandler(),
		Patient:    c.patientHandler(patientUseCase),
		Medication: c.medicationHandler(medicationUseCase),
		User:       c.userHandler(userUseCase),
		AuditLog:   c.auditLogHandler(auditLogUseCase),
	}, sessionUseCase, authorizer, metricsProvider)

	return server, nil
}

func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}
	if provider == nil {
		return nil, nil
	}
	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
