// Package http provides the gateway HTTP server, its router and shared middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	auditHTTP "github.com/allisson/mediport/internal/audit/http"
	"github.com/allisson/mediport/internal/config"
	medicationHTTP "github.com/allisson/mediport/internal/medication/http"
	"github.com/allisson/mediport/internal/metrics"
	patientHTTP "github.com/allisson/mediport/internal/patient/http"
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
	rbacHTTP "github.com/allisson/mediport/internal/rbac/http"
	sessionHTTP "github.com/allisson/mediport/internal/session/http"
	sessionUseCase "github.com/allisson/mediport/internal/session/usecase"
	userHTTP "github.com/allisson/mediport/internal/user/http"
)

// Server represents the gateway HTTP server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// Handlers groups the HTTP handlers mounted by SetupRouter.
type Handlers struct {
	Session    *sessionHTTP.SessionHandler
	Permission *rbacHTTP.PermissionHandler
	Patient    *patientHTTP.PatientHandler
	Medication *medicationHTTP.MedicationHandler
	User       *userHTTP.UserHandler
	AuditLog   *auditHTTP.AuditLogHandler
}

// NewServer creates a new HTTP server. The router is installed by SetupRouter.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin router with every gateway route. ctx bounds the rate limiter
// cleanup goroutines and should be the server lifetime context.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	handlers Handlers,
	sessionUseCase sessionUseCase.SessionUseCase,
	authorizer *rbacHTTP.Authorizer,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(RequestIDContextMiddleware())
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(
			metricsProvider.MeterProvider(),
			cfg.MetricsNamespace,
			"/health",
			"/ready",
		))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	login := []gin.HandlerFunc{}
	if cfg.RateLimitLoginEnabled {
		login = append(login, sessionHTTP.LoginRateLimitMiddleware(
			ctx,
			cfg.RateLimitLoginRequestsPerSec,
			cfg.RateLimitLoginBurst,
			s.logger,
		))
	}
	login = append(login, handlers.Session.LoginHandler)
	v1.POST("/auth/login", login...)

	authenticated := v1.Group("")
	authenticated.Use(sessionHTTP.AuthenticationMiddleware(sessionUseCase, s.logger))
	if cfg.RateLimitEnabled {
		authenticated.Use(sessionHTTP.RateLimitMiddleware(
			ctx,
			cfg.RateLimitRequestsPerSec,
			cfg.RateLimitBurst,
			s.logger,
		))
	}

	authenticated.POST("/auth/logout", handlers.Session.LogoutHandler)
	authenticated.GET("/auth/me", handlers.Session.MeHandler)

	authenticated.GET("/roles",
		authorizer.RequireCapability(rbacDomain.ManageUsers),
		handlers.Permission.RolesHandler)
	authenticated.GET("/permissions", handlers.Permission.PermissionsHandler)
	authenticated.POST("/permissions/check", handlers.Permission.CheckHandler)

	patients := authenticated.Group("/patients")
	{
		patients.GET("",
			authorizer.RequireCapability(rbacDomain.ViewPatients),
			handlers.Patient.ListHandler)
		patients.POST("",
			authorizer.RequireAnyCapability(rbacDomain.AddPatients, rbacDomain.ManagePatients),
			handlers.Patient.CreateHandler)
		patients.GET("/:id",
			authorizer.RequireCapability(rbacDomain.ViewPatients),
			handlers.Patient.GetHandler)
		patients.PUT("/:id",
			authorizer.RequireCapability(rbacDomain.ManagePatients),
			handlers.Patient.UpdateHandler)
		patients.DELETE("/:id",
			authorizer.RequireAnyCapability(rbacDomain.AssignBeds, rbacDomain.ManagePatients),
			handlers.Patient.DischargeHandler)
		patients.PUT("/:id/bed",
			authorizer.RequireCapability(rbacDomain.AssignBeds),
			handlers.Patient.AssignBedHandler)
		patients.POST("/:id/prescriptions",
			authorizer.RequireAllCapabilities(rbacDomain.ManagePatients, rbacDomain.ViewMedications),
			handlers.Patient.AddPrescriptionHandler)
	}

	authenticated.GET("/beds/:bedId/patient",
		authorizer.RequireCapability(rbacDomain.ViewPatients),
		handlers.Patient.BedHandler)

	medications := authenticated.Group("/medications")
	{
		medications.GET("",
			authorizer.RequireCapability(rbacDomain.ViewMedications),
			handlers.Medication.ListHandler)
		medications.POST("",
			authorizer.RequireCapability(rbacDomain.ManageMedications),
			handlers.Medication.CreateHandler)
		medications.GET("/:id",
			authorizer.RequireCapability(rbacDomain.ViewMedications),
			handlers.Medication.GetHandler)
		medications.PUT("/:id",
			authorizer.RequireCapability(rbacDomain.ManageMedications),
			handlers.Medication.UpdateHandler)
		medications.DELETE("/:id",
			authorizer.RequireCapability(rbacDomain.ManageMedications),
			handlers.Medication.DeleteHandler)
	}

	users := authenticated.Group("/users")
	users.Use(authorizer.RequireCapability(rbacDomain.ManageUsers))
	{
		users.GET("", handlers.User.ListHandler)
		users.PATCH("/:id/status", handlers.User.SetStatusHandler)
	}

	authenticated.GET("/audit-logs",
		authorizer.RequireCapability(rbacDomain.ViewLogs),
		handlers.AuditLog.ListHandler)

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server. SetupRouter must be called first.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports ready once the session database answers a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}

	if s.db == nil {
		components["database"] = "error"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("readiness check failed", slog.Any("error", err))
			components["database"] = "error"
		}
	}

	if components["database"] != "ok" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}
