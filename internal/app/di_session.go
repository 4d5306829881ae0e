package app

import (
	"context"
	"fmt"
	"sync"

	sessionHTTP "github.com/allisson/mediport/internal/session/http"
	sessionRepository "github.com/allisson/mediport/internal/session/repository"
	sessionService "github.com/allisson/mediport/internal/session/service"
	sessionUseCase "github.com/allisson/mediport/internal/session/usecase"
	"github.com/allisson/mediport/internal/session/store"
)

type sessionComponents struct {
	tokenService      sessionService.TokenService
	credentialCipher  sessionService.CredentialCipher
	sessionRepository sessionUseCase.SessionRepository
	sessionUseCase    sessionUseCase.SessionUseCase
	sessionStore      *store.FileStore

	tokenServiceInit      sync.Once
	credentialCipherInit  sync.Once
	sessionRepositoryInit sync.Once
	sessionUseCaseInit    sync.Once
	sessionStoreInit      sync.Once
}

// TokenService returns the session token generator.
func (c *Container) TokenService() sessionService.TokenService {
	c.tokenServiceInit.Do(func() {
		c.tokenService = sessionService.NewTokenService()
	})
	return c.tokenService
}

// CredentialCipher returns the keeper encrypting remote credentials at rest.
func (c *Container) CredentialCipher() (sessionService.CredentialCipher, error) {
	var err error
	c.credentialCipherInit.Do(func() {
		c.credentialCipher, err = sessionService.NewCredentialCipher(context.Background(), c.config.SessionKeeperURI)
		if err != nil {
			c.initErrors["credentialCipher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialCipher"]; exists {
		return nil, storedErr
	}
	return c.credentialCipher, nil
}

// SessionRepository returns the session repository for the configured database driver.
func (c *Container) SessionRepository() (sessionUseCase.SessionRepository, error) {
	var err error
	c.sessionRepositoryInit.Do(func() {
		c.sessionRepository, err = c.initSessionRepository()
		if err != nil {
			c.initErrors["sessionRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionRepository"]; exists {
		return nil, storedErr
	}
	return c.sessionRepository, nil
}

// SessionUseCase returns the session use case, wrapped with metrics when enabled.
func (c *Container) SessionUseCase() (sessionUseCase.SessionUseCase, error) {
	var err error
	c.sessionUseCaseInit.Do(func() {
		c.sessionUseCase, err = c.initSessionUseCase()
		if err != nil {
			c.initErrors["sessionUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionUseCase"]; exists {
		return nil, storedErr
	}
	return c.sessionUseCase, nil
}

// SessionStore returns the CLI credential file store.
func (c *Container) SessionStore() (*store.FileStore, error) {
	var err error
	c.sessionStoreInit.Do(func() {
		c.sessionStore, err = store.NewFileStore(c.config.SessionStorePath)
		if err != nil {
			c.initErrors["sessionStore"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionStore"]; exists {
		return nil, storedErr
	}
	return c.sessionStore, nil
}

func (c *Container) initSessionRepository() (sessionUseCase.SessionRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for session repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return sessionRepository.NewMySQLSessionRepository(db), nil
	case "postgres":
		return sessionRepository.NewPostgreSQLSessionRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initSessionUseCase() (sessionUseCase.SessionUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for session use case: %w", err)
	}

	sessionRepo, err := c.SessionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get session repository for session use case: %w", err)
	}

	apiClient, err := c.APIClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get api client for session use case: %w", err)
	}

	auditLogUseCase, err := c.AuditLogUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log use case for session use case: %w", err)
	}

	cipher, err := c.CredentialCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential cipher for session use case: %w", err)
	}

	baseUseCase := sessionUseCase.NewSessionUseCase(
		c.config,
		txManager,
		sessionRepo,
		apiClient,
		auditLogUseCase,
		c.TokenService(),
		cipher,
		c.Policy(),
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for session use case: %w", err)
		}
		return sessionUseCase.NewSessionUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) sessionHandler(useCase sessionUseCase.SessionUseCase) *sessionHTTP.SessionHandler {
	return sessionHTTP.NewSessionHandler(useCase, c.Policy(), c.Logger())
}
