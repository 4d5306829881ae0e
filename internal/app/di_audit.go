package app

import (
	"fmt"
	"sync"

	auditHTTP "github.com/allisson/mediport/internal/audit/http"
	auditRepository "github.com/allisson/mediport/internal/audit/repository"
	auditUseCase "github.com/allisson/mediport/internal/audit/usecase"
)

type auditComponents struct {
	auditLogRepository auditUseCase.AuditLogRepository
	auditLogUseCase    auditUseCase.AuditLogUseCase

	auditLogRepositoryInit sync.Once
	auditLogUseCaseInit    sync.Once
}

// AuditLogRepository returns the audit log repository for the configured database driver.
func (c *Container) AuditLogRepository() (auditUseCase.AuditLogRepository, error) {
	var err error
	c.auditLogRepositoryInit.Do(func() {
		c.auditLogRepository, err = c.initAuditLogRepository()
		if err != nil {
			c.initErrors["auditLogRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auditLogRepository"]; exists {
		return nil, storedErr
	}
	return c.auditLogRepository, nil
}

// AuditLogUseCase returns the audit log use case, wrapped with metrics when enabled.
func (c *Container) AuditLogUseCase() (auditUseCase.AuditLogUseCase, error) {
	var err error
	c.auditLogUseCaseInit.Do(func() {
		c.auditLogUseCase, err = c.initAuditLogUseCase()
		if err != nil {
			c.initErrors["auditLogUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auditLogUseCase"]; exists {
		return nil, storedErr
	}
	return c.auditLogUseCase, nil
}

func (c *Container) initAuditLogRepository() (auditUseCase.AuditLogRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for audit log repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return auditRepository.NewMySQLAuditLogRepository(db), nil
	case "postgres":
		return auditRepository.NewPostgreSQLAuditLogRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initAuditLogUseCase() (auditUseCase.AuditLogUseCase, error) {
	auditLogRepo, err := c.AuditLogRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log repository for audit log use case: %w", err)
	}

	baseUseCase := auditUseCase.NewAuditLogUseCase(auditLogRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for audit log use case: %w", err)
		}
		return auditUseCase.NewAuditLogUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) auditLogHandler(useCase auditUseCase.AuditLogUseCase) *auditHTTP.AuditLogHandler {
	return auditHTTP.NewAuditLogHandler(useCase, c.Logger())
}
