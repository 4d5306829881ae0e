// Package usecase implements business logic for audit logs.
package usecase

import (
	"context"
	"time"

	auditDomain "github.com/allisson/mediport/internal/audit/domain"
)

// AuditLogRepository defines persistence operations for audit logs.
// Implementations must support transaction-aware operations via context propagation.
type AuditLogRepository interface {
	Create(ctx context.Context, auditLog *auditDomain.AuditLog) error
	List(ctx context.Context, offset, limit int, createdAtFrom, createdAtTo *time.Time) ([]*auditDomain.AuditLog, error)
	DeleteOlderThan(ctx context.Context, olderThan time.Time, dryRun bool) (int64, error)
}

// AuditLogUseCase defines business logic operations for audit logs.
type AuditLogUseCase interface {
	// Record persists auditLog, assigning its ID, creation time and, when the context
	// carries one, the gateway request id.
	Record(ctx context.Context, auditLog *auditDomain.AuditLog) error

	// List returns audit logs newest first. Both time boundaries are inclusive; nil means unbounded.
	List(ctx context.Context, offset, limit int, createdAtFrom, createdAtTo *time.Time) ([]*auditDomain.AuditLog, error)

	// DeleteOlderThan removes audit logs older than days. With dryRun it only counts them.
	DeleteOlderThan(ctx context.Context, days int, dryRun bool) (int64, error)
}
