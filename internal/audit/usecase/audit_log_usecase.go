package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/allisson/mediport/internal/audit/domain"
	apperrors "github.com/allisson/mediport/internal/errors"
	"github.com/allisson/mediport/internal/httputil"
)

// auditLogUseCase implements AuditLogUseCase.
type auditLogUseCase struct {
	auditLogRepo AuditLogRepository
}

func (a *auditLogUseCase) Record(ctx context.Context, auditLog *auditDomain.AuditLog) error {
	auditLog.ID = uuid.Must(uuid.NewV7())
	auditLog.CreatedAt = time.Now().UTC()
	if auditLog.RequestID == "" {
		if requestID, ok := httputil.GetRequestID(ctx); ok {
			auditLog.RequestID = requestID
		}
	}
	if auditLog.Capabilities == nil {
		auditLog.Capabilities = []string{}
	}

	if err := a.auditLogRepo.Create(ctx, auditLog); err != nil {
		return apperrors.Wrap(err, "failed to record audit log")
	}
	return nil
}

func (a *auditLogUseCase) List(
	ctx context.Context,
	offset, limit int,
	createdAtFrom, createdAtTo *time.Time,
) ([]*auditDomain.AuditLog, error) {
	auditLogs, err := a.auditLogRepo.List(ctx, offset, limit, createdAtFrom, createdAtTo)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list audit logs")
	}
	return auditLogs, nil
}

func (a *auditLogUseCase) DeleteOlderThan(ctx context.Context, days int, dryRun bool) (int64, error) {
	if days < 0 {
		return 0, apperrors.Wrapf(apperrors.ErrInvalidInput, "days must be a positive number, got: %d", days)
	}

	olderThan := time.Now().UTC().AddDate(0, 0, -days)

	count, err := a.auditLogRepo.DeleteOlderThan(ctx, olderThan, dryRun)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete audit logs")
	}
	return count, nil
}

// NewAuditLogUseCase creates a new AuditLogUseCase with the provided dependencies.
func NewAuditLogUseCase(auditLogRepo AuditLogRepository) AuditLogUseCase {
	return &auditLogUseCase{auditLogRepo: auditLogRepo}
}
