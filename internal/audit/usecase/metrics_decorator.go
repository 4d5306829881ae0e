package usecase

import (
	"context"
	"time"

	auditDomain "github.com/allisson/mediport/internal/audit/domain"
	"github.com/allisson/mediport/internal/metrics"
)

// auditLogUseCaseWithMetrics decorates AuditLogUseCase with metrics instrumentation.
type auditLogUseCaseWithMetrics struct {
	next    AuditLogUseCase
	metrics metrics.BusinessMetrics
}

// NewAuditLogUseCaseWithMetrics wraps an AuditLogUseCase with metrics recording.
func NewAuditLogUseCaseWithMetrics(useCase AuditLogUseCase, m metrics.BusinessMetrics) AuditLogUseCase {
	return &auditLogUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (a *auditLogUseCaseWithMetrics) Record(ctx context.Context, auditLog *auditDomain.AuditLog) error {
	start := time.Now()
	err := a.next.Record(ctx, auditLog)
	a.record(ctx, "audit_log_record", start, err)
	return err
}

func (a *auditLogUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
	createdAtFrom, createdAtTo *time.Time,
) ([]*auditDomain.AuditLog, error) {
	start := time.Now()
	auditLogs, err := a.next.List(ctx, offset, limit, createdAtFrom, createdAtTo)
	a.record(ctx, "audit_log_list", start, err)
	return auditLogs, err
}

func (a *auditLogUseCaseWithMetrics) DeleteOlderThan(ctx context.Context, days int, dryRun bool) (int64, error) {
	start := time.Now()
	count, err := a.next.DeleteOlderThan(ctx, days, dryRun)
	a.record(ctx, "audit_log_delete", start, err)
	return count, err
}

func (a *auditLogUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusOf(err)
	a.metrics.RecordOperation(ctx, "audit", operation, status)
	a.metrics.RecordDuration(ctx, "audit", operation, time.Since(start), status)
}
