package usecase

import (
	"context"
	"time"

	medicationDomain "github.com/allisson/mediport/internal/medication/domain"
	"github.com/allisson/mediport/internal/metrics"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

// medicationUseCaseWithMetrics decorates MedicationUseCase with metrics instrumentation.
type medicationUseCaseWithMetrics struct {
	next    MedicationUseCase
	metrics metrics.BusinessMetrics
}

// NewMedicationUseCaseWithMetrics wraps a MedicationUseCase with metrics recording.
func NewMedicationUseCaseWithMetrics(useCase MedicationUseCase, m metrics.BusinessMetrics) MedicationUseCase {
	return &medicationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (m *medicationUseCaseWithMetrics) List(
	ctx context.Context,
	principal *sessionDomain.Principal,
	search string,
) ([]*medicationDomain.Medication, error) {
	start := time.Now()
	medications, err := m.next.List(ctx, principal, search)
	m.record(ctx, "list", start, err)
	return medications, err
}

func (m *medicationUseCaseWithMetrics) Get(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
) (*medicationDomain.Medication, error) {
	start := time.Now()
	medication, err := m.next.Get(ctx, principal, id)
	m.record(ctx, "get", start, err)
	return medication, err
}

func (m *medicationUseCaseWithMetrics) Create(
	ctx context.Context,
	principal *sessionDomain.Principal,
	medication *medicationDomain.Medication,
) (*medicationDomain.Medication, error) {
	start := time.Now()
	created, err := m.next.Create(ctx, principal, medication)
	m.record(ctx, "create", start, err)
	return created, err
}

func (m *medicationUseCaseWithMetrics) Update(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
	medication *medicationDomain.Medication,
) (*medicationDomain.Medication, error) {
	start := time.Now()
	updated, err := m.next.Update(ctx, principal, id, medication)
	m.record(ctx, "update", start, err)
	return updated, err
}

func (m *medicationUseCaseWithMetrics) Delete(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
) error {
	start := time.Now()
	err := m.next.Delete(ctx, principal, id)
	m.record(ctx, "delete", start, err)
	return err
}

func (m *medicationUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusOf(err)
	m.metrics.RecordOperation(ctx, "medication", operation, status)
	m.metrics.RecordDuration(ctx, "medication", operation, time.Since(start), status)
}
