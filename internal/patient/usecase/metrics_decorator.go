package usecase

import (
	"context"
	"time"

	"github.com/allisson/mediport/internal/metrics"
	patientDomain "github.com/allisson/mediport/internal/patient/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

// patientUseCaseWithMetrics decorates PatientUseCase with metrics instrumentation.
type patientUseCaseWithMetrics struct {
	next    PatientUseCase
	metrics metrics.BusinessMetrics
}

// NewPatientUseCaseWithMetrics wraps a PatientUseCase with metrics recording.
func NewPatientUseCaseWithMetrics(useCase PatientUseCase, m metrics.BusinessMetrics) PatientUseCase {
	return &patientUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *patientUseCaseWithMetrics) List(
	ctx context.Context,
	principal *sessionDomain.Principal,
	filter patientDomain.Filter,
) ([]*patientDomain.Patient, error) {
	start := time.Now()
	patients, err := p.next.List(ctx, principal, filter)
	p.record(ctx, "list", start, err)
	return patients, err
}

func (p *patientUseCaseWithMetrics) Get(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
) (*patientDomain.Patient, error) {
	start := time.Now()
	patient, err := p.next.Get(ctx, principal, id)
	p.record(ctx, "get", start, err)
	return patient, err
}

func (p *patientUseCaseWithMetrics) FindByBed(
	ctx context.Context,
	principal *sessionDomain.Principal,
	bedID string,
) (*patientDomain.Patient, error) {
	start := time.Now()
	patient, err := p.next.FindByBed(ctx, principal, bedID)
	p.record(ctx, "find_by_bed", start, err)
	return patient, err
}

func (p *patientUseCaseWithMetrics) Create(
	ctx context.Context,
	principal *sessionDomain.Principal,
	patient *patientDomain.Patient,
) (*patientDomain.Patient, error) {
	start := time.Now()
	created, err := p.next.Create(ctx, principal, patient)
	p.record(ctx, "create", start, err)
	return created, err
}

func (p *patientUseCaseWithMetrics) Update(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
	patient *patientDomain.Patient,
) (*patientDomain.Patient, error) {
	start := time.Now()
	updated, err := p.next.Update(ctx, principal, id, patient)
	p.record(ctx, "update", start, err)
	return updated, err
}

func (p *patientUseCaseWithMetrics) Discharge(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
) error {
	start := time.Now()
	err := p.next.Discharge(ctx, principal, id)
	p.record(ctx, "discharge", start, err)
	return err
}

func (p *patientUseCaseWithMetrics) AssignBed(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
	assignment patientDomain.BedAssignment,
) (*patientDomain.Patient, error) {
	start := time.Now()
	patient, err := p.next.AssignBed(ctx, principal, id, assignment)
	p.record(ctx, "assign_bed", start, err)
	return patient, err
}

func (p *patientUseCaseWithMetrics) AddPrescription(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
	prescription *patientDomain.Prescription,
) (*patientDomain.Prescription, error) {
	start := time.Now()
	created, err := p.next.AddPrescription(ctx, principal, id, prescription)
	p.record(ctx, "add_prescription", start, err)
	return created, err
}

func (p *patientUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusOf(err)
	p.metrics.RecordOperation(ctx, "patient", operation, status)
	p.metrics.RecordDuration(ctx, "patient", operation, time.Since(start), status)
}
