package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/allisson/mediport/internal/errors"
	patientDomain "github.com/allisson/mediport/internal/patient/domain"
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

var (
	requireView            = rbacDomain.Require(rbacDomain.ViewPatients)
	requireAdmit           = rbacDomain.RequireAny(rbacDomain.AddPatients, rbacDomain.ManagePatients)
	requireManage          = rbacDomain.Require(rbacDomain.ManagePatients)
	requireDischarge       = rbacDomain.RequireAny(rbacDomain.AssignBeds, rbacDomain.ManagePatients)
	requireAssignBed       = rbacDomain.Require(rbacDomain.AssignBeds)
	requireAddPrescription = rbacDomain.RequireAll(rbacDomain.ManagePatients, rbacDomain.ViewMedications)
)

type patientUseCase struct {
	remote RemotePatients
	policy *rbacDomain.Policy
}

func (p *patientUseCase) List(
	ctx context.Context,
	principal *sessionDomain.Principal,
	filter patientDomain.Filter,
) ([]*patientDomain.Patient, error) {
	if err := principal.Authorize(p.policy, requireView); err != nil {
		return nil, err
	}

	patients, err := p.remote.ListPatients(ctx, principal.Credential)
	if err != nil {
		return nil, err
	}
	return filter.Apply(patients), nil
}

func (p *patientUseCase) Get(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
) (*patientDomain.Patient, error) {
	if err := principal.Authorize(p.policy, requireView); err != nil {
		return nil, err
	}
	return p.remote.GetPatient(ctx, principal.Credential, id)
}

func (p *patientUseCase) FindByBed(
	ctx context.Context,
	principal *sessionDomain.Principal,
	bedID string,
) (*patientDomain.Patient, error) {
	if err := principal.Authorize(p.policy, requireView); err != nil {
		return nil, err
	}

	patients, err := p.remote.ListPatients(ctx, principal.Credential)
	if err != nil {
		return nil, err
	}

	holder, ok := patientDomain.BedHolder(patients, bedID)
	if !ok {
		return nil, patientDomain.ErrPatientNotFound
	}
	return holder, nil
}

func (p *patientUseCase) Create(
	ctx context.Context,
	principal *sessionDomain.Principal,
	patient *patientDomain.Patient,
) (*patientDomain.Patient, error) {
	if err := principal.Authorize(p.policy, requireAdmit); err != nil {
		return nil, err
	}

	patient.ID = 0
	patient.ApplyDefaults(time.Now())
	return p.remote.CreatePatient(ctx, principal.Credential, patient)
}

func (p *patientUseCase) Update(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
	patient *patientDomain.Patient,
) (*patientDomain.Patient, error) {
	if err := principal.Authorize(p.policy, requireManage); err != nil {
		return nil, err
	}

	patient.ID = id
	return p.remote.UpdatePatient(ctx, principal.Credential, id, patient)
}

func (p *patientUseCase) Discharge(ctx context.Context, principal *sessionDomain.Principal, id int64) error {
	if err := principal.Authorize(p.policy, requireDischarge); err != nil {
		return err
	}
	return p.remote.DeletePatient(ctx, principal.Credential, id)
}

func (p *patientUseCase) AssignBed(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
	assignment patientDomain.BedAssignment,
) (*patientDomain.Patient, error) {
	if err := principal.Authorize(p.policy, requireAssignBed); err != nil {
		return nil, err
	}

	assignment.BedID = strings.TrimSpace(assignment.BedID)
	if assignment.BedID == "" {
		return nil, errors.Wrap(errors.ErrInvalidInput, "bedId is required")
	}

	patients, err := p.remote.ListPatients(ctx, principal.Credential)
	if err != nil {
		return nil, err
	}

	if holder, ok := patientDomain.BedHolder(patients, assignment.BedID); ok && holder.ID != id {
		return nil, errors.Wrapf(patientDomain.ErrBedOccupied, "bed %s is held by patient %d", assignment.BedID, holder.ID)
	}

	return p.remote.AssignBed(ctx, principal.Credential, id, assignment)
}

func (p *patientUseCase) AddPrescription(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
	prescription *patientDomain.Prescription,
) (*patientDomain.Prescription, error) {
	if err := principal.Authorize(p.policy, requireAddPrescription); err != nil {
		return nil, err
	}

	prescription.ID = 0
	prescription.ApplyDefaults(time.Now())
	return p.remote.AddPrescription(ctx, principal.Credential, id, prescription)
}

// NewPatientUseCase creates a PatientUseCase gated by policy.
func NewPatientUseCase(remote RemotePatients, policy *rbacDomain.Policy) PatientUseCase {
	return &patientUseCase{
		remote: remote,
		policy: policy,
	}
}
