// Package usecase implements patient and bed operations on top of the remote records
// API. Every operation checks the caller's capabilities before any remote call.
package usecase

import (
	"context"

	patientDomain "github.com/allisson/mediport/internal/patient/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

// RemotePatients is the part of the remote records API serving patients.
type RemotePatients interface {
	ListPatients(ctx context.Context, credential sessionDomain.Credential) ([]*patientDomain.Patient, error)
	GetPatient(ctx context.Context, credential sessionDomain.Credential, id int64) (*patientDomain.Patient, error)
	CreatePatient(
		ctx context.Context,
		credential sessionDomain.Credential,
		patient *patientDomain.Patient,
	) (*patientDomain.Patient, error)
	UpdatePatient(
		ctx context.Context,
		credential sessionDomain.Credential,
		id int64,
		patient *patientDomain.Patient,
	) (*patientDomain.Patient, error)
	DeletePatient(ctx context.Context, credential sessionDomain.Credential, id int64) error
	AssignBed(
		ctx context.Context,
		credential sessionDomain.Credential,
		id int64,
		assignment patientDomain.BedAssignment,
	) (*patientDomain.Patient, error)
	AddPrescription(
		ctx context.Context,
		credential sessionDomain.Credential,
		id int64,
		prescription *patientDomain.Prescription,
	) (*patientDomain.Prescription, error)
}

// PatientUseCase defines patient and bed operations.
type PatientUseCase interface {
	// List returns the patients matching filter. Requires view_patients.
	List(
		ctx context.Context,
		principal *sessionDomain.Principal,
		filter patientDomain.Filter,
	) ([]*patientDomain.Patient, error)

	// Get requires view_patients.
	Get(ctx context.Context, principal *sessionDomain.Principal, id int64) (*patientDomain.Patient, error)

	// FindByBed returns the patient holding bedID, or ErrPatientNotFound. Requires view_patients.
	FindByBed(ctx context.Context, principal *sessionDomain.Principal, bedID string) (*patientDomain.Patient, error)

	// Create admits a patient with defaults applied. Requires add_patients or manage_patients.
	Create(
		ctx context.Context,
		principal *sessionDomain.Principal,
		patient *patientDomain.Patient,
	) (*patientDomain.Patient, error)

	// Update requires manage_patients.
	Update(
		ctx context.Context,
		principal *sessionDomain.Principal,
		id int64,
		patient *patientDomain.Patient,
	) (*patientDomain.Patient, error)

	// Discharge requires assign_beds or manage_patients.
	Discharge(ctx context.Context, principal *sessionDomain.Principal, id int64) error

	// AssignBed moves the patient to a free bed. Returns ErrBedOccupied when another
	// patient holds it. Requires assign_beds.
	AssignBed(
		ctx context.Context,
		principal *sessionDomain.Principal,
		id int64,
		assignment patientDomain.BedAssignment,
	) (*patientDomain.Patient, error)

	// AddPrescription requires manage_patients and view_medications.
	AddPrescription(
		ctx context.Context,
		principal *sessionDomain.Principal,
		id int64,
		prescription *patientDomain.Prescription,
	) (*patientDomain.Prescription, error)
}
