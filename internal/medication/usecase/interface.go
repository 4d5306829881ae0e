// Package usecase implements medication inventory operations on top of the remote
// records API.
package usecase

import (
	"context"

	medicationDomain "github.com/allisson/mediport/internal/medication/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

// RemoteMedications is the part of the remote records API serving the inventory.
type RemoteMedications interface {
	ListMedications(ctx context.Context, credential sessionDomain.Credential) ([]*medicationDomain.Medication, error)
	GetMedication(
		ctx context.Context,
		credential sessionDomain.Credential,
		id int64,
	) (*medicationDomain.Medication, error)
	CreateMedication(
		ctx context.Context,
		credential sessionDomain.Credential,
		medication *medicationDomain.Medication,
	) (*medicationDomain.Medication, error)
	UpdateMedication(
		ctx context.Context,
		credential sessionDomain.Credential,
		id int64,
		medication *medicationDomain.Medication,
	) (*medicationDomain.Medication, error)
	DeleteMedication(ctx context.Context, credential sessionDomain.Credential, id int64) error
}

// MedicationUseCase defines inventory operations. Reads require view_medications,
// writes require manage_medications.
type MedicationUseCase interface {
	List(
		ctx context.Context,
		principal *sessionDomain.Principal,
		search string,
	) ([]*medicationDomain.Medication, error)
	Get(ctx context.Context, principal *sessionDomain.Principal, id int64) (*medicationDomain.Medication, error)
	Create(
		ctx context.Context,
		principal *sessionDomain.Principal,
		medication *medicationDomain.Medication,
	) (*medicationDomain.Medication, error)
	Update(
		ctx context.Context,
		principal *sessionDomain.Principal,
		id int64,
		medication *medicationDomain.Medication,
	) (*medicationDomain.Medication, error)
	Delete(ctx context.Context, principal *sessionDomain.Principal, id int64) error
}
