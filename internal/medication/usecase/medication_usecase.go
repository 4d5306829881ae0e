package usecase

import (
	"context"

	medicationDomain "github.com/allisson/mediport/internal/medication/domain"
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

var (
	requireView   = rbacDomain.Require(rbacDomain.ViewMedications)
	requireManage = rbacDomain.Require(rbacDomain.ManageMedications)
)

type medicationUseCase struct {
	remote RemoteMedications
	policy *rbacDomain.Policy
}

func (m *medicationUseCase) List(
	ctx context.Context,
	principal *sessionDomain.Principal,
	search string,
) ([]*medicationDomain.Medication, error) {
	if err := principal.Authorize(m.policy, requireView); err != nil {
		return nil, err
	}

	medications, err := m.remote.ListMedications(ctx, principal.Credential)
	if err != nil {
		return nil, err
	}

	filtered := make([]*medicationDomain.Medication, 0, len(medications))
	for _, medication := range medications {
		if medication.Matches(search) {
			filtered = append(filtered, medication)
		}
	}
	return filtered, nil
}

func (m *medicationUseCase) Get(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
) (*medicationDomain.Medication, error) {
	if err := principal.Authorize(m.policy, requireView); err != nil {
		return nil, err
	}
	return m.remote.GetMedication(ctx, principal.Credential, id)
}

func (m *medicationUseCase) Create(
	ctx context.Context,
	principal *sessionDomain.Principal,
	medication *medicationDomain.Medication,
) (*medicationDomain.Medication, error) {
	if err := principal.Authorize(m.policy, requireManage); err != nil {
		return nil, err
	}

	medication.ID = 0
	return m.remote.CreateMedication(ctx, principal.Credential, medication)
}

func (m *medicationUseCase) Update(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
	medication *medicationDomain.Medication,
) (*medicationDomain.Medication, error) {
	if err := principal.Authorize(m.policy, requireManage); err != nil {
		return nil, err
	}

	medication.ID = id
	return m.remote.UpdateMedication(ctx, principal.Credential, id, medication)
}

func (m *medicationUseCase) Delete(ctx context.Context, principal *sessionDomain.Principal, id int64) error {
	if err := principal.Authorize(m.policy, requireManage); err != nil {
		return err
	}
	return m.remote.DeleteMedication(ctx, principal.Credential, id)
}

// NewMedicationUseCase creates a MedicationUseCase gated by policy.
func NewMedicationUseCase(remote RemoteMedications, policy *rbacDomain.Policy) MedicationUseCase {
	return &medicationUseCase{
		remote: remote,
		policy: policy,
	}
}
