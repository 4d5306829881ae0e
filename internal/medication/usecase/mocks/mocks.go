// Package mocks provides testify mocks for the medication use case layer.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	medicationDomain "github.com/allisson/mediport/internal/medication/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

// MockRemoteMedications is a mock of usecase.RemoteMedications.
type MockRemoteMedications struct {
	mock.Mock
}

func (m *MockRemoteMedications) ListMedications(
	ctx context.Context,
	credential sessionDomain.Credential,
) ([]*medicationDomain.Medication, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*medicationDomain.Medication), args.Error(1)
}

func (m *MockRemoteMedications) GetMedication(
	ctx context.Context,
	credential sessionDomain.Credential,
	id int64,
) (*medicationDomain.Medication, error) {
	args := m.Called(ctx, credential, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*medicationDomain.Medication), args.Error(1)
}

func (m *MockRemoteMedications) CreateMedication(
	ctx context.Context,
	credential sessionDomain.Credential,
	medication *medicationDomain.Medication,
) (*medicationDomain.Medication, error) {
	args := m.Called(ctx, credential, medication)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*medicationDomain.Medication), args.Error(1)
}

func (m *MockRemoteMedications) UpdateMedication(
	ctx context.Context,
	credential sessionDomain.Credential,
	id int64,
	medication *medicationDomain.Medication,
) (*medicationDomain.Medication, error) {
	args := m.Called(ctx, credential, id, medication)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*medicationDomain.Medication), args.Error(1)
}

func (m *MockRemoteMedications) DeleteMedication(
	ctx context.Context,
	credential sessionDomain.Credential,
	id int64,
) error {
	args := m.Called(ctx, credential, id)
	return args.Error(0)
}

// MockMedicationUseCase is a mock of usecase.MedicationUseCase.
type MockMedicationUseCase struct {
	mock.Mock
}

func (m *MockMedicationUseCase) List(
	ctx context.Context,
	principal *sessionDomain.Principal,
	search string,
) ([]*medicationDomain.Medication, error) {
	args := m.Called(ctx, principal, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*medicationDomain.Medication), args.Error(1)
}

func (m *MockMedicationUseCase) Get(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
) (*medicationDomain.Medication, error) {
	args := m.Called(ctx, principal, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*medicationDomain.Medication), args.Error(1)
}

func (m *MockMedicationUseCase) Create(
	ctx context.Context,
	principal *sessionDomain.Principal,
	medication *medicationDomain.Medication,
) (*medicationDomain.Medication, error) {
	args := m.Called(ctx, principal, medication)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*medicationDomain.Medication), args.Error(1)
}

func (m *MockMedicationUseCase) Update(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
	medication *medicationDomain.Medication,
) (*medicationDomain.Medication, error) {
	args := m.Called(ctx, principal, id, medication)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*medicationDomain.Medication), args.Error(1)
}

func (m *MockMedicationUseCase) Delete(ctx context.Context, principal *sessionDomain.Principal, id int64) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}
