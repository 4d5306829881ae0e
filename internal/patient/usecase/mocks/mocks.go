// Package mocks provides testify mocks for the patient use case layer.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	patientDomain "github.com/allisson/mediport/internal/patient/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

// MockRemotePatients is a mock of usecase.RemotePatients.
type MockRemotePatients struct {
	mock.Mock
}

func (m *MockRemotePatients) ListPatients(
	ctx context.Context,
	credential sessionDomain.Credential,
) ([]*patientDomain.Patient, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*patientDomain.Patient), args.Error(1)
}

func (m *MockRemotePatients) GetPatient(
	ctx context.Context,
	credential sessionDomain.Credential,
	id int64,
) (*patientDomain.Patient, error) {
	args := m.Called(ctx, credential, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patientDomain.Patient), args.Error(1)
}

func (m *MockRemotePatients) CreatePatient(
	ctx context.Context,
	credential sessionDomain.Credential,
	patient *patientDomain.Patient,
) (*patientDomain.Patient, error) {
	args := m.Called(ctx, credential, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patientDomain.Patient), args.Error(1)
}

func (m *MockRemotePatients) UpdatePatient(
	ctx context.Context,
	credential sessionDomain.Credential,
	id int64,
	patient *patientDomain.Patient,
) (*patientDomain.Patient, error) {
	args := m.Called(ctx, credential, id, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patientDomain.Patient), args.Error(1)
}

func (m *MockRemotePatients) DeletePatient(ctx context.Context, credential sessionDomain.Credential, id int64) error {
	args := m.Called(ctx, credential, id)
	return args.Error(0)
}

func (m *MockRemotePatients) AssignBed(
	ctx context.Context,
	credential sessionDomain.Credential,
	id int64,
	assignment patientDomain.BedAssignment,
) (*patientDomain.Patient, error) {
	args := m.Called(ctx, credential, id, assignment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patientDomain.Patient), args.Error(1)
}

func (m *MockRemotePatients) AddPrescription(
	ctx context.Context,
	credential sessionDomain.Credential,
	id int64,
	prescription *patientDomain.Prescription,
) (*patientDomain.Prescription, error) {
	args := m.Called(ctx, credential, id, prescription)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patientDomain.Prescription), args.Error(1)
}

// MockPatientUseCase is a mock of usecase.PatientUseCase.
type MockPatientUseCase struct {
	mock.Mock
}

func (m *MockPatientUseCase) List(
	ctx context.Context,
	principal *sessionDomain.Principal,
	filter patientDomain.Filter,
) ([]*patientDomain.Patient, error) {
	args := m.Called(ctx, principal, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*patientDomain.Patient), args.Error(1)
}

func (m *MockPatientUseCase) Get(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
) (*patientDomain.Patient, error) {
	args := m.Called(ctx, principal, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patientDomain.Patient), args.Error(1)
}

func (m *MockPatientUseCase) FindByBed(
	ctx context.Context,
	principal *sessionDomain.Principal,
	bedID string,
) (*patientDomain.Patient, error) {
	args := m.Called(ctx, principal, bedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patientDomain.Patient), args.Error(1)
}

func (m *MockPatientUseCase) Create(
	ctx context.Context,
	principal *sessionDomain.Principal,
	patient *patientDomain.Patient,
) (*patientDomain.Patient, error) {
	args := m.Called(ctx, principal, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patientDomain.Patient), args.Error(1)
}

func (m *MockPatientUseCase) Update(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
	patient *patientDomain.Patient,
) (*patientDomain.Patient, error) {
	args := m.Called(ctx, principal, id, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patientDomain.Patient), args.Error(1)
}

func (m *MockPatientUseCase) Discharge(ctx context.Context, principal *sessionDomain.Principal, id int64) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}

func (m *MockPatientUseCase) AssignBed(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
	assignment patientDomain.BedAssignment,
) (*patientDomain.Patient, error) {
	args := m.Called(ctx, principal, id, assignment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patientDomain.Patient), args.Error(1)
}

func (m *MockPatientUseCase) AddPrescription(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
	prescription *patientDomain.Prescription,
) (*patientDomain.Prescription, error) {
	args := m.Called(ctx, principal, id, prescription)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patientDomain.Prescription), args.Error(1)
}
