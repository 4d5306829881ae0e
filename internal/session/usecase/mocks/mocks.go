// Package mocks provides testify mocks for the session use case layer.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

// MockSessionRepository is a mock of usecase.SessionRepository.
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *sessionDomain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*sessionDomain.Session, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionDomain.Session), args.Error(1)
}

func (m *MockSessionRepository) Revoke(ctx context.Context, sessionID uuid.UUID, revokedAt time.Time) error {
	args := m.Called(ctx, sessionID, revokedAt)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context, olderThan time.Time, dryRun bool) (int64, error) {
	args := m.Called(ctx, olderThan, dryRun)
	return args.Get(0).(int64), args.Error(1)
}

// MockRemoteAuthenticator is a mock of usecase.RemoteAuthenticator.
type MockRemoteAuthenticator struct {
	mock.Mock
}

func (m *MockRemoteAuthenticator) Login(
	ctx context.Context,
	username, password string,
) (sessionDomain.Credential, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(sessionDomain.Credential), args.Error(1)
}

func (m *MockRemoteAuthenticator) Me(
	ctx context.Context,
	credential sessionDomain.Credential,
) (*sessionDomain.Identity, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionDomain.Identity), args.Error(1)
}

// MockSessionUseCase is a mock of usecase.SessionUseCase.
type MockSessionUseCase struct {
	mock.Mock
}

func (m *MockSessionUseCase) Login(
	ctx context.Context,
	input *sessionDomain.LoginInput,
) (*sessionDomain.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionDomain.LoginOutput), args.Error(1)
}

func (m *MockSessionUseCase) Authenticate(ctx context.Context, plainToken string) (*sessionDomain.Session, error) {
	args := m.Called(ctx, plainToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionDomain.Session), args.Error(1)
}

func (m *MockSessionUseCase) Logout(ctx context.Context, session *sessionDomain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionUseCase) CleanExpired(ctx context.Context, days int, dryRun bool) (int64, error) {
	args := m.Called(ctx, days, dryRun)
	return args.Get(0).(int64), args.Error(1)
}
