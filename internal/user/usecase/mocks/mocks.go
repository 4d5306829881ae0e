// Package mocks provides testify mocks for the user use case layer.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	sessionDomain "github.com/allisson/mediport/internal/session/domain"
	userDomain "github.com/allisson/mediport/internal/user/domain"
)

// MockRemoteUsers is a mock of usecase.RemoteUsers.
type MockRemoteUsers struct {
	mock.Mock
}

func (m *MockRemoteUsers) ListUsers(ctx context.Context, credential sessionDomain.Credential) ([]*userDomain.User, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userDomain.User), args.Error(1)
}

func (m *MockRemoteUsers) SetUserStatus(
	ctx context.Context,
	credential sessionDomain.Credential,
	id int64,
	status userDomain.Status,
) (*userDomain.User, error) {
	args := m.Called(ctx, credential, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// MockUserUseCase is a mock of usecase.UserUseCase.
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) List(
	ctx context.Context,
	principal *sessionDomain.Principal,
	search string,
) ([]*userDomain.User, error) {
	args := m.Called(ctx, principal, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userDomain.User), args.Error(1)
}

func (m *MockUserUseCase) SetStatus(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
	status userDomain.Status,
) (*userDomain.User, error) {
	args := m.Called(ctx, principal, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *MockUserUseCase) Toggle(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
) (*userDomain.User, error) {
	args := m.Called(ctx, principal, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}
