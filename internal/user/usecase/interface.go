// Package usecase implements staff account administration on top of the remote records API.
package usecase

import (
	"context"

	sessionDomain "github.com/allisson/mediport/internal/session/domain"
	userDomain "github.com/allisson/mediport/internal/user/domain"
)

// RemoteUsers is the part of the remote records API serving staff accounts.
type RemoteUsers interface {
	ListUsers(ctx context.Context, credential sessionDomain.Credential) ([]*userDomain.User, error)
	SetUserStatus(
		ctx context.Context,
		credential sessionDomain.Credential,
		id int64,
		status userDomain.Status,
	) (*userDomain.User, error)
}

// UserUseCase defines staff account operations. All of them require manage_users.
type UserUseCase interface {
	// List returns the accounts whose name, email or role contains search.
	List(ctx context.Context, principal *sessionDomain.Principal, search string) ([]*userDomain.User, error)

	// SetStatus returns ErrInvalidStatus for anything but Active or Inactive.
	SetStatus(
		ctx context.Context,
		principal *sessionDomain.Principal,
		id int64,
		status userDomain.Status,
	) (*userDomain.User, error)

	// Toggle flips the current status of the account.
	Toggle(ctx context.Context, principal *sessionDomain.Principal, id int64) (*userDomain.User, error)
}
