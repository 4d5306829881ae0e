package usecase

import (
	"context"

	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
	userDomain "github.com/allisson/mediport/internal/user/domain"
)

var requireManageUsers = rbacDomain.Require(rbacDomain.ManageUsers)

type userUseCase struct {
	remote RemoteUsers
	policy *rbacDomain.Policy
}

func (u *userUseCase) List(
	ctx context.Context,
	principal *sessionDomain.Principal,
	search string,
) ([]*userDomain.User, error) {
	if err := principal.Authorize(u.policy, requireManageUsers); err != nil {
		return nil, err
	}

	users, err := u.remote.ListUsers(ctx, principal.Credential)
	if err != nil {
		return nil, err
	}
	return userDomain.Search(users, search), nil
}

func (u *userUseCase) SetStatus(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
	status userDomain.Status,
) (*userDomain.User, error) {
	if err := principal.Authorize(u.policy, requireManageUsers); err != nil {
		return nil, err
	}

	status, err := userDomain.ParseStatus(string(status))
	if err != nil {
		return nil, err
	}
	return u.remote.SetUserStatus(ctx, principal.Credential, id, status)
}

func (u *userUseCase) Toggle(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
) (*userDomain.User, error) {
	if err := principal.Authorize(u.policy, requireManageUsers); err != nil {
		return nil, err
	}

	users, err := u.remote.ListUsers(ctx, principal.Credential)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.ID == id {
			return u.remote.SetUserStatus(ctx, principal.Credential, id, user.Status.Toggle())
		}
	}
	return nil, userDomain.ErrUserNotFound
}

// NewUserUseCase creates a UserUseCase gated by policy.
func NewUserUseCase(remote RemoteUsers, policy *rbacDomain.Policy) UserUseCase {
	return &userUseCase{
		remote: remote,
		policy: policy,
	}
}
