package apiclient

import (
	"context"
	"net/http"

	"github.com/allisson/mediport/internal/errors"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
	userDomain "github.com/allisson/mediport/internal/user/domain"
)

type statusRequest struct {
	Status userDomain.Status `json:"status"`
}

// ListUsers returns every staff account.
func (c *Client) ListUsers(ctx context.Context, credential sessionDomain.Credential) ([]*userDomain.User, error) {
	users := make([]*userDomain.User, 0)
	if err := c.do(ctx, &credential, http.MethodGet, "/users", "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SetUserStatus activates or deactivates a staff account.
func (c *Client) SetUserStatus(
	ctx context.Context,
	credential sessionDomain.Credential,
	id int64,
	status userDomain.Status,
) (*userDomain.User, error) {
	var updated userDomain.User
	err := c.do(ctx, &credential, http.MethodPatch, "/users/{id}", idPath("/users", id),
		&statusRequest{Status: status}, &updated)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, err
	}
	return &updated, nil
}
