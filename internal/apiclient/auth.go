package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/allisson/mediport/internal/errors"
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	Token       string `json:"token"`
	TokenType   string `json:"token_type"`
}

// remoteID accepts both numeric and string ids.
type remoteID string

func (id *remoteID) UnmarshalJSON(data []byte) error {
	var number json.Number
	if err := json.Unmarshal(data, &number); err == nil {
		*id = remoteID(number.String())
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	*id = remoteID(text)
	return nil
}

type meResponse struct {
	ID       remoteID `json:"id"`
	Username string   `json:"username"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
}

// Login exchanges username and password for a remote bearer credential.
func (c *Client) Login(ctx context.Context, username, password string) (sessionDomain.Credential, error) {
	var out loginResponse
	err := c.do(ctx, nil, http.MethodPost, "/auth/login", "/auth/login",
		&loginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return sessionDomain.Credential{}, err
	}

	token := out.AccessToken
	if token == "" {
		token = out.Token
	}
	if token == "" {
		return sessionDomain.Credential{}, errors.Wrap(errors.ErrUnavailable, "login response carries no token")
	}

	tokenType := strings.TrimSpace(out.TokenType)
	if tokenType == "" {
		tokenType = sessionDomain.DefaultTokenType
	}
	return sessionDomain.Credential{Token: token, Type: tokenType}, nil
}

// Me returns the profile of the operator owning credential.
func (c *Client) Me(ctx context.Context, credential sessionDomain.Credential) (*sessionDomain.Identity, error) {
	var out meResponse
	if err := c.do(ctx, &credential, http.MethodGet, "/auth/me", "/auth/me", nil, &out); err != nil {
		return nil, err
	}

	return &sessionDomain.Identity{
		ID:       string(out.ID),
		Username: out.Username,
		Name:     out.Name,
		Email:    out.Email,
		Role:     rbacDomain.Role(out.Role),
	}, nil
}

func idPath(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}
