package domain

import (
	"context"
	"strings"

	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
)

// Getter reads values from a session store. An absent key yields ok=false and a nil error.
type Getter interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
}

// Store is a writable session store.
type Store interface {
	Getter
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Credential is the bearer credential attached to remote API requests.
type Credential struct {
	Token string
	Type  string
}

// AuthorizationHeader renders the value of the Authorization header.
func (c Credential) AuthorizationHeader() string {
	tokenType := c.Type
	if tokenType == "" {
		tokenType = DefaultTokenType
	}
	return tokenType + " " + c.Token
}

// LoadCredential resolves the credential from getter. The token comes from access_token,
// falling back to token when the former is absent or empty.
func LoadCredential(ctx context.Context, getter Getter) (Credential, error) {
	token, err := firstNonEmpty(ctx, getter, KeyAccessToken, KeyToken)
	if err != nil {
		return Credential{}, err
	}
	if token == "" {
		return Credential{}, ErrNoCredential
	}

	tokenType, err := firstNonEmpty(ctx, getter, KeyTokenType)
	if err != nil {
		return Credential{}, err
	}
	if tokenType == "" {
		tokenType = DefaultTokenType
	}

	return Credential{Token: token, Type: tokenType}, nil
}

// Principal is the operator a use case acts for: the role permission checks run against
// and the credential forwarded to the remote API.
type Principal struct {
	Username   string
	Role       rbacDomain.Role
	Credential Credential
}

// LoadPrincipal resolves a Principal from getter. A missing role yields an empty role,
// which holds no capabilities.
func LoadPrincipal(ctx context.Context, getter Getter) (*Principal, error) {
	credential, err := LoadCredential(ctx, getter)
	if err != nil {
		return nil, err
	}

	username, err := firstNonEmpty(ctx, getter, KeyUsername)
	if err != nil {
		return nil, err
	}

	role, err := firstNonEmpty(ctx, getter, KeyRole)
	if err != nil {
		return nil, err
	}

	return &Principal{
		Username:   username,
		Role:       rbacDomain.Role(role),
		Credential: credential,
	}, nil
}

func firstNonEmpty(ctx context.Context, getter Getter, keys ...string) (string, error) {
	for _, key := range keys {
		value, ok, err := getter.Get(ctx, key)
		if err != nil {
			return "", err
		}
		if ok && strings.TrimSpace(value) != "" {
			return value, nil
		}
	}
	return "", nil
}

// Authorize checks requirement against the principal's role. A nil principal is
// unauthenticated.
func (p *Principal) Authorize(policy *rbacDomain.Policy, requirement rbacDomain.Requirement) error {
	if p == nil {
		return ErrNoCredential
	}
	return requirement.Check(policy, p.Role)
}
