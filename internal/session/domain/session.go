package domain

import (
	"context"
	"time"

	"github.com/google/uuid"

	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
)

// Session is a gateway login. The browser holds the plain session token; only its
// SHA-256 hash is stored. The remote bearer token is stored encrypted and Token is
// populated after decryption.
type Session struct {
	ID             uuid.UUID
	TokenHash      string
	Username       string
	Role           rbacDomain.Role
	EncryptedToken []byte
	Token          string
	TokenType      string
	ExpiresAt      time.Time
	RevokedAt      *time.Time
	CreatedAt      time.Time
}

// IsActive reports whether the session is neither revoked nor expired at now.
func (s *Session) IsActive(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// Get exposes the session as a read-only store.
func (s *Session) Get(_ context.Context, key string) (string, bool, error) {
	switch key {
	case KeyAccessToken:
		return s.Token, s.Token != "", nil
	case KeyTokenType:
		return s.TokenType, s.TokenType != "", nil
	case KeyUsername:
		return s.Username, s.Username != "", nil
	case KeyRole:
		return string(s.Role), s.Role != "", nil
	default:
		return "", false, nil
	}
}

// LoginInput contains the operator credentials submitted at login.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput is returned once per login. PlainToken is never stored.
type LoginOutput struct {
	SessionID    uuid.UUID
	PlainToken   string
	TokenType    string
	ExpiresAt    time.Time
	Username     string
	Role         rbacDomain.Role
	Capabilities []rbacDomain.Capability
}

// Identity is the operator profile reported by the remote API for a credential.
type Identity struct {
	ID       string
	Username string
	Name     string
	Email    string
	Role     rbacDomain.Role
}
