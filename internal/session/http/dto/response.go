package dto

import (
	"time"

	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

// LoginResponse contains the session token. The token is only returned once.
type LoginResponse struct {
	Token        string    `json:"token"` //nolint:gosec // returned once on login
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	Capabilities []string  `json:"capabilities"`
}

// MapLoginOutputToResponse converts a login output to an API response.
func MapLoginOutputToResponse(output *sessionDomain.LoginOutput) LoginResponse {
	return LoginResponse{
		Token:        output.PlainToken,
		TokenType:    output.TokenType,
		ExpiresAt:    output.ExpiresAt,
		Username:     output.Username,
		Role:         string(output.Role),
		Capabilities: capabilityStrings(output.Capabilities),
	}
}

// MeResponse describes the operator of the current session.
type MeResponse struct {
	SessionID    string    `json:"session_id"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	Capabilities []string  `json:"capabilities"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// MapSessionToMeResponse converts a session and its role's capabilities to an API response.
func MapSessionToMeResponse(session *sessionDomain.Session, capabilities []rbacDomain.Capability) MeResponse {
	return MeResponse{
		SessionID:    session.ID.String(),
		Username:     session.Username,
		Role:         string(session.Role),
		Capabilities: capabilityStrings(capabilities),
		ExpiresAt:    session.ExpiresAt,
	}
}

func capabilityStrings(capabilities []rbacDomain.Capability) []string {
	out := make([]string, 0, len(capabilities))
	for _, capability := range capabilities {
		out = append(out, string(capability))
	}
	return out
}
