// Package usecase implements gateway session business logic: login against the remote
// API, session token authentication, logout and cleanup of expired sessions.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/allisson/mediport/internal/audit/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

// SessionRepository defines persistence operations for gateway sessions.
// Implementations must support transaction-aware operations via context propagation.
type SessionRepository interface {
	Create(ctx context.Context, session *sessionDomain.Session) error

	// GetByTokenHash returns ErrSessionNotFound if no session matches.
	GetByTokenHash(ctx context.Context, tokenHash string) (*sessionDomain.Session, error)

	// Revoke returns ErrSessionNotFound if the session is missing or already revoked.
	Revoke(ctx context.Context, sessionID uuid.UUID, revokedAt time.Time) error

	DeleteExpired(ctx context.Context, olderThan time.Time, dryRun bool) (int64, error)
}

// RemoteAuthenticator authenticates operators against the remote API.
type RemoteAuthenticator interface {
	Login(ctx context.Context, username, password string) (sessionDomain.Credential, error)
	Me(ctx context.Context, credential sessionDomain.Credential) (*sessionDomain.Identity, error)
}

// AuditRecorder persists audit records.
type AuditRecorder interface {
	Record(ctx context.Context, auditLog *auditDomain.AuditLog) error
}

// SessionUseCase defines gateway session operations.
type SessionUseCase interface {
	// Login authenticates against the remote API and opens a session. The returned
	// plain token is shown once. Returns ErrInvalidCredentials when the remote API
	// rejects the credentials.
	Login(ctx context.Context, input *sessionDomain.LoginInput) (*sessionDomain.LoginOutput, error)

	// Authenticate resolves a plain session token to an active session with its remote
	// credential decrypted. Unknown, expired and revoked tokens return ErrInvalidCredentials.
	Authenticate(ctx context.Context, plainToken string) (*sessionDomain.Session, error)

	// Logout revokes the session and records the logout in the audit log.
	Logout(ctx context.Context, session *sessionDomain.Session) error

	// CleanExpired deletes sessions expired more than days ago. With dryRun it only counts them.
	CleanExpired(ctx context.Context, days int, dryRun bool) (int64, error)
}
