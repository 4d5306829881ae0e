package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/mediport/internal/database"
	apperrors "github.com/allisson/mediport/internal/errors"
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

// MySQLSessionRepository implements Session persistence for MySQL.
// Uses BINARY(16) for UUIDs with transaction support via database.GetTx().
type MySQLSessionRepository struct {
	db *sql.DB
}

// Create inserts a new Session using BINARY(16) for the id.
func (m *MySQLSessionRepository) Create(ctx context.Context, session *sessionDomain.Session) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO sessions (id, token_hash, username, role, encrypted_token, token_type, expires_at, revoked_at, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := session.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal session id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		session.TokenHash,
		session.Username,
		string(session.Role),
		session.EncryptedToken,
		session.TokenType,
		session.ExpiresAt,
		session.RevokedAt,
		session.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create session")
	}
	return nil
}

// GetByTokenHash retrieves a Session by the hash of its plain token.
// Returns ErrSessionNotFound if no session matches.
func (m *MySQLSessionRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*sessionDomain.Session, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, token_hash, username, role, encrypted_token, token_type, expires_at, revoked_at, created_at
			  FROM sessions WHERE token_hash = ?`

	var session sessionDomain.Session
	var idBytes []byte
	var role string

	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&idBytes,
		&session.TokenHash,
		&session.Username,
		&role,
		&session.EncryptedToken,
		&session.TokenType,
		&session.ExpiresAt,
		&session.RevokedAt,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sessionDomain.ErrSessionNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get session by hash")
	}

	if err := session.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal session id")
	}

	session.Role = rbacDomain.Role(role)
	return &session, nil
}

// Revoke marks an active session as revoked. Returns ErrSessionNotFound if the session
// does not exist or is already revoked.
func (m *MySQLSessionRepository) Revoke(ctx context.Context, sessionID uuid.UUID, revokedAt time.Time) error {
	querier := database.GetTx(ctx, m.db)

	id, err := sessionID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal session id")
	}

	query := `UPDATE sessions SET revoked_at = ? WHERE id = ? AND revoked_at IS NULL`

	result, err := querier.ExecContext(ctx, query, revokedAt, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to revoke session")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows count")
	}
	if rows == 0 {
		return sessionDomain.ErrSessionNotFound
	}
	return nil
}

// DeleteExpired removes sessions that expired before olderThan. When dryRun is true,
// returns the count via SELECT COUNT(*) without deleting.
func (m *MySQLSessionRepository) DeleteExpired(
	ctx context.Context,
	olderThan time.Time,
	dryRun bool,
) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	if dryRun {
		query := `SELECT COUNT(*) FROM sessions WHERE expires_at < ?`
		var count int64
		if err := querier.QueryRowContext(ctx, query, olderThan).Scan(&count); err != nil {
			return 0, apperrors.Wrap(err, "failed to count expired sessions")
		}
		return count, nil
	}

	query := `DELETE FROM sessions WHERE expires_at < ?`
	result, err := querier.ExecContext(ctx, query, olderThan)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired sessions")
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get affected rows count")
	}
	return count, nil
}

// NewMySQLSessionRepository creates a new MySQL Session repository.
func NewMySQLSessionRepository(db *sql.DB) *MySQLSessionRepository {
	return &MySQLSessionRepository{db: db}
}
