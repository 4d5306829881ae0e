// Package repository provides persistence for gateway sessions.
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

// PostgreSQLSessionRepository implements Session persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLSessionRepository struct {
	db *sql.DB
}

// Create inserts a new Session. The plain remote token is never written.
func (p *PostgreSQLSessionRepository) Create(ctx context.Context, session *sessionDomain.Session) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO sessions (id, token_hash, username, role, encrypted_token, token_type, expires_at, revoked_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := querier.ExecContext(
		ctx,
		query,
		session.ID,
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
func (p *PostgreSQLSessionRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*sessionDomain.Session, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, token_hash, username, role, encrypted_token, token_type, expires_at, revoked_at, created_at
			  FROM sessions WHERE token_hash = $1`

	var session sessionDomain.Session
	var role string

	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&session.ID,
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

	session.Role = rbacDomain.Role(role)
	return &session, nil
}

// Revoke marks an active session as revoked. Returns ErrSessionNotFound if the session
// does not exist or is already revoked.
func (p *PostgreSQLSessionRepository) Revoke(ctx context.Context, sessionID uuid.UUID, revokedAt time.Time) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE sessions SET revoked_at = $1 WHERE id = $2 AND revoked_at IS NULL`

	result, err := querier.ExecContext(ctx, query, revokedAt, sessionID)
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
func (p *PostgreSQLSessionRepository) DeleteExpired(
	ctx context.Context,
	olderThan time.Time,
	dryRun bool,
) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	if dryRun {
		query := `SELECT COUNT(*) FROM sessions WHERE expires_at < $1`
		var count int64
		if err := querier.QueryRowContext(ctx, query, olderThan).Scan(&count); err != nil {
			return 0, apperrors.Wrap(err, "failed to count expired sessions")
		}
		return count, nil
	}

	query := `DELETE FROM sessions WHERE expires_at < $1`
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

// NewPostgreSQLSessionRepository creates a new PostgreSQL Session repository.
func NewPostgreSQLSessionRepository(db *sql.DB) *PostgreSQLSessionRepository {
	return &PostgreSQLSessionRepository{db: db}
}
