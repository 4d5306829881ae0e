// Package repository provides persistence for audit logs.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/allisson/mediport/internal/audit/domain"
	"github.com/allisson/mediport/internal/database"
	apperrors "github.com/allisson/mediport/internal/errors"
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
)

// PostgreSQLAuditLogRepository implements AuditLog persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLAuditLogRepository struct {
	db *sql.DB
}

// Create inserts a new AuditLog. Capabilities are stored as a JSON array.
func (p *PostgreSQLAuditLogRepository) Create(ctx context.Context, auditLog *auditDomain.AuditLog) error {
	querier := database.GetTx(ctx, p.db)

	capabilitiesJSON, err := marshalCapabilities(auditLog.Capabilities)
	if err != nil {
		return err
	}

	query := `INSERT INTO audit_logs (id, request_id, session_id, username, role, capabilities, mode, path, method, allowed, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	var sessionID uuid.NullUUID
	if auditLog.SessionID != nil {
		sessionID = uuid.NullUUID{UUID: *auditLog.SessionID, Valid: true}
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		auditLog.ID,
		auditLog.RequestID,
		sessionID,
		auditLog.Username,
		string(auditLog.Role),
		capabilitiesJSON,
		auditLog.Mode,
		auditLog.Path,
		auditLog.Method,
		auditLog.Allowed,
		auditLog.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create audit log")
	}
	return nil
}

// List retrieves audit logs ordered by created_at descending (newest first) with pagination
// and optional inclusive time filters (nil means no filter). Returns an empty slice if none match.
func (p *PostgreSQLAuditLogRepository) List(
	ctx context.Context,
	offset, limit int,
	createdAtFrom, createdAtTo *time.Time,
) ([]*auditDomain.AuditLog, error) {
	querier := database.GetTx(ctx, p.db)

	var conditions []string
	var args []any

	if createdAtFrom != nil {
		args = append(args, *createdAtFrom)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}

	if createdAtTo != nil {
		args = append(args, *createdAtTo)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	query := `SELECT id, request_id, session_id, username, role, capabilities, mode, path, method, allowed, created_at
			  FROM audit_logs`

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list audit logs")
	}
	defer func() {
		_ = rows.Close()
	}()

	auditLogs := make([]*auditDomain.AuditLog, 0)
	for rows.Next() {
		var auditLog auditDomain.AuditLog
		var sessionID uuid.NullUUID
		var role string
		var capabilitiesJSON []byte

		err := rows.Scan(
			&auditLog.ID,
			&auditLog.RequestID,
			&sessionID,
			&auditLog.Username,
			&role,
			&capabilitiesJSON,
			&auditLog.Mode,
			&auditLog.Path,
			&auditLog.Method,
			&auditLog.Allowed,
			&auditLog.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan audit log")
		}

		if sessionID.Valid {
			id := sessionID.UUID
			auditLog.SessionID = &id
		}
		auditLog.Role = rbacDomain.Role(role)

		if auditLog.Capabilities, err = unmarshalCapabilities(capabilitiesJSON); err != nil {
			return nil, err
		}

		auditLogs = append(auditLogs, &auditLog)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate audit logs")
	}

	return auditLogs, nil
}

// DeleteOlderThan removes audit logs created before olderThan. When dryRun is true,
// returns the count via SELECT COUNT(*) without deleting.
func (p *PostgreSQLAuditLogRepository) DeleteOlderThan(
	ctx context.Context,
	olderThan time.Time,
	dryRun bool,
) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	if dryRun {
		query := `SELECT COUNT(*) FROM audit_logs WHERE created_at < $1`
		var count int64
		if err := querier.QueryRowContext(ctx, query, olderThan).Scan(&count); err != nil {
			return 0, apperrors.Wrap(err, "failed to count audit logs")
		}
		return count, nil
	}

	query := `DELETE FROM audit_logs WHERE created_at < $1`
	result, err := querier.ExecContext(ctx, query, olderThan)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete audit logs")
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get affected rows count")
	}
	return count, nil
}

func marshalCapabilities(capabilities []string) ([]byte, error) {
	if capabilities == nil {
		capabilities = []string{}
	}
	data, err := json.Marshal(capabilities)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal audit log capabilities")
	}
	return data, nil
}

func unmarshalCapabilities(data []byte) ([]string, error) {
	capabilities := make([]string, 0)
	if len(data) == 0 {
		return capabilities, nil
	}
	if err := json.Unmarshal(data, &capabilities); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal audit log capabilities")
	}
	return capabilities, nil
}

// NewPostgreSQLAuditLogRepository creates a new PostgreSQL AuditLog repository.
func NewPostgreSQLAuditLogRepository(db *sql.DB) *PostgreSQLAuditLogRepository {
	return &PostgreSQLAuditLogRepository{db: db}
}
