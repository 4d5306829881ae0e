package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/allisson/mediport/internal/audit/domain"
	"github.com/allisson/mediport/internal/database"
	apperrors "github.com/allisson/mediport/internal/errors"
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
)

// MySQLAuditLogRepository implements AuditLog persistence for MySQL.
// Uses BINARY(16) for UUIDs with transaction support via database.GetTx().
type MySQLAuditLogRepository struct {
	db *sql.DB
}

// Create inserts a new AuditLog. A nil SessionID is stored as NULL.
func (m *MySQLAuditLogRepository) Create(ctx context.Context, auditLog *auditDomain.AuditLog) error {
	querier := database.GetTx(ctx, m.db)

	capabilitiesJSON, err := marshalCapabilities(auditLog.Capabilities)
	if err != nil {
		return err
	}

	id, err := auditLog.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal audit log id")
	}

	var sessionID []byte
	if auditLog.SessionID != nil {
		sessionID, err = auditLog.SessionID.MarshalBinary()
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal session id")
		}
	}

	query := `INSERT INTO audit_logs (id, request_id, session_id, username, role, capabilities, mode, path, method, allowed, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLAuditLogRepository) List(
	ctx context.Context,
	offset, limit int,
	createdAtFrom, createdAtTo *time.Time,
) ([]*auditDomain.AuditLog, error) {
	querier := database.GetTx(ctx, m.db)

	var conditions []string
	var args []any

	if createdAtFrom != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *createdAtFrom)
	}

	if createdAtTo != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, *createdAtTo)
	}

	query := `SELECT id, request_id, session_id, username, role, capabilities, mode, path, method, allowed, created_at
			  FROM audit_logs`

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
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
		var idBinary, sessionIDBinary []byte
		var role string
		var capabilitiesJSON []byte

		err := rows.Scan(
			&idBinary,
			&auditLog.RequestID,
			&sessionIDBinary,
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

		if err := auditLog.ID.UnmarshalBinary(idBinary); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal audit log id")
		}

		if sessionIDBinary != nil {
			var sessionID uuid.UUID
			if err := sessionID.UnmarshalBinary(sessionIDBinary); err != nil {
				return nil, apperrors.Wrap(err, "failed to unmarshal session id")
			}
			auditLog.SessionID = &sessionID
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
func (m *MySQLAuditLogRepository) DeleteOlderThan(
	ctx context.Context,
	olderThan time.Time,
	dryRun bool,
) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	if dryRun {
		query := `SELECT COUNT(*) FROM audit_logs WHERE created_at < ?`
		var count int64
		if err := querier.QueryRowContext(ctx, query, olderThan).Scan(&count); err != nil {
			return 0, apperrors.Wrap(err, "failed to count audit logs")
		}
		return count, nil
	}

	query := `DELETE FROM audit_logs WHERE created_at < ?`
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

// NewMySQLAuditLogRepository creates a new MySQL AuditLog repository.
func NewMySQLAuditLogRepository(db *sql.DB) *MySQLAuditLogRepository {
	return &MySQLAuditLogRepository{db: db}
}
