// Package dto provides data transfer objects for the audit log endpoints.
package dto

import (
	"time"

	auditDomain "github.com/allisson/mediport/internal/audit/domain"
)

// AuditLogResponse represents an authorization decision in API responses.
type AuditLogResponse struct {
	ID           string    `json:"id"`
	RequestID    string    `json:"request_id"`
	SessionID    *string   `json:"session_id"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	Capabilities []string  `json:"capabilities"`
	Mode         string    `json:"mode"`
	Method       string    `json:"method"`
	Path         string    `json:"path"`
	Allowed      bool      `json:"allowed"`
	CreatedAt    time.Time `json:"created_at"`
}

// MapAuditLogToResponse converts a domain audit log to an API response.
func MapAuditLogToResponse(auditLog *auditDomain.AuditLog) AuditLogResponse {
	var sessionID *string
	if auditLog.SessionID != nil {
		s := auditLog.SessionID.String()
		sessionID = &s
	}

	capabilities := auditLog.Capabilities
	if capabilities == nil {
		capabilities = []string{}
	}

	return AuditLogResponse{
		ID:           auditLog.ID.String(),
		RequestID:    auditLog.RequestID,
		SessionID:    sessionID,
		Username:     auditLog.Username,
		Role:         string(auditLog.Role),
		Capabilities: capabilities,
		Mode:         auditLog.Mode,
		Method:       auditLog.Method,
		Path:         auditLog.Path,
		Allowed:      auditLog.Allowed,
		CreatedAt:    auditLog.CreatedAt,
	}
}

// ListAuditLogsResponse represents a paginated list of audit logs in API responses.
type ListAuditLogsResponse struct {
	Data []AuditLogResponse `json:"data"`
}

// MapAuditLogsToListResponse converts a slice of domain audit logs to a list API response.
func MapAuditLogsToListResponse(auditLogs []*auditDomain.AuditLog) ListAuditLogsResponse {
	auditLogResponses := make([]AuditLogResponse, 0, len(auditLogs))
	for _, auditLog := range auditLogs {
		auditLogResponses = append(auditLogResponses, MapAuditLogToResponse(auditLog))
	}
	return ListAuditLogsResponse{
		Data: auditLogResponses,
	}
}
