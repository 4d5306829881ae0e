// Package domain defines the audit record written for every gated decision.
package domain

import (
	"time"

	"github.com/google/uuid"

	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
)

// AuditLog records one authorization decision, allowed or denied, together with the
// operator identity and the request it was taken for.
type AuditLog struct {
	ID           uuid.UUID
	RequestID    string
	SessionID    *uuid.UUID
	Username     string
	Role         rbacDomain.Role
	Capabilities []string
	Mode         string
	Path         string
	Method       string
	Allowed      bool
	CreatedAt    time.Time
}

// NewDecision builds the audit record of a requirement evaluation.
func NewDecision(
	requirement rbacDomain.Requirement,
	role rbacDomain.Role,
	method, path string,
	allowed bool,
) *AuditLog {
	return &AuditLog{
		Role:         role,
		Capabilities: requirement.Strings(),
		Mode:         string(requirement.Mode),
		Path:         path,
		Method:       method,
		Allowed:      allowed,
	}
}
