// Package http exposes the role policy over HTTP and provides the capability gates
// placed in front of gateway routes.
package http

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	auditDomain "github.com/allisson/mediport/internal/audit/domain"
	apperrors "github.com/allisson/mediport/internal/errors"
	"github.com/allisson/mediport/internal/httputil"
	"github.com/allisson/mediport/internal/metrics"
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
	sessionHTTP "github.com/allisson/mediport/internal/session/http"
)

// AuditRecorder persists authorization decisions.
type AuditRecorder interface {
	Record(ctx context.Context, auditLog *auditDomain.AuditLog) error
}

// Authorizer builds capability gates. Every decision is logged, audited and counted.
type Authorizer struct {
	policy          *rbacDomain.Policy
	auditLogs       AuditRecorder
	businessMetrics metrics.BusinessMetrics
	logger          *slog.Logger
}

// NewAuthorizer creates an Authorizer.
func NewAuthorizer(
	policy *rbacDomain.Policy,
	auditLogs AuditRecorder,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) *Authorizer {
	return &Authorizer{
		policy:          policy,
		auditLogs:       auditLogs,
		businessMetrics: businessMetrics,
		logger:          logger,
	}
}

// RequireCapability admits sessions whose role holds capability.
func (a *Authorizer) RequireCapability(capability rbacDomain.Capability) gin.HandlerFunc {
	return a.Middleware(rbacDomain.Require(capability))
}

// RequireAnyCapability admits sessions whose role holds at least one of capabilities.
func (a *Authorizer) RequireAnyCapability(capabilities ...rbacDomain.Capability) gin.HandlerFunc {
	return a.Middleware(rbacDomain.RequireAny(capabilities...))
}

// RequireAllCapabilities admits sessions whose role holds every capability.
func (a *Authorizer) RequireAllCapabilities(capabilities ...rbacDomain.Capability) gin.HandlerFunc {
	return a.Middleware(rbacDomain.RequireAll(capabilities...))
}

// Middleware gates a route with requirement. It must run after the session
// AuthenticationMiddleware: without a session it responds 401, on denial 403.
// Audit failures are logged and never change the decision.
func (a *Authorizer) Middleware(requirement rbacDomain.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		session, ok := sessionHTTP.GetSession(ctx)
		if !ok {
			a.logger.Debug("authorization failed: no authenticated session in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, a.logger)
			c.Abort()
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		allowed := requirement.SatisfiedBy(a.policy, session.Role)
		a.businessMetrics.RecordOperation(ctx, "rbac", "authorize", metrics.DecisionStatus(allowed))

		decision := auditDomain.NewDecision(requirement, session.Role, c.Request.Method, path, allowed)
		sessionID := session.ID
		decision.SessionID = &sessionID
		decision.Username = session.Username
		if err := a.auditLogs.Record(ctx, decision); err != nil {
			a.logger.Error("failed to record authorization decision",
				slog.String("session_id", session.ID.String()),
				slog.String("path", path),
				slog.Any("error", err))
		}

		if !allowed {
			a.logger.Debug("authorization failed: insufficient permissions",
				slog.String("username", session.Username),
				slog.String("role", string(session.Role)),
				slog.String("path", path),
				slog.String("requirement", requirement.String()))
			httputil.HandleErrorGin(c, rbacDomain.ErrPermissionDenied, a.logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
