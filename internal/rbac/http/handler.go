package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/mediport/internal/errors"
	"github.com/allisson/mediport/internal/httputil"
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
	"github.com/allisson/mediport/internal/rbac/http/dto"
	sessionHTTP "github.com/allisson/mediport/internal/session/http"
	customValidation "github.com/allisson/mediport/internal/validation"
)

// PermissionHandler serves the role policy to the dashboard.
type PermissionHandler struct {
	policy *rbacDomain.Policy
	logger *slog.Logger
}

// NewPermissionHandler creates a new permission handler.
func NewPermissionHandler(policy *rbacDomain.Policy, logger *slog.Logger) *PermissionHandler {
	return &PermissionHandler{
		policy: policy,
		logger: logger,
	}
}

// RolesHandler returns the role to capability table.
// GET /v1/roles - Requires manage_users.
func (h *PermissionHandler) RolesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MapPolicyToRolesResponse(h.policy))
}

// PermissionsHandler returns the capabilities of the current session role.
// GET /v1/permissions
func (h *PermissionHandler) PermissionsHandler(c *gin.Context) {
	session, ok := sessionHTTP.GetSession(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.PermissionsResponse{
		Role:         string(session.Role),
		Capabilities: dto.CapabilityStrings(h.policy.Capabilities(session.Role)),
	})
}

// CheckHandler evaluates a capability requirement for the current session role.
// POST /v1/permissions/check - Unknown capabilities evaluate to false.
func (h *PermissionHandler) CheckHandler(c *gin.Context) {
	session, ok := sessionHTTP.GetSession(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CheckRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	requirement, err := req.Requirement()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapCheckToResponse(h.policy, session.Role, requirement)
	if len(response.Unknown) > 0 {
		h.logger.Debug("permission check names unknown capabilities",
			slog.String("username", session.Username),
			slog.Any("unknown", response.Unknown))
	}

	c.JSON(http.StatusOK, response)
}
