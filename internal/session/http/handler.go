package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/mediport/internal/errors"
	"github.com/allisson/mediport/internal/httputil"
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
	"github.com/allisson/mediport/internal/session/http/dto"
	sessionUseCase "github.com/allisson/mediport/internal/session/usecase"
	customValidation "github.com/allisson/mediport/internal/validation"
)

// SessionHandler handles login, logout and session introspection.
type SessionHandler struct {
	sessionUseCase sessionUseCase.SessionUseCase
	policy         *rbacDomain.Policy
	logger         *slog.Logger
}

// NewSessionHandler creates a new session handler with required dependencies.
func NewSessionHandler(
	sessionUseCase sessionUseCase.SessionUseCase,
	policy *rbacDomain.Policy,
	logger *slog.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		policy:         policy,
		logger:         logger,
	}
}

// LoginHandler authenticates against the records API and opens a session.
// POST /v1/auth/login - Returns 201 Created with the session token.
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.sessionUseCase.Login(c.Request.Context(), &sessionDomain.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapLoginOutputToResponse(output))
}

// LogoutHandler revokes the current session.
// POST /v1/auth/logout - Returns 204 No Content.
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	session, ok := GetSession(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	if err := h.sessionUseCase.Logout(c.Request.Context(), session); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// MeHandler describes the current session.
// GET /v1/auth/me - Returns 200 OK.
func (h *SessionHandler) MeHandler(c *gin.Context) {
	session, ok := GetSession(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSessionToMeResponse(session, h.policy.Capabilities(session.Role)))
}
