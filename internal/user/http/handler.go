// Package http provides HTTP handlers for staff account administration.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/mediport/internal/errors"
	"github.com/allisson/mediport/internal/httputil"
	sessionHTTP "github.com/allisson/mediport/internal/session/http"
	userDomain "github.com/allisson/mediport/internal/user/domain"
	"github.com/allisson/mediport/internal/user/http/dto"
	userUseCase "github.com/allisson/mediport/internal/user/usecase"
	customValidation "github.com/allisson/mediport/internal/validation"
)

// UserHandler handles HTTP requests for staff accounts.
type UserHandler struct {
	userUseCase userUseCase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(userUseCase userUseCase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// ListHandler lists staff accounts.
// GET /v1/users?search= - Requires manage_users.
func (h *UserHandler) ListHandler(c *gin.Context) {
	principal, ok := sessionHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	users, err := h.userUseCase.List(c.Request.Context(), principal, c.Query("search"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUsersToListResponse(users))
}

// SetStatusHandler activates, deactivates or toggles an account.
// PATCH /v1/users/:id/status - Requires manage_users.
func (h *UserHandler) SetStatusHandler(c *gin.Context) {
	principal, ok := sessionHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid user ID format: must be a positive integer"),
			h.logger)
		return
	}

	var req dto.SetStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	var user *userDomain.User
	if req.IsToggle() {
		user, err = h.userUseCase.Toggle(c.Request.Context(), principal, id)
	} else {
		user, err = h.userUseCase.SetStatus(c.Request.Context(), principal, id, userDomain.Status(req.Status))
	}
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}
