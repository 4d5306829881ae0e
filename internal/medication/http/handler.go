// Package http provides HTTP handlers for the medication inventory.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/mediport/internal/errors"
	"github.com/allisson/mediport/internal/httputil"
	"github.com/allisson/mediport/internal/medication/http/dto"
	medicationUseCase "github.com/allisson/mediport/internal/medication/usecase"
	sessionHTTP "github.com/allisson/mediport/internal/session/http"
	customValidation "github.com/allisson/mediport/internal/validation"
)

// MedicationHandler handles HTTP requests for the medication inventory.
type MedicationHandler struct {
	medicationUseCase medicationUseCase.MedicationUseCase
	logger            *slog.Logger
}

// NewMedicationHandler creates a new medication handler with required dependencies.
func NewMedicationHandler(
	medicationUseCase medicationUseCase.MedicationUseCase,
	logger *slog.Logger,
) *MedicationHandler {
	return &MedicationHandler{
		medicationUseCase: medicationUseCase,
		logger:            logger,
	}
}

func (h *MedicationHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid medication ID format: must be a positive integer"),
			h.logger)
		return 0, false
	}
	return id, true
}

// ListHandler lists the inventory.
// GET /v1/medications?search= - Requires view_medications.
func (h *MedicationHandler) ListHandler(c *gin.Context) {
	principal, ok := sessionHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	medications, err := h.medicationUseCase.List(c.Request.Context(), principal, c.Query("search"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMedicationsToListResponse(medications))
}

// GetHandler retrieves an inventory entry.
// GET /v1/medications/:id - Requires view_medications.
func (h *MedicationHandler) GetHandler(c *gin.Context) {
	principal, ok := sessionHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	medication, err := h.medicationUseCase.Get(c.Request.Context(), principal, id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMedicationToResponse(medication))
}

// CreateHandler adds an inventory entry.
// POST /v1/medications - Requires manage_medications. Returns 201 Created.
func (h *MedicationHandler) CreateHandler(c *gin.Context) {
	principal, ok := sessionHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.MedicationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	medication, err := h.medicationUseCase.Create(c.Request.Context(), principal, req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapMedicationToResponse(medication))
}

// UpdateHandler replaces an inventory entry.
// PUT /v1/medications/:id - Requires manage_medications.
func (h *MedicationHandler) UpdateHandler(c *gin.Context) {
	principal, ok := sessionHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.MedicationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	medication, err := h.medicationUseCase.Update(c.Request.Context(), principal, id, req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMedicationToResponse(medication))
}

// DeleteHandler removes an inventory entry.
// DELETE /v1/medications/:id - Requires manage_medications. Returns 204 No Content.
func (h *MedicationHandler) DeleteHandler(c *gin.Context) {
	principal, ok := sessionHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.medicationUseCase.Delete(c.Request.Context(), principal, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
