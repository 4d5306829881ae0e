// Package http provides HTTP handlers for patient records and bed occupancy.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/mediport/internal/errors"
	"github.com/allisson/mediport/internal/httputil"
	patientDomain "github.com/allisson/mediport/internal/patient/domain"
	"github.com/allisson/mediport/internal/patient/http/dto"
	patientUseCase "github.com/allisson/mediport/internal/patient/usecase"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
	sessionHTTP "github.com/allisson/mediport/internal/session/http"
	customValidation "github.com/allisson/mediport/internal/validation"
)

// PatientHandler handles HTTP requests for patients and beds.
type PatientHandler struct {
	patientUseCase patientUseCase.PatientUseCase
	logger         *slog.Logger
}

// NewPatientHandler creates a new patient handler with required dependencies.
func NewPatientHandler(patientUseCase patientUseCase.PatientUseCase, logger *slog.Logger) *PatientHandler {
	return &PatientHandler{
		patientUseCase: patientUseCase,
		logger:         logger,
	}
}

// principal returns the operator of the request, writing 401 when there is none.
func (h *PatientHandler) principal(c *gin.Context) (*sessionDomain.Principal, bool) {
	principal, ok := sessionHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return nil, false
	}
	return principal, true
}

// patientID parses the :id path parameter, writing 422 when it is not a positive integer.
func (h *PatientHandler) patientID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid patient ID format: must be a positive integer"),
			h.logger)
		return 0, false
	}
	return id, true
}

// ListHandler lists patients.
// GET /v1/patients?search=&tab=all|critical|stable - Requires view_patients.
func (h *PatientHandler) ListHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	filter := patientDomain.Filter{
		Search: c.Query("search"),
		Tab:    patientDomain.ParseTab(c.Query("tab")),
	}

	patients, err := h.patientUseCase.List(c.Request.Context(), principal, filter)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPatientsToListResponse(patients))
}

// GetHandler retrieves a patient.
// GET /v1/patients/:id - Requires view_patients.
func (h *PatientHandler) GetHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.patientID(c)
	if !ok {
		return
	}

	patient, err := h.patientUseCase.Get(c.Request.Context(), principal, id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPatientToResponse(patient))
}

// BedHandler returns the patient occupying a bed.
// GET /v1/beds/:bedId/patient - Requires view_patients. Returns 404 for a free bed.
func (h *PatientHandler) BedHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	patient, err := h.patientUseCase.FindByBed(c.Request.Context(), principal, c.Param("bedId"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPatientToResponse(patient))
}

// CreateHandler admits a patient.
// POST /v1/patients - Requires add_patients or manage_patients. Returns 201 Created.
func (h *PatientHandler) CreateHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var req dto.PatientRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	patient, err := h.patientUseCase.Create(c.Request.Context(), principal, req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapPatientToResponse(patient))
}

// UpdateHandler replaces a patient record.
// PUT /v1/patients/:id - Requires manage_patients.
func (h *PatientHandler) UpdateHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.patientID(c)
	if !ok {
		return
	}

	var req dto.PatientRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	patient, err := h.patientUseCase.Update(c.Request.Context(), principal, id, req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPatientToResponse(patient))
}

// DischargeHandler discharges a patient.
// DELETE /v1/patients/:id - Requires assign_beds or manage_patients. Returns 204 No Content.
func (h *PatientHandler) DischargeHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.patientID(c)
	if !ok {
		return
	}

	if err := h.patientUseCase.Discharge(c.Request.Context(), principal, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignBedHandler moves a patient to a free bed.
// PUT /v1/patients/:id/bed - Requires assign_beds. Returns 409 when the bed is occupied.
func (h *PatientHandler) AssignBedHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.patientID(c)
	if !ok {
		return
	}

	var req dto.AssignBedRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	patient, err := h.patientUseCase.AssignBed(c.Request.Context(), principal, id, patientDomain.BedAssignment{
		Room:  req.Room,
		BedID: req.BedID,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPatientToResponse(patient))
}

// AddPrescriptionHandler prescribes a medication.
// POST /v1/patients/:id/prescriptions - Requires manage_patients and view_medications.
func (h *PatientHandler) AddPrescriptionHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.patientID(c)
	if !ok {
		return
	}

	var req dto.PrescriptionRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	prescription, err := h.patientUseCase.AddPrescription(c.Request.Context(), principal, id, req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapPrescriptionToResponse(prescription))
}
