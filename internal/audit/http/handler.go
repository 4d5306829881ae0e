// Package http provides the HTTP handler listing authorization decisions.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/mediport/internal/audit/http/dto"
	auditUseCase "github.com/allisson/mediport/internal/audit/usecase"
	"github.com/allisson/mediport/internal/httputil"
)

// AuditLogHandler handles HTTP requests for audit log operations.
type AuditLogHandler struct {
	auditLogUseCase auditUseCase.AuditLogUseCase
	logger          *slog.Logger
}

// NewAuditLogHandler creates a new audit log handler with required dependencies.
func NewAuditLogHandler(auditLogUseCase auditUseCase.AuditLogUseCase, logger *slog.Logger) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUseCase: auditLogUseCase,
		logger:          logger,
	}
}

// ListHandler retrieves authorization decisions, newest first.
// GET /v1/audit-logs?offset=0&limit=50&created_at_from=2026-02-01T00:00:00Z&created_at_to=2026-02-14T23:59:59Z
// Requires view_logs. Both time boundaries are inclusive and converted to UTC.
func (h *AuditLogHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	createdAtFrom, createdAtTo, err := httputil.ParseTimeRange(c, "created_at_from", "created_at_to")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	auditLogs, err := h.auditLogUseCase.List(c.Request.Context(), offset, limit, createdAtFrom, createdAtTo)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAuditLogsToListResponse(auditLogs))
}
