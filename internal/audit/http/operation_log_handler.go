// Package http provides HTTP handlers for the operation audit log.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/redactor/internal/audit/http/dto"
	auditUseCase "github.com/allisson/redactor/internal/audit/usecase"
	"github.com/allisson/redactor/internal/httputil"
)

// OperationLogHandler handles HTTP requests for the audit log.
type OperationLogHandler struct {
	audit  auditUseCase.AuditUseCase
	logger *slog.Logger
}

// NewOperationLogHandler creates a new audit log handler with required dependencies.
func NewOperationLogHandler(audit auditUseCase.AuditUseCase, logger *slog.Logger) *OperationLogHandler {
	return &OperationLogHandler{
		audit:  audit,
		logger: logger,
	}
}

// RegisterRoutes registers the audit log routes on the router.
func (h *OperationLogHandler) RegisterRoutes(router gin.IRouter) {
	v1 := router.Group("/v1")
	v1.GET("/operations", h.ListHandler)
}

// ListHandler lists recorded operations newest first.
// GET /v1/operations
// Returns 200 OK with a page of audit log entries.
func (h *OperationLogHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	logs, err := h.audit.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapOperationLogsToResponse(logs, offset, limit))
}
