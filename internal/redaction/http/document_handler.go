// Package http provides HTTP handlers for document redaction, restoration and
// inline fragment redaction.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	detectorDomain "github.com/allisson/redactor/internal/detector/domain"
	"github.com/allisson/redactor/internal/health"
	"github.com/allisson/redactor/internal/httputil"
	"github.com/allisson/redactor/internal/redaction/http/dto"
	redactionUseCase "github.com/allisson/redactor/internal/redaction/usecase"
	customValidation "github.com/allisson/redactor/internal/validation"
)

// StatusChecker exposes the on-demand detection service diagnostic.
type StatusChecker interface {
	CheckNow(ctx context.Context) (*detectorDomain.ServiceStatus, error)
	State() health.State
}

// DocumentHandler handles HTTP requests for redaction operations.
type DocumentHandler struct {
	redaction   redactionUseCase.RedactionUseCase
	restoration redactionUseCase.RestorationUseCase
	inline      redactionUseCase.InlineUseCase
	status      StatusChecker
	logger      *slog.Logger
}

// NewDocumentHandler creates a new document handler with required dependencies.
func NewDocumentHandler(
	redaction redactionUseCase.RedactionUseCase,
	restoration redactionUseCase.RestorationUseCase,
	inline redactionUseCase.InlineUseCase,
	status StatusChecker,
	logger *slog.Logger,
) *DocumentHandler {
	return &DocumentHandler{
		redaction:   redaction,
		restoration: restoration,
		inline:      inline,
		status:      status,
		logger:      logger,
	}
}

// RegisterRoutes registers the redaction routes on the router.
func (h *DocumentHandler) RegisterRoutes(router gin.IRouter) {
	v1 := router.Group("/v1")
	v1.POST("/documents/redact", h.RedactHandler)
	v1.POST("/documents/restore", h.RestoreHandler)
	v1.POST("/fragments/redact", h.RedactFragmentHandler)
	v1.GET("/detector/status", h.DetectorStatusHandler)
}

// RedactHandler redacts a whole document.
// POST /v1/documents/redact
// Returns 200 OK with the redaction summary.
func (h *DocumentHandler) RedactHandler(c *gin.Context) {
	var req dto.RedactDocumentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	summary, err := h.redaction.RedactDocument(c.Request.Context(), req.Document, req.DeepScan)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSummaryToResponse(summary))
}

// RestoreHandler restores a previously redacted document.
// POST /v1/documents/restore
// Returns 200 OK with the restoration summary.
func (h *DocumentHandler) RestoreHandler(c *gin.Context) {
	var req dto.RestoreDocumentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	summary, err := h.restoration.RestoreDocument(c.Request.Context(), req.Document)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRestorationSummaryToResponse(summary))
}

// RedactFragmentHandler redacts a text fragment against a document's map.
// POST /v1/fragments/redact
// Returns 200 OK with the redacted fragment and merge summary.
func (h *DocumentHandler) RedactFragmentHandler(c *gin.Context) {
	var req dto.RedactFragmentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	summary, err := h.inline.RedactFragment(c.Request.Context(), req.Document, req.Fragment, req.DeepScan)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapInlineSummaryToResponse(summary))
}

// DetectorStatusHandler probes the detection service and returns the
// diagnostic. An unreachable service is reported as data with 200 OK, not as
// a request failure; the probe also refreshes the cached health state.
func (h *DocumentHandler) DetectorStatusHandler(c *gin.Context) {
	response := dto.DetectorStatusResponse{}

	status, err := h.status.CheckNow(c.Request.Context())
	if err == nil {
		response.ServiceUp = status.ServiceUp
		response.DetectorReady = status.DetectorReady
		response.DeepScanReady = status.DeepScanReady
		response.DeepScanModel = status.DeepScanModel
	} else {
		h.logger.Warn("detection service status probe failed", slog.Any("error", err))
	}
	response.State = string(h.status.State())

	c.JSON(http.StatusOK, response)
}
