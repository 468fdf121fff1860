// Package http provides HTTP handlers for the payment field engine.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/paymentfields/internal/field/domain"
	"github.com/allisson/paymentfields/internal/field/http/dto"
	"github.com/allisson/paymentfields/internal/field/service"
	fieldUseCase "github.com/allisson/paymentfields/internal/field/usecase"
	"github.com/allisson/paymentfields/internal/httputil"
	customValidation "github.com/allisson/paymentfields/internal/validation"
)

// FieldHandler handles HTTP requests for field edits, formatting and validation.
type FieldHandler struct {
	fieldUseCase fieldUseCase.FieldUseCase
	logger       *slog.Logger
}

// NewFieldHandler creates a new field handler with required dependencies.
func NewFieldHandler(fieldUseCase fieldUseCase.FieldUseCase, logger *slog.Logger) *FieldHandler {
	return &FieldHandler{
		fieldUseCase: fieldUseCase,
		logger:       logger,
	}
}

// logValue returns a loggable rendition of a field value. Card numbers are masked and
// other values are reduced to their length.
func logValue(kind domain.Kind, text string) slog.Attr {
	if kind == domain.KindCardNumber {
		return slog.String("value", domain.Mask(service.Digits(text)))
	}
	return slog.Int("value_length", len([]rune(text)))
}

// EditHandler applies an edit to a field.
// POST /v1/fields/:kind/edit
// Returns 200 OK with the committed (or kept) text and its validation state.
func (h *FieldHandler) EditHandler(c *gin.Context) {
	var req dto.EditRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	req.Kind = c.Param("kind")

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	kind := domain.Kind(req.Kind)
	edit := req.ToEdit()
	result, err := h.fieldUseCase.ApplyEdit(c.Request.Context(), kind, edit, req.ToRules())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Debug("field edit",
		slog.String("kind", kind.String()),
		logValue(kind, edit.Proposed()),
		slog.Bool("allowed", result.Allowed),
		slog.String("state", result.State.String()),
	)

	c.JSON(http.StatusOK, dto.MapEditResultToResponse(result))
}

// FormatHandler returns the display form of a value.
// POST /v1/fields/:kind/format
func (h *FieldHandler) FormatHandler(c *gin.Context) {
	var req dto.TextRequest
	if !h.bindTextRequest(c, &req) {
		return
	}

	formatted, err := h.fieldUseCase.Format(c.Request.Context(), domain.Kind(req.Kind), req.Text, req.ToRules())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.FormatResponse{Kind: req.Kind, Formatted: formatted})
}

// ValidateHandler classifies a value.
// POST /v1/fields/:kind/validate
func (h *FieldHandler) ValidateHandler(c *gin.Context) {
	var req dto.TextRequest
	if !h.bindTextRequest(c, &req) {
		return
	}

	state, err := h.fieldUseCase.Validate(c.Request.Context(), domain.Kind(req.Kind), req.Text, req.ToRules())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ValidateResponse{Kind: req.Kind, State: state})
}

func (h *FieldHandler) bindTextRequest(c *gin.Context, req *dto.TextRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return false
	}
	req.Kind = c.Param("kind")

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return false
	}
	return true
}

// ValidateFormHandler validates a whole checkout form.
// POST /v1/forms/validate
// Returns 200 OK with per-field states, the blocking fields and whether the form can be
// submitted.
func (h *FieldHandler) ValidateFormHandler(c *gin.Context) {
	var req dto.FormRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result, err := h.fieldUseCase.ValidateForm(c.Request.Context(), req.ToForm())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Debug("form validated",
		logValue(domain.KindCardNumber, req.CardNumber),
		slog.String("brand", string(result.Brand)),
		slog.Bool("can_submit", result.CanSubmit),
	)

	c.JSON(http.StatusOK, dto.MapFormResultToResponse(result))
}
