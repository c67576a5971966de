// Package handlers provides the HTTP handler implementations for the public
// API.
//
// This file defines the response utilities shared by all endpoints: the
// structured error envelopes and helpers that keep success and failure
// responses uniform. Two envelopes exist:
//
//   - ErrorResponse for generic failures (404, 429, 500, ...)
//   - ValidationErrorResponse for 422s, which additionally enumerate every
//     offending field so clients can render per-field messages
//
// fail() centralizes logging so 5xx responses are always recorded with
// request context; the client-facing message for those stays generic and
// never carries internal error text.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feedbacklab/go-feedback-backend/internal/http/middleware"
	"github.com/feedbacklab/go-feedback-backend/internal/services"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
//
// RequestID correlates server logs with client-side errors; Code is a stable
// machine-readable string (see errors.go); Message is safe to show to users.
type ErrorResponse struct {
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	Code      string `json:"code" example:"not_found"`
	Message   string `json:"message" example:"resource not found"`
}

// ValidationErrorResponse is the 422 envelope. It extends ErrorResponse with
// the list of offending fields produced by the validation layer.
type ValidationErrorResponse struct {
	RequestID string                `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	Code      string                `json:"code" example:"validation_failed"`
	Message   string                `json:"message" example:"request validation failed"`
	Fields    []services.FieldError `json:"fields"`
}

// fail aborts the request with a structured error envelope. Server errors
// (>= 500) are logged with the request-scoped logger before responding.
func fail(c *gin.Context, status int, code, msg string) {
	resp := ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	}

	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail(), for use by router-level fallbacks
// (NoRoute, NoMethod) without exposing unexported helpers.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// failValidation aborts with a 422 envelope listing each offending field.
func failValidation(c *gin.Context, fields []services.FieldError) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      ErrCodeValidation,
		Message:   "request validation failed",
		Fields:    fields,
	})
}

// ok writes a success JSON response with the given status code.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
