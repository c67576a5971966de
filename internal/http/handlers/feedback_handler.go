// Feedback HTTP handlers.
//
// This file exposes the REST endpoints for collecting and reading feedback:
//   - POST /feedbacks      (submit feedback)
//   - GET  /feedbacks      (list feedback, newest first, skip/limit paging)
//   - GET  /feedbacks/{id} (fetch a single entry)
//
// Handlers are transport-thin: they parse and bounds-check inputs, delegate
// to the FeedbackService, and translate service errors into HTTP results.
// Validation problems come back as 422 with field-level detail before any
// store access happens; storage failures are logged server-side and surfaced
// as an opaque 500.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/feedbacklab/go-feedback-backend/internal/domain"
	"github.com/feedbacklab/go-feedback-backend/internal/http/middleware"
	"github.com/feedbacklab/go-feedback-backend/internal/services"
	"github.com/feedbacklab/go-feedback-backend/internal/utils"
)

// Listing defaults and bounds for GET /feedbacks.
const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// FeedbackService abstracts the use-case layer the handlers depend on,
// keeping transport concerns separate from business logic.
type FeedbackService interface {
	// Create validates and persists a submission.
	Create(ctx context.Context, in services.FeedbackInput) (*domain.Feedback, error)
	// List returns a newest-first page of entries.
	List(ctx context.Context, skip, limit int) ([]domain.Feedback, error)
	// Get fetches one entry by id.
	Get(ctx context.Context, id int64) (*domain.Feedback, error)
	// Count returns the total number of stored entries.
	Count(ctx context.Context) (int64, error)
}

// Handlers groups the HTTP endpoints of the feedback API.
type Handlers struct {
	fbSvc FeedbackService
}

// New constructs a Handlers instance bound to the given service.
func New(fbSvc FeedbackService) *Handlers {
	return &Handlers{fbSvc: fbSvc}
}

// CreateFeedbackRequest is the JSON payload for submitting feedback. Name and
// email are optional; trimming, length, and email-syntax rules are enforced
// by the validation layer, not by binding tags, so that all field errors are
// collected into one response.
type CreateFeedbackRequest struct {
	Name    *string `json:"name" example:"Alice"`
	Email   *string `json:"email" example:"alice@example.com"`
	Message string  `json:"message" example:"Great service!"`
}

// CreateFeedback godoc
// @ID          createFeedback
// @Summary     Submit feedback
// @Description Stores a feedback entry (optional name and email, required message).
// @Tags        Feedback
// @Accept      json
// @Produce     json
//
// @Param       body body handlers.CreateFeedbackRequest true "Feedback payload"
//
// @Success     201  {object} domain.Feedback
// @Failure     422  {object} handlers.ValidationErrorResponse "Invalid payload"
// @Failure     500  {object} handlers.ErrorResponse           "Internal server error"
// @Router      /feedbacks [post]
func (h *Handlers) CreateFeedback(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, []services.FieldError{{Field: "body", Reason: "invalid JSON payload"}})
		return
	}

	fb, err := h.fbSvc.Create(c.Request.Context(), services.FeedbackInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			failValidation(c, ve.Fields)
			return
		}
		middleware.LoggerFrom(c).Error().Err(err).Msg("create feedback failed")
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
		return
	}

	middleware.LoggerFrom(c).Info().Int64("feedback_id", fb.ID).Msg("feedback created")
	ok(c, http.StatusCreated, fb)
}

// ListFeedbacks godoc
// @ID          listFeedbacks
// @Summary     List feedback
// @Description Returns stored feedback entries, most recent first.
// @Tags        Feedback
// @Produce     json
//
// @Param       skip  query int false "Number of records to skip"           default(0)   minimum(0)
// @Param       limit query int false "Maximum number of records to return" default(100) minimum(1) maximum(1000)
//
// @Success     200  {array}  domain.Feedback
// @Header      200  {string} X-Total-Count "Total number of stored entries"
// @Failure     422  {object} handlers.ValidationErrorResponse "Invalid query parameters"
// @Failure     500  {object} handlers.ErrorResponse           "Internal server error"
// @Router      /feedbacks [get]
func (h *Handlers) ListFeedbacks(c *gin.Context) {
	var fields []services.FieldError

	skip, err := utils.ParseIntDefault(c.Query("skip"), 0)
	switch {
	case err != nil:
		fields = append(fields, services.FieldError{Field: "skip", Reason: "must be an integer"})
	case skip < 0:
		fields = append(fields, services.FieldError{Field: "skip", Reason: "must be greater than or equal to 0"})
	}

	limit, err := utils.ParseIntDefault(c.Query("limit"), defaultListLimit)
	switch {
	case err != nil:
		fields = append(fields, services.FieldError{Field: "limit", Reason: "must be an integer"})
	case limit < 1 || limit > maxListLimit:
		fields = append(fields, services.FieldError{Field: "limit", Reason: "must be between 1 and 1000"})
	}

	if len(fields) > 0 {
		failValidation(c, fields)
		return
	}

	total, err := h.fbSvc.Count(c.Request.Context())
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("count feedbacks failed")
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
		return
	}

	items, err := h.fbSvc.List(c.Request.Context(), skip, limit)
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("list feedbacks failed")
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
		return
	}
	if items == nil {
		// Serialize an empty page as [] rather than null.
		items = []domain.Feedback{}
	}

	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	ok(c, http.StatusOK, items)
}

// GetFeedback godoc
// @ID          getFeedback
// @Summary     Fetch one feedback entry
// @Description Returns a single feedback entry by id.
// @Tags        Feedback
// @Produce     json
//
// @Param       id path int true "Feedback ID" example(42)
//
// @Success     200  {object} domain.Feedback
// @Failure     404  {object} handlers.ErrorResponse           "No such entry"
// @Failure     422  {object} handlers.ValidationErrorResponse "Non-integer id"
// @Failure     500  {object} handlers.ErrorResponse           "Internal server error"
// @Router      /feedbacks/{id} [get]
func (h *Handlers) GetFeedback(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		failValidation(c, []services.FieldError{{Field: "id", Reason: "must be an integer"}})
		return
	}

	fb, err := h.fbSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrFeedbackNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "feedback not found")
			return
		}
		middleware.LoggerFrom(c).Error().Err(err).Msg("get feedback failed")
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
		return
	}

	ok(c, http.StatusOK, fb)
}
