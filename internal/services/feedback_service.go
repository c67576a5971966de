// Package services – FeedbackService
//
// This file implements the FeedbackService, the use-case layer between HTTP
// handlers and the repository. Create runs the pure validation step first, so
// no invalid input ever reaches the store; reads are straight pass-throughs
// with repo sentinels translated into service-level errors that handlers can
// map to HTTP results.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/feedbacklab/go-feedback-backend/internal/domain"
	"github.com/feedbacklab/go-feedback-backend/internal/repo"
)

// FeedbackService implements the use-cases around feedback collection. It is
// context-aware and safe to invoke concurrently from independent requests:
// it holds no mutable state beyond the shared connection pool inside DB.
type FeedbackService struct {
	// DB is the database handle used for all feedback operations.
	DB *gorm.DB
}

// Create validates the raw input and persists a feedback entry.
//
// Validation failures are reported as *ValidationError before any store
// access happens, so an invalid submission has zero persistence side effects.
// On success the returned entity carries the store-assigned id and
// created_at. Storage errors propagate unchanged.
func (s *FeedbackService) Create(ctx context.Context, in FeedbackInput) (*domain.Feedback, error) {
	payload, err := ValidateFeedbackInput(in)
	if err != nil {
		return nil, err
	}
	return repo.CreateFeedback(ctx, s.DB, payload.Name, payload.Email, payload.Message)
}

// List returns a newest-first page of feedback entries. Bounds are expected
// to be pre-validated by the caller (skip >= 0, 1 <= limit <= 1000); the
// repository rejects anything else with repo.ErrInvalidPage.
func (s *FeedbackService) List(ctx context.Context, skip, limit int) ([]domain.Feedback, error) {
	return repo.ListFeedbacks(ctx, s.DB, skip, limit)
}

// Get looks up one feedback entry by id, reporting ErrFeedbackNotFound when
// no row matches.
func (s *FeedbackService) Get(ctx context.Context, id int64) (*domain.Feedback, error) {
	fb, err := repo.GetFeedback(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return fb, nil
}

// Count returns the total number of stored feedback entries.
func (s *FeedbackService) Count(ctx context.Context) (int64, error) {
	return repo.CountFeedbacks(ctx, s.DB)
}
