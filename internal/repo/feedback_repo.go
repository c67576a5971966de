// Package repo implements the data persistence layer for the feedback
// service, backed by GORM. This file provides the repository functions for
// the Feedback model.
//
// The repository follows a "thin" approach: it performs persistence and simple
// query composition, leaving input validation to the services package.
//
// Error semantics:
//   - GetFeedback returns ErrNotFound when no row matches; absence is an
//     expected outcome, not a server fault.
//   - ListFeedbacks returns ErrInvalidPage when the caller passes paging
//     bounds outside the documented window; callers are expected to validate
//     before calling, so hitting it indicates a programming error upstream.
//   - On other DB errors (connectivity, constraints, etc.) the raw gorm error
//     is propagated unchanged; retries are the caller's decision.
package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/feedbacklab/go-feedback-backend/internal/domain"
)

// Paging bounds accepted by ListFeedbacks.
const (
	MaxListLimit = 1000
)

var (
	// ErrNotFound indicates a lookup matched no row.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidPage indicates skip/limit outside the accepted bounds
	// (skip >= 0, 1 <= limit <= MaxListLimit).
	ErrInvalidPage = errors.New("invalid pagination bounds")
)

// CreateFeedback inserts a single feedback row and returns the fully
// populated entity. Name and email may be nil (stored as NULL). After the
// insert the row is re-read by primary key so that store-assigned fields
// (id, created_at) reflect exactly what was persisted.
func CreateFeedback(ctx context.Context, db *gorm.DB, name, email *string, message string) (*domain.Feedback, error) {
	fb := &domain.Feedback{
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(fb).Error; err != nil {
		return nil, err
	}

	var out domain.Feedback
	if err := db.WithContext(ctx).First(&out, fb.ID).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// ListFeedbacks returns at most limit feedback rows, newest first, after
// skipping the first skip rows. Ordering is by created_at descending with id
// descending as the tie-breaker (ids are insertion-ordered). A skip beyond
// the row count yields an empty slice, not an error.
func ListFeedbacks(ctx context.Context, db *gorm.DB, skip, limit int) ([]domain.Feedback, error) {
	if skip < 0 || limit < 1 || limit > MaxListLimit {
		return nil, ErrInvalidPage
	}

	var out []domain.Feedback
	err := db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset(skip).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetFeedback looks up a single feedback row by primary key. A missing row is
// reported as ErrNotFound.
func GetFeedback(ctx context.Context, db *gorm.DB, id int64) (*domain.Feedback, error) {
	var fb domain.Feedback
	if err := db.WithContext(ctx).First(&fb, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &fb, nil
}

// CountFeedbacks returns the total number of stored feedback rows. Used for
// pagination metadata on listings.
func CountFeedbacks(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&domain.Feedback{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
