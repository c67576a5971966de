// Package services implements the business logic of the feedback service.
// This file centralizes service-level error values so they can be returned
// consistently by service methods and checked by callers.
//
// Translation into HTTP statuses happens at the handler layer; these values
// stay transport-agnostic.
package services

import "errors"

var (
	// ErrFeedbackNotFound indicates that no feedback entry exists for the
	// requested id. Absence is an expected outcome, not a server fault.
	ErrFeedbackNotFound = errors.New("feedback not found")
)
