// Package services – feedback input validation.
//
// This file implements the pure validation step applied to a submission
// before anything touches the database. It is a function of its input only:
// no clock, no store, no globals. All offending fields are collected so the
// client sees every problem in one round trip, matching the behavior of
// field-level validators in typical API frameworks.
package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Input constraints for a feedback submission.
const (
	MaxMessageRunes = 2000
	MaxNameRunes    = 100
)

// emailRE accepts local-part "@" domain where the domain contains at least
// one dot and no field contains whitespace or a second "@". Deliverability is
// deliberately not checked.
var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FeedbackInput is the raw, untrusted shape of a creation request. Name and
// Email are nil when the client omitted them.
type FeedbackInput struct {
	Name    *string
	Email   *string
	Message string
}

// CreateFeedbackPayload is the sanitized, constraint-checked form of a
// submission, safe to persist. Name is nil when absent or empty after
// trimming; Email is nil when absent and otherwise verbatim.
type CreateFeedbackPayload struct {
	Name    *string
	Email   *string
	Message string
}

// FieldError names one offending input field and the reason it was rejected.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError aggregates every field-level problem found in a submission.
// It is returned by ValidateFeedbackInput and translated to a 422 response at
// the handler boundary.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface with a compact single-line summary.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidateFeedbackInput checks a raw submission against the feedback
// constraints and returns the payload to persist, or a *ValidationError
// listing every offending field.
//
// Rules, each field independent:
//   - message: required; trimmed; rejected when empty or whitespace-only, or
//     when the trimmed text exceeds MaxMessageRunes.
//   - name: optional; trimmed; empty-after-trim becomes absent (not an
//     error); rejected when the trimmed text exceeds MaxNameRunes.
//   - email: optional; must look like local@domain with a dotted domain and
//     no whitespace; kept verbatim (no case normalization).
func ValidateFeedbackInput(in FeedbackInput) (CreateFeedbackPayload, error) {
	var fields []FieldError
	var out CreateFeedbackPayload

	msg := strings.TrimSpace(in.Message)
	switch {
	case msg == "":
		fields = append(fields, FieldError{Field: "message", Reason: "message is required"})
	case utf8.RuneCountInString(msg) > MaxMessageRunes:
		fields = append(fields, FieldError{
			Field:  "message",
			Reason: fmt.Sprintf("message must be at most %d characters", MaxMessageRunes),
		})
	default:
		out.Message = msg
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		switch {
		case name == "":
			// Whitespace-only name means "not provided".
		case utf8.RuneCountInString(name) > MaxNameRunes:
			fields = append(fields, FieldError{
				Field:  "name",
				Reason: fmt.Sprintf("name must be at most %d characters", MaxNameRunes),
			})
		default:
			out.Name = &name
		}
	}

	if in.Email != nil {
		if !emailRE.MatchString(*in.Email) {
			fields = append(fields, FieldError{Field: "email", Reason: "invalid email address"})
		} else {
			out.Email = in.Email
		}
	}

	if len(fields) > 0 {
		return CreateFeedbackPayload{}, &ValidationError{Fields: fields}
	}
	return out, nil
}
