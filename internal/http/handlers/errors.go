// Package handlers defines the HTTP-layer error codes used across all API
// endpoints.
//
// These symbolic constants are mapped to HTTP responses via the fail()
// helpers in response.go and give clients a stable, machine-readable error
// taxonomy alongside the human-readable message. Codes are lowercase
// snake_case; generic codes mirror HTTP status semantics, while
// validation_failed marks 422 responses that carry field-level detail.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "validation_failed",
//	  "message": "request validation failed",
//	  "fields": [{"field": "message", "reason": "message is required"}]
//	}
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeValidation       = "validation_failed"
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeRateLimited      = "rate_limited"
	ErrCodeInternal         = "internal_error"
)
