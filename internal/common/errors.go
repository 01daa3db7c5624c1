package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Transport / API errors. Callers match them with errors.Is.
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrUnavailable  = errors.New("server unavailable")
	ErrCanceled     = errors.New("request canceled")

	// Client-side flow errors.
	ErrValidation = errors.New("validation failed")
	ErrNoSession  = errors.New("no active session")
)
