package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/common"
)

var (
	ErrUnavailable  = common.ErrUnavailable
	ErrUnauthorized = common.ErrUnauthorized
	ErrForbidden    = common.ErrForbidden
	ErrNotFound     = common.ErrNotFound
	ErrCanceled     = common.ErrCanceled
	ErrEmptyData    = errors.New("response has no data")
)

// ResponseError is a non-2xx answer from the backend.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *ResponseError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode >= http.StatusInternalServerError:
		return ErrUnavailable
	default:
		return nil
	}
}

// Message extracts the backend's message from err, or returns fallback.
func Message(err error, fallback string) string {
	var re *ResponseError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return fallback
}

// mapError turns a transport failure into a sentinel-wrapped error.
func mapError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("%w: %w", ErrCanceled, context.Canceled)
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
