// Package services holds the client-side use cases: each one validates its
// input, calls the backend, and keeps the stored session in step.
package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/session"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/validation"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/common"
)

// SessionStore is the part of session.Provider the services need.
type SessionStore interface {
	Get(ctx context.Context) (session.Session, error)
	Update(ctx context.Context, s session.Session) error
	UpdateUser(ctx context.Context, u session.User) error
	Clear(ctx context.Context) error
}

// ValidationError carries per-field messages. It matches common.ErrValidation.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return common.ErrValidation }

// check runs schema over in and returns the cleaned values.
func check(schema validation.Schema, in validation.Values) (validation.Values, error) {
	if errs := schema.Validate(in); !errs.Empty() {
		return nil, &ValidationError{Fields: errs}
	}
	return schema.Clean(in), nil
}
