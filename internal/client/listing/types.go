// Package listing drives a searchable, paginated list backed by a remote
// fetch. It debounces search input, keeps at most one authoritative fetch in
// flight, and drops results that a newer request has superseded.
package listing

import (
	"context"
	"fmt"
)

// Keyed items have a stable identity used for de-duplication and removal.
type Keyed interface {
	Key() string
}

type Mode int

const (
	// ModePaged replaces the items with each fetched page.
	ModePaged Mode = iota
	// ModeInfinite appends pages, skipping keys already present.
	ModeInfinite
)

type State int

const (
	StateIdle State = iota
	StateDebouncing
	StateFetching
	StateLoaded
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDebouncing:
		return "debouncing"
	case StateFetching:
		return "fetching"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Query is what a fetch is issued with.
type Query struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// Result is one fetched page. TotalKnown is false for endpoints that do not
// report a total.
type Result[T any] struct {
	Items      []T
	Total      int
	TotalKnown bool
}

// FetchFunc loads one page. It should return promptly once ctx is done.
type FetchFunc[T any] func(ctx context.Context, q Query) (Result[T], error)

// Notifier surfaces fetch failures to the user.
type Notifier interface {
	Error(msg string)
}

// Snapshot is a copy of the list state at one instant.
type Snapshot[T any] struct {
	State       State
	Query       Query
	SearchInput string
	Items       []T
	Total       int
	TotalKnown  bool
	Pages       int
	HasMore     bool
	Loading     bool
	Err         error
	Generation  uint64
}

func totalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
