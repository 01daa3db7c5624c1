// Package metadata is the small key/value store that backs the persisted
// client session.
package metadata

import (
	"context"
	"time"
)

// Repository stores opaque values under string keys. Get returns (nil, nil)
// for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
	UpdatedAt(ctx context.Context, key string) (time.Time, bool, error)
}
