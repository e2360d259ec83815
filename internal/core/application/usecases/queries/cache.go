package queries

import (
	"context"
	"time"
)

// Cache is a byte-oriented read-model cache with per-entry expiration.
// A miss is reported as a nil value with a nil error, so callers can fall
// through to the database without inspecting error kinds.
type Cache interface {
	// Get returns the cached value for the key, or (nil, nil) on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the value under the key with the given time to live.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
