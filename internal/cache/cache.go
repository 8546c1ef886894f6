// Package cache defines the external cache collaborator contract and its
// Redis and in-memory implementations.
//
// The scorer only consumes a get/set-by-key contract. A cache outage
// never fails a request: callers log a warning and recompute.
package cache

import (
	"context"
	"time"
)

// Store is the get/set-by-key contract the scoring service consumes.
// Get returns (nil, false, nil) on a clean miss; errors indicate the
// backend is unavailable, which callers treat as a miss.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
