// Package cache provides byte caching for transformed topology graphs.
//
// Transforming a large inventory upload is cheap but not free, and the same
// payload tends to be re-submitted as users step back and forth through the
// planning wizard. The API caches serialized transform results keyed by a
// hash of the payload and its options.
//
// Three backends exist: Null (disabled), File (single-instance CLI and dev),
// and Redis (multi-instance deployments).
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by helpers that treat a miss as an error;
// Get itself reports misses through its bool return.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores serialized transform results.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present
	// and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A non-positive TTL stores forever.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
