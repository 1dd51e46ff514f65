// Package cache stores generated plan snapshots keyed by the inputs that
// produced them.
//
// Generation is deterministic for an explicit seed, so a snapshot cached
// under the hash of (component, plot, seed, flips, margin, template) can be
// replayed instead of re-running the layout passes. Three backends are
// provided: [NullCache] for --no-cache, [FileCache] for the CLI and
// [RedisCache] for the HTTP server.
package cache

import (
	"context"
	"time"
)

// PlanTTL is how long a cached plan snapshot stays valid.
const PlanTTL = 30 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data; a zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
