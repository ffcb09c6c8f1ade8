// Package cache provides artifact caching for batch conversions.
//
// Converting the same image twice with the same mode and format is pure
// repetition: the engine is deterministic, so rendered artifacts (SVG,
// JSON, PNG bytes) can be keyed by a content hash of the pixel data plus
// the conversion options and reused across runs. Three backends exist:
//
//   - FileCache: directory-backed, the default for CLI usage
//   - RedisCache: shared cache for multi-machine batch farms
//   - NullCache: disables caching
//
// Keys are produced by a Keyer so all backends agree on naming.
package cache

import (
	"context"
	"errors"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached. Conversion is
// deterministic, so entries never go stale; the TTL only bounds disk usage.
const TTLArtifact = 30 * 24 * time.Hour

// ErrCacheMiss is returned by helpers when an item is not found in cache.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a byte-oriented key/value store with TTL support.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
