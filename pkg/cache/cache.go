// Package cache provides pluggable byte caches and cache-key generation
// for the hull pipeline.
//
// Three backends are available: [FileCache] for CLI usage, [MemoryCache]
// for tests and short-lived servers, and [RedisCache] for shared server
// deployments. [NullCache] disables caching entirely.
//
// Keys are produced by a [Keyer], so the key schema lives in one place
// and backends stay oblivious to what they store.
package cache

import (
	"context"
	"time"
)

// Default TTLs per cached stage. Hull results are pure functions of
// their input and could live forever; bounded TTLs keep cache
// directories from growing without limit.
const (
	// TTLHull is the lifetime of cached hull computations.
	TTLHull = 7 * 24 * time.Hour

	// TTLArtifact is the lifetime of cached rendered artifacts.
	TTLArtifact = 24 * time.Hour
)

// Cache is a byte-oriented key-value store with expiration.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of zero or less
	// means the entry does not expire.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// HullKeyOpts are the computation parameters that affect a hull result
// and therefore belong in its cache key.
type HullKeyOpts struct {
	Policy   string `json:"policy"`
	Integral bool   `json:"integral"`
}

// ArtifactKeyOpts are the render parameters that affect an artifact.
type ArtifactKeyOpts struct {
	Format     string `json:"format"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	ShowPoints bool   `json:"show_points,omitempty"`
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// HullKey generates a key for a computed hull, given the hash of
	// the deduplicated input points.
	HullKey(pointsHash string, opts HullKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact, given the
	// hash of the hull it renders.
	ArtifactKey(hullHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key schema: stage prefix plus a SHA-256
// over the input hash and options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// HullKey generates a key for a computed hull.
func (k *DefaultKeyer) HullKey(pointsHash string, opts HullKeyOpts) string {
	return hashKey("hull", pointsHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(hullHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", hullHash, opts)
}
