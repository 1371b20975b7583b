// Package cache provides content-addressed caching for built graph
// snapshots.
//
// Assembling a large visualization model is cheap relative to parsing, but
// repeated CLI and API invocations over the same analysis output are
// common, so built graphs are cached keyed by a hash of the raw input set
// plus the build options that shaped the result. Backends range from a
// process-local map (tests, embedded use) through files (CLI) to Redis
// (shared API deployments).
package cache

import (
	"context"
	"time"
)

// TTL values for cached entries.
const (
	// TTLGraph is how long a built graph stays valid. Inputs are
	// content-addressed, so entries never go stale - the TTL only bounds
	// disk/memory growth.
	TTLGraph = 24 * time.Hour

	// TTLForever disables expiration.
	TTLForever = time.Duration(0)
)

// Cache is the backend-agnostic storage interface.
// A zero ttl means the entry never expires.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given time-to-live.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// =============================================================================
// Cache Keys
// =============================================================================

// BuildKeyOpts are the build options that participate in a graph cache key.
// Two builds over identical inputs with different layout settings must not
// share an entry.
type BuildKeyOpts struct {
	AssignPositions   bool
	Strategy          string
	Spacing           float64
	HorizontalSpacing float64
	VerticalSpacing   float64
}

// Keyer generates cache keys. Implementations must be deterministic: equal
// arguments always produce the same key.
type Keyer interface {
	// InputKey generates a key for a raw analysis input set.
	InputKey(inputHash string) string

	// GraphKey generates a key for a built graph snapshot.
	GraphKey(inputHash string, opts BuildKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256 under a type prefix.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// InputKey generates a key for a raw analysis input set.
func (k *DefaultKeyer) InputKey(inputHash string) string {
	return hashKey("input", inputHash)
}

// GraphKey generates a key for a built graph snapshot.
func (k *DefaultKeyer) GraphKey(inputHash string, opts BuildKeyOpts) string {
	return hashKey("graph", inputHash, opts)
}
