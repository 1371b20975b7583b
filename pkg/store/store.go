// Package store persists built graph snapshots for later retrieval by
// hash. Snapshots are stored opaquely - the store never interprets graph
// structure, it only files complete serialized models under their content
// hash, which is what lets the API serve previously built graphs without
// rebuilding.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/BrianMehrman/diagram-builder/pkg/ivm"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when no snapshot exists under a hash.
	ErrNotFound = errors.New("snapshot not found")

	// ErrUnavailable is returned when the backend cannot be reached.
	ErrUnavailable = errors.New("store unavailable")
)

// Record wraps a graph snapshot with its storage identity.
type Record struct {
	// Hash is the content hash of the serialized graph, used as the
	// primary key. Identical builds dedupe naturally.
	Hash string `json:"hash" bson:"_id"`

	// Name is the project name at build time, for listings.
	Name string `json:"name" bson:"name"`

	// CreatedAt is when the snapshot was stored.
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`

	// Graph is the complete snapshot.
	Graph ivm.Graph `json:"graph" bson:"graph"`
}

// Store is the snapshot persistence interface.
type Store interface {
	// Save stores a record, replacing any existing one under the same hash.
	Save(ctx context.Context, rec Record) error

	// Get retrieves a record by hash. Returns ErrNotFound if absent.
	Get(ctx context.Context, hash string) (Record, error)

	// List returns up to limit records, most recent first.
	List(ctx context.Context, limit int64) ([]Record, error)

	// Delete removes a record. Deleting a missing hash is not an error.
	Delete(ctx context.Context, hash string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
