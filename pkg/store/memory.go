package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps records in a process-local map. Used by tests and by
// API deployments without a configured Mongo backend.
// Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// Save stores a record, replacing any existing one under the same hash.
func (s *MemoryStore) Save(ctx context.Context, rec Record) error {
	s.mu.Lock()
	s.records[rec.Hash] = rec
	s.mu.Unlock()
	return nil
}

// Get retrieves a record by hash.
func (s *MemoryStore) Get(ctx context.Context, hash string) (Record, error) {
	s.mu.RLock()
	rec, ok := s.records[hash]
	s.mu.RUnlock()
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// List returns up to limit records, most recent first.
func (s *MemoryStore) List(ctx context.Context, limit int64) ([]Record, error) {
	s.mu.RLock()
	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Delete removes a record.
func (s *MemoryStore) Delete(ctx context.Context, hash string) error {
	s.mu.Lock()
	delete(s.records, hash)
	s.mu.Unlock()
	return nil
}

// Close does nothing.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
