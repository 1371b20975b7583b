package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation - e.g.
// per-workspace caches in a shared Redis, or separating API tenants from
// the global CLI namespace.
//
// Example usage:
//
//	// Workspace-specific keys
//	wsKeyer := NewScopedKeyer(NewDefaultKeyer(), "ws:abc123:")
//
//	// Global keys
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// InputKey generates a prefixed key for a raw analysis input set.
func (k *ScopedKeyer) InputKey(inputHash string) string {
	return k.prefix + k.inner.InputKey(inputHash)
}

// GraphKey generates a prefixed key for a built graph snapshot.
func (k *ScopedKeyer) GraphKey(inputHash string, opts BuildKeyOpts) string {
	return k.prefix + k.inner.GraphKey(inputHash, opts)
}
