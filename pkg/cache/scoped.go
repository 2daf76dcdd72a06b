package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Useful when one cache serves multiple workspaces or users.
//
// Example usage:
//
//	// Workspace-specific keys
//	wsKeyer := NewScopedKeyer(NewDefaultKeyer(), "ws:abc123:")
//
//	// Shared keys
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

// BoardKey generates a prefixed key for board document caching.
func (k *ScopedKeyer) BoardKey(id string) string {
	return k.prefix + k.inner.BoardKey(id)
}

// LayoutKey generates a prefixed key for layout result caching.
func (k *ScopedKeyer) LayoutKey(boardHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(boardHash, opts)
}

// RenderKey generates a prefixed key for rendered artifact caching.
func (k *ScopedKeyer) RenderKey(layoutHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(layoutHash, opts)
}
