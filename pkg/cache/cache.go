// Package cache provides byte-level caching for pipeline stages.
//
// A [Cache] stores opaque bytes under string keys with optional TTL.
// A [Keyer] builds the keys for the cacheable stages:
//
//   - Board documents, keyed by board ID
//   - Layout results, keyed by the board content hash and layout options
//   - Rendered artifacts, keyed by the layout hash and output options
//
// Backends:
//
//	c := cache.NewMemoryCache()            // Server, per-process
//	c, _ := cache.NewFileCache(".cache")   // CLI, survives restarts
//	c := cache.NewNullCache()              // Caching disabled
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache TTLs per pipeline stage. Board documents change often; layout and
// render results are content-addressed and can live longer.
const (
	TTLBoard  = 24 * time.Hour
	TTLLayout = 7 * 24 * time.Hour
	TTLRender = 7 * 24 * time.Hour
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// =============================================================================
// Key Generation
// =============================================================================

// LayoutKeyOpts are the inputs that change a layout result.
type LayoutKeyOpts struct {
	CanvasWidth  int
	CanvasHeight int
}

// RenderKeyOpts are the inputs that change a rendered artifact.
type RenderKeyOpts struct {
	Format   string // "text", "svg", "dot", "png", or "pdf"
	Width    int
	Height   int
	Detailed bool // DOT label detail
}

// Keyer builds cache keys for the cacheable pipeline stages.
type Keyer interface {
	// BoardKey generates a key for board document caching.
	BoardKey(id string) string

	// LayoutKey generates a key for layout result caching.
	LayoutKey(boardHash string, opts LayoutKeyOpts) string

	// RenderKey generates a key for rendered artifact caching.
	RenderKey(layoutHash string, opts RenderKeyOpts) string
}

// DefaultKeyer hashes all key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

func (k *DefaultKeyer) BoardKey(id string) string {
	return hashKey("board", id)
}

func (k *DefaultKeyer) LayoutKey(boardHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", boardHash, opts)
}

func (k *DefaultKeyer) RenderKey(layoutHash string, opts RenderKeyOpts) string {
	return hashKey("render", layoutHash, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
