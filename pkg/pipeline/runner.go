package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/boardkit/boardkit/pkg/board"
	"github.com/boardkit/boardkit/pkg/cache"
	"github.com/boardkit/boardkit/pkg/core/scene"
	"github.com/boardkit/boardkit/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.Source())
	b, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	observability.Pipeline().OnLoadComplete(ctx, opts.Source(), len(b.Objects), time.Since(loadStart), err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.ObjectCount = len(b.Objects)
	result.CacheInfo.LoadHit = loadHit

	// Compute board hash for cache keys and API responses
	if data, err := board.Marshal(b); err == nil {
		result.BoardHash = cache.Hash(data)
	}

	r.Logger.Info("loaded board",
		"objects", len(b.Objects),
		"guides", len(b.Guides),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, len(b.Objects))
	laid, layoutHit, err := r.LayoutWithCacheInfo(ctx, b, opts)
	observability.Pipeline().OnLayoutComplete(ctx, len(b.Objects), time.Since(layoutStart), err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Board = laid
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"objects", len(laid.Objects),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, laid, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo reads the board with caching and returns cache hit info.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (board.Board, bool, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return board.Board{}, false, err
	}
	r.applyLogger(&opts)
	return load(ctx, r.Cache, r.Keyer, opts)
}

// Load is a convenience wrapper that calls LoadWithCacheInfo and discards the cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (board.Board, error) {
	b, _, err := r.LoadWithCacheInfo(ctx, opts)
	return b, err
}

// LayoutWithCacheInfo runs the layout pass with caching and returns cache hit info.
// The returned board carries the final object rects.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, b board.Board, opts Options) (board.Board, bool, error) {
	r.applyLogger(&opts)

	// Compute cache key
	boardData, _ := board.Marshal(b)
	boardHash := cache.Hash(boardData)
	cacheKey := r.Keyer.LayoutKey(boardHash, opts.LayoutKeyOpts(b))

	// Try cache first
	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		cached, err := board.Read(bytes.NewReader(data))
		if err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			return cached, true, nil // Cache hit
		}
		// If deserialization fails, fall through to recompute
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	// Rebuild the scene and run the layout pass
	s, err := board.ToScene(b)
	if err != nil {
		return board.Board{}, false, fmt.Errorf("rebuild scene: %w", err)
	}
	LayoutScene(s)
	laid := board.FromScene(s, b.Name, b.Canvas, b.Guides)

	// Cache the result
	if data, err := board.Marshal(laid); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return laid, false, nil // Cache miss
}

// Layout is a convenience wrapper that calls LayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, b board.Board, opts Options) (board.Board, error) {
	laid, _, err := r.LayoutWithCacheInfo(ctx, b, opts)
	return laid, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, b board.Board, opts Options) (map[string][]byte, bool, error) {
	opts.SetRenderDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from the laid-out board
	boardData, err := board.Marshal(b)
	if err != nil {
		return nil, false, fmt.Errorf("serialize board for cache key: %w", err)
	}
	layoutHash := cache.Hash(boardData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.RenderKey(layoutHash, opts.RenderKeyOpts(b, format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "render")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "render")

	// Render all formats
	s, err := board.ToScene(b)
	if err != nil {
		return nil, false, fmt.Errorf("rebuild scene: %w", err)
	}
	rendered, err := renderFormats(b, s, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.RenderKey(layoutHash, opts.RenderKeyOpts(b, format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLRender)
		observability.Cache().OnCacheSet(ctx, "render", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, b board.Board, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, b, opts)
	return artifacts, err
}

// Scene is a convenience helper that rebuilds the scene tree from a board.
func (r *Runner) Scene(b board.Board) (*scene.Scene, error) {
	return board.ToScene(b)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
