package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/boardkit/boardkit/pkg/board"
	"github.com/boardkit/boardkit/pkg/cache"
	"github.com/boardkit/boardkit/pkg/observability"
	"github.com/boardkit/boardkit/pkg/store"
)

// =============================================================================
// Load Stage
// =============================================================================

// load reads the board document from a file or the configured store.
// Store reads go through the cache; file reads always hit the disk, since
// the file is the cheapest source of truth.
func load(ctx context.Context, c cache.Cache, keyer cache.Keyer, opts Options) (board.Board, bool, error) {
	if opts.Path != "" {
		b, err := board.ReadFile(opts.Path)
		if err != nil {
			return board.Board{}, false, err
		}
		return b, false, nil
	}

	cacheKey := keyer.BoardKey(opts.BoardID)
	if !opts.Refresh {
		if data, hit, err := c.Get(ctx, cacheKey); err == nil && hit {
			if b, err := board.Read(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "board")
				return b, true, nil // Cache hit
			}
		}
	}
	observability.Cache().OnCacheMiss(ctx, "board")

	var b board.Board
	err := cache.RetryWithBackoff(ctx, func() error {
		var getErr error
		b, getErr = opts.Store.Get(ctx, opts.BoardID)
		if getErr != nil && !errors.Is(getErr, store.ErrNotFound) {
			return cache.Retryable(getErr)
		}
		return getErr
	})
	if err != nil {
		return board.Board{}, false, fmt.Errorf("load board %q: %w", opts.BoardID, err)
	}

	if data, err := board.Marshal(b); err == nil {
		_ = c.Set(ctx, cacheKey, data, cache.TTLBoard)
		observability.Cache().OnCacheSet(ctx, "board", len(data))
	}
	return b, false, nil // Cache miss
}
