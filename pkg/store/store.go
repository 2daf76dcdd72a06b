// Package store provides persistence backends for boards.
//
// This package defines the [Store] interface with implementations for
// different deployments:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI applications
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage for durable server deployments
//
// # Usage
//
// Create a store:
//
//	// Development
//	st := store.NewMemoryStore()
//
//	// CLI
//	st, err := store.NewFileStore("")  // Uses ~/.config/boardkit/boards/
//
//	// Multi-instance
//	st := store.NewRedisStore(store.RedisConfig{Addr: "localhost:6379"})
//
// Persist boards:
//
//	if err := st.Put(ctx, "main", b); err != nil {
//	    return err
//	}
//	b, err := st.Get(ctx, "main")
//	if errors.Is(err, store.ErrNotFound) {
//	    // No board under that ID
//	}
package store

import (
	"context"
	"errors"

	"github.com/boardkit/boardkit/pkg/board"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when no board exists under the requested ID.
	ErrNotFound = errors.New("board not found")

	// ErrInvalidID is returned for empty or unusable board IDs.
	ErrInvalidID = errors.New("invalid board id")
)

// Store is the interface for board persistence backends.
type Store interface {
	// Get retrieves a board by ID. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (board.Board, error)

	// Put stores a board under the given ID, replacing any previous value.
	Put(ctx context.Context, id string, b board.Board) error

	// Delete removes a board. Deleting a missing board is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the stored board IDs in unspecified order.
	List(ctx context.Context) ([]string, error)
}
