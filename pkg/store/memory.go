package store

import (
	"context"
	"sync"

	"github.com/boardkit/boardkit/pkg/board"
)

// MemoryStore is an in-memory board store for development and testing.
// Safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	boards map[string]board.Board
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{boards: make(map[string]board.Board)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (board.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.boards[id]
	if !ok {
		return board.Board{}, ErrNotFound
	}
	return b, nil
}

func (s *MemoryStore) Put(ctx context.Context, id string, b board.Board) error {
	if id == "" {
		return ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.boards[id] = b
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.boards, id)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.boards))
	for id := range s.boards {
		ids = append(ids, id)
	}
	return ids, nil
}
