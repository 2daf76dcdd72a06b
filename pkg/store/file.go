package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/boardkit/boardkit/pkg/board"
)

// FileStore is a file-based board store for CLI applications.
// Boards are stored as JSON files in a config directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a new file-based board store.
// If baseDir is empty, defaults to ~/.config/boardkit/boards/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "boardkit", "boards")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create board dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) boardPath(id string) (string, error) {
	// IDs become file names; reject anything that could escape baseDir.
	if id == "" || strings.ContainsAny(id, `/\`) || id != filepath.Base(id) {
		return "", ErrInvalidID
	}
	return filepath.Join(s.baseDir, id+".json"), nil
}

func (s *FileStore) Get(ctx context.Context, id string) (board.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path, err := s.boardPath(id)
	if err != nil {
		return board.Board{}, err
	}
	b, err := board.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return board.Board{}, ErrNotFound
		}
		return board.Board{}, err
	}
	return b, nil
}

func (s *FileStore) Put(ctx context.Context, id string, b board.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.boardPath(id)
	if err != nil {
		return err
	}
	return board.WriteFile(b, path)
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.boardPath(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove board file: %w", err)
	}
	return nil
}

func (s *FileStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read board dir: %w", err)
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}
