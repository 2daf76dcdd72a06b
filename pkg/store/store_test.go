package store

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/boardkit/boardkit/pkg/board"
)

func sampleBoard(name string) board.Board {
	return board.Board{
		Name:   name,
		Canvas: board.Canvas{Width: 80, Height: 24},
	}
}

// exerciseStore runs the shared contract against a backend.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing: err = %v, want ErrNotFound", err)
	}
	if err := s.Put(ctx, "", sampleBoard("x")); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Put empty ID: err = %v, want ErrInvalidID", err)
	}

	if err := s.Put(ctx, "a", sampleBoard("first")); err != nil {
		t.Fatalf("Put a: %v", err)
	}
	if err := s.Put(ctx, "b", sampleBoard("second")); err != nil {
		t.Fatalf("Put b: %v", err)
	}
	if err := s.Put(ctx, "a", sampleBoard("replaced")); err != nil {
		t.Fatalf("Put a again: %v", err)
	}

	got, err := s.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get a: %v", err)
	}
	if got.Name != "replaced" || got.Canvas.Width != 80 {
		t.Errorf("Get a = %+v, want replaced board", got)
	}

	ids, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	sort.Strings(ids)
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("List = %v, want [a b]", ids)
	}

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete a: %v", err)
	}
	if err := s.Delete(ctx, "a"); err != nil {
		t.Errorf("Delete missing should be a no-op, got %v", err)
	}
	if _, err := s.Get(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get deleted: err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	exerciseStore(t, s)
}

func TestFileStoreRejectsPathEscapes(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	for _, id := range []string{"../escape", "a/b", `a\b`, ""} {
		if err := s.Put(ctx, id, sampleBoard("x")); !errors.Is(err, ErrInvalidID) {
			t.Errorf("Put %q: err = %v, want ErrInvalidID", id, err)
		}
	}
}
