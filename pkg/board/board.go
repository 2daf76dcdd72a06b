package board

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Board Serialization API
// =============================================================================

// Marshal converts a board to indented JSON bytes.
func Marshal(b Board) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(b, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes a board to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(b Board, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(b, f)
}

// Write writes a board as JSON to an io.Writer.
func Write(b Board, w io.Writer) error {
	return writeTo(b, w)
}

// ReadFile reads a JSON file and returns the decoded board.
func ReadFile(path string) (Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return Board{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readFrom(f)
}

// Read decodes a JSON board from an io.Reader.
func Read(r io.Reader) (Board, error) {
	return readFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeTo(b Board, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readFrom(r io.Reader) (Board, error) {
	var b Board
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return Board{}, fmt.Errorf("decode: %w", err)
	}
	return b, nil
}
