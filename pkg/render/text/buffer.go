package text

import "strings"

// Color names a display color. The buffer stores colors symbolically; the
// consumer (terminal UI, HTML converter) maps them to its own palette.
type Color string

// Colors used by the board renderer.
const (
	ColorDefault  Color = ""
	ColorFrame    Color = "frame"
	ColorObject   Color = "object"
	ColorGuide    Color = "guide"
	ColorDistance Color = "distance"
	ColorLabel    Color = "label"
)

// Cell is one character cell of the grid.
type Cell struct {
	Rune  rune
	Color Color
}

// Buffer is a 2D grid of character cells. Writes outside the bounds are
// silently dropped, so callers can draw partially visible shapes without
// clipping first.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a grid of the given dimensions filled with spaces.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{Rune: ' '}
	}
	return &Buffer{cells: cells, width: width, height: height}
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in rows.
func (b *Buffer) Height() int { return b.height }

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y), or the zero cell out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

// SetChar writes one glyph at (x, y). Out-of-bounds writes are dropped.
func (b *Buffer) SetChar(x, y int, glyph rune, color Color) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	b.cells[i] = Cell{Rune: glyph, Color: color}
}

// SetString writes a string left to right starting at (x, y).
func (b *Buffer) SetString(x, y int, s string, color Color) {
	for _, r := range s {
		b.SetChar(x, y, r, color)
		x++
	}
}

// String renders the grid as plain text, one line per row. Colors are
// dropped; use [Buffer.Cell] for styled output.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			sb.WriteRune(b.cells[y*b.width+x].Rune)
		}
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
