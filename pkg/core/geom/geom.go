// Package geom provides the integer grid-cell geometry primitives shared by
// the scene, layout, and guide packages.
//
// All coordinates are whole grid cells. A [Rect] occupies the half-open cell
// range [X, X+Width) × [Y, Y+Height), so two rects whose edges meet exactly
// are adjacent, not overlapping.
package geom

// Point is a position on the grid.
type Point struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// Rect is an axis-aligned rectangle measured in grid cells.
type Rect struct {
	X      int `json:"x" bson:"x"`
	Y      int `json:"y" bson:"y"`
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`
}

// NewRect creates a rect with the given origin and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the X coordinate of the left edge.
func (r Rect) Left() int { return r.X }

// Right returns the X coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() int { return r.Y }

// Bottom returns the Y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// CenterX returns the horizontal center, rounded toward the left edge.
func (r Rect) CenterX() int { return r.X + r.Width/2 }

// CenterY returns the vertical center, rounded toward the top edge.
func (r Rect) CenterY() int { return r.Y + r.Height/2 }

// Contains reports whether the point (x, y) falls inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects reports whether r and other share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Translate returns a copy of r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Inset returns a copy of r shrunk by the given edges. Width and height are
// clamped so the result never inverts.
func (r Rect) Inset(e Edges) Rect {
	out := Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  r.Width - e.Left - e.Right,
		Height: r.Height - e.Top - e.Bottom,
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Edges is spacing on four sides, in CSS order.
type Edges struct {
	Top    int `json:"top" bson:"top"`
	Right  int `json:"right" bson:"right"`
	Bottom int `json:"bottom" bson:"bottom"`
	Left   int `json:"left" bson:"left"`
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeTRBL creates Edges following CSS order: top, right, bottom, left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the combined left and right spacing.
func (e Edges) Horizontal() int { return e.Left + e.Right }

// Vertical returns the combined top and bottom spacing.
func (e Edges) Vertical() int { return e.Top + e.Bottom }
