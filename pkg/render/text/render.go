// Package text renders boards onto a character grid.
//
// The renderer draws objects as box outlines with their name in the top
// border, then overlays snap guide lines, distance indicators, and an
// optional position label from a [guides.SnapResult]. The resulting
// [Buffer] is consumed by the terminal editor and the plain-text export.
package text

import (
	"fmt"

	"github.com/boardkit/boardkit/pkg/core/guides"
	"github.com/boardkit/boardkit/pkg/core/scene"
)

// Box-drawing glyphs for object outlines.
const (
	glyphHorizontal  = '─'
	glyphVertical    = '│'
	glyphTopLeft     = '┌'
	glyphTopRight    = '┐'
	glyphBottomLeft  = '└'
	glyphBottomRight = '┘'
	glyphGuideV      = '┊'
	glyphGuideH      = '┄'
)

// Option configures a render pass.
type Option func(*renderer)

// WithSnapResult overlays the guide lines and distance indicators of the
// last snap query.
func WithSnapResult(r *guides.SnapResult) Option {
	return func(rd *renderer) { rd.snap = r }
}

// WithPositionLabel draws an "x,y" label near the given position.
func WithPositionLabel(x, y int) Option {
	return func(rd *renderer) { rd.labelX, rd.labelY, rd.label = x, y, true }
}

// WithHighlight marks one object ID to draw in the frame color.
func WithHighlight(id string) Option {
	return func(rd *renderer) { rd.highlight = id }
}

type renderer struct {
	snap      *guides.SnapResult
	highlight string
	labelX    int
	labelY    int
	label     bool
}

// Render draws the scene roots onto a new buffer of the given size.
// Objects draw in document order, children above their parent, so later
// siblings overdraw earlier ones the same way hit-testing resolves them.
func Render(roots []*scene.Object, width, height int, opts ...Option) *Buffer {
	rd := renderer{}
	for _, opt := range opts {
		opt(&rd)
	}

	buf := NewBuffer(width, height)
	for _, r := range roots {
		rd.drawObject(buf, r)
	}
	if rd.snap != nil {
		rd.drawGuides(buf, rd.snap.Guides)
		rd.drawDistances(buf, rd.snap.Distances)
	}
	if rd.label {
		buf.SetString(rd.labelX+1, rd.labelY-1, fmt.Sprintf("%d,%d", rd.labelX, rd.labelY), ColorLabel)
	}
	return buf
}

func (rd *renderer) drawObject(buf *Buffer, o *scene.Object) {
	if !o.Visible {
		return
	}
	color := ColorObject
	if o.CanContainChildren() {
		color = ColorFrame
	}
	if o.ID == rd.highlight {
		color = ColorFrame
	}
	drawBox(buf, o, color)
	for _, c := range o.Children {
		rd.drawObject(buf, c)
	}
}

func drawBox(buf *Buffer, o *scene.Object, color Color) {
	r := o.Bounds()
	right, bottom := r.Right()-1, r.Bottom()-1

	for x := r.X + 1; x < right; x++ {
		buf.SetChar(x, r.Y, glyphHorizontal, color)
		buf.SetChar(x, bottom, glyphHorizontal, color)
	}
	for y := r.Y + 1; y < bottom; y++ {
		buf.SetChar(r.X, y, glyphVertical, color)
		buf.SetChar(right, y, glyphVertical, color)
	}
	buf.SetChar(r.X, r.Y, glyphTopLeft, color)
	buf.SetChar(right, r.Y, glyphTopRight, color)
	buf.SetChar(r.X, bottom, glyphBottomLeft, color)
	buf.SetChar(right, bottom, glyphBottomRight, color)

	// Name in the top border, truncated to the interior width.
	if o.Name != "" && r.Width > 4 {
		name := o.Name
		if limit := r.Width - 4; len(name) > limit {
			name = name[:limit]
		}
		buf.SetString(r.X+2, r.Y, name, color)
	}
}

func (rd *renderer) drawGuides(buf *Buffer, lines []guides.GuideLine) {
	for _, g := range lines {
		switch g.Axis {
		case guides.AxisVertical:
			for y := g.Start; y < g.End; y++ {
				buf.SetChar(g.Position, y, glyphGuideV, ColorGuide)
			}
		case guides.AxisHorizontal:
			for x := g.Start; x < g.End; x++ {
				buf.SetChar(x, g.Position, glyphGuideH, ColorGuide)
			}
		}
	}
}

func (rd *renderer) drawDistances(buf *Buffer, dists []guides.DistanceIndicator) {
	for _, d := range dists {
		label := fmt.Sprintf("%d", d.Gap)
		switch d.Axis {
		case guides.AxisHorizontal:
			mid := (d.From.X + d.To.X - len(label)) / 2
			buf.SetString(mid, d.From.Y, label, ColorDistance)
		case guides.AxisVertical:
			mid := (d.From.Y + d.To.Y) / 2
			buf.SetString(d.From.X, mid, label, ColorDistance)
		}
	}
}
