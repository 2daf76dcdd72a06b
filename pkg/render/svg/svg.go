// Package svg renders boards as standalone SVG documents.
//
// Objects draw as rectangles in document order, containers before their
// children, with names rendered inside the top edge. Snap guide lines and
// distance indicators can be overlaid for debugging exports.
package svg

import (
	"bytes"
	"fmt"

	"github.com/boardkit/boardkit/pkg/core/guides"
	"github.com/boardkit/boardkit/pkg/core/scene"
)

// cellSize scales grid units to SVG pixels.
const cellSize = 10

// Fill and stroke palette.
const (
	frameStroke    = "#4c6ef5"
	objectStroke   = "#343a40"
	objectFill     = "#f8f9fa"
	guideStroke    = "#fa5252"
	distanceStroke = "#40c057"
	textFill       = "#212529"
)

// Option configures SVG rendering.
type Option func(*renderer)

// WithSnapResult overlays guide lines and distance indicators.
func WithSnapResult(r *guides.SnapResult) Option {
	return func(rd *renderer) { rd.snap = r }
}

// WithUserGuides draws persisted ruler lines across the canvas.
func WithUserGuides(gs []guides.UserGuide) Option {
	return func(rd *renderer) { rd.userGuides = gs }
}

type renderer struct {
	snap       *guides.SnapResult
	userGuides []guides.UserGuide
}

// Render draws the scene roots into an SVG document of the given canvas
// size (in grid units).
func Render(roots []*scene.Object, width, height int, opts ...Option) []byte {
	rd := renderer{}
	for _, opt := range opts {
		opt(&rd)
	}

	w, h := width*cellSize, height*cellSize
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%d" height="%d" fill="white"/>`+"\n", w, h)

	for _, r := range roots {
		renderObject(&buf, r)
	}
	for _, g := range rd.userGuides {
		renderUserGuide(&buf, g, width, height)
	}
	if rd.snap != nil {
		for _, g := range rd.snap.Guides {
			renderGuideLine(&buf, g)
		}
		for _, d := range rd.snap.Distances {
			renderDistance(&buf, d)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderObject(buf *bytes.Buffer, o *scene.Object) {
	if !o.Visible {
		return
	}
	r := o.Bounds()
	stroke := objectStroke
	fill := objectFill
	if o.CanContainChildren() {
		stroke = frameStroke
		fill = "none"
	}
	fmt.Fprintf(buf, `  <rect id="obj-%s" x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s" stroke-width="1.5" rx="2"/>`+"\n",
		o.ID, r.X*cellSize, r.Y*cellSize, r.Width*cellSize, r.Height*cellSize, fill, stroke)
	if o.Name != "" {
		fmt.Fprintf(buf, `  <text x="%d" y="%d" font-family="monospace" font-size="%d" fill="%s">%s</text>`+"\n",
			r.X*cellSize+4, r.Y*cellSize+cellSize+2, cellSize, textFill, escapeText(o.Name))
	}
	for _, c := range o.Children {
		renderObject(buf, c)
	}
}

func renderUserGuide(buf *bytes.Buffer, g guides.UserGuide, width, height int) {
	line := guides.GuideLine{Axis: g.Axis, Kind: guides.KindUserGuide, Position: g.Position}
	if g.Axis == guides.AxisVertical {
		line.End = height
	} else {
		line.End = width
	}
	renderGuideLine(buf, line)
}

func renderGuideLine(buf *bytes.Buffer, g guides.GuideLine) {
	x1, y1, x2, y2 := 0, 0, 0, 0
	if g.Axis == guides.AxisVertical {
		x1, x2 = g.Position, g.Position
		y1, y2 = g.Start, g.End
	} else {
		y1, y2 = g.Position, g.Position
		x1, x2 = g.Start, g.End
	}
	fmt.Fprintf(buf, `  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1" stroke-dasharray="4 2"/>`+"\n",
		x1*cellSize, y1*cellSize, x2*cellSize, y2*cellSize, guideStroke)
}

func renderDistance(buf *bytes.Buffer, d guides.DistanceIndicator) {
	fmt.Fprintf(buf, `  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1"/>`+"\n",
		d.From.X*cellSize, d.From.Y*cellSize, d.To.X*cellSize, d.To.Y*cellSize, distanceStroke)
	midX := (d.From.X + d.To.X) * cellSize / 2
	midY := (d.From.Y + d.To.Y) * cellSize / 2
	fmt.Fprintf(buf, `  <text x="%d" y="%d" font-family="monospace" font-size="%d" fill="%s">%d</text>`+"\n",
		midX, midY-2, cellSize-2, distanceStroke, d.Gap)
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
