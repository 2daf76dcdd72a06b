// Package dot renders the containment hierarchy of a board as a Graphviz
// diagram. Each object becomes a node; edges point from parent to child in
// document order, which makes layering and reparenting bugs visible at a
// glance.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/boardkit/boardkit/pkg/core/scene"
	"github.com/boardkit/boardkit/pkg/render"
)

// Options configures hierarchy rendering.
type Options struct {
	// Detailed includes geometry and layout config in node labels.
	// When false, only the object name (or ID) is shown.
	Detailed bool
}

// ToDOT converts a scene tree to Graphviz DOT format.
// Containers are rendered with dashed outlines and grey fill to distinguish
// them from leaf objects.
func ToDOT(roots []*scene.Object, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph hierarchy {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var nodes, edges []string
	var walk func(o *scene.Object)
	walk = func(o *scene.Object) {
		label := fmtLabel(o, opts.Detailed)
		attrs := fmtAttrs(o, label)
		nodes = append(nodes, fmt.Sprintf("  %q [%s];", o.ID, strings.Join(attrs, ", ")))
		for _, c := range o.Children {
			edges = append(edges, fmt.Sprintf("  %q -> %q;", o.ID, c.ID))
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}

	for _, n := range nodes {
		buf.WriteString(n + "\n")
	}
	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e + "\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(o *scene.Object, detailed bool) string {
	name := o.Name
	if name == "" {
		name = o.ID
	}
	if !detailed {
		return name
	}

	r := o.Bounds()
	parts := []string{fmt.Sprintf("rect: %d,%d %dx%d", r.X, r.Y, r.Width, r.Height)}
	if o.AutoLayout.Enabled {
		parts = append(parts, fmt.Sprintf("layout: %s spacing %d", o.AutoLayout.Direction, o.AutoLayout.Spacing))
	}
	if o.Locked {
		parts = append(parts, "locked")
	}
	return name + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(o *scene.Object, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if o.CanContainChildren() {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz SVG header so the document scales
// to its container instead of using fixed point sizes.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
