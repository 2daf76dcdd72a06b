// Package render provides output rendering for boards.
//
// # Overview
//
// This package contains the rendering layer that transforms laid-out scenes
// into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Character-grid rendering (in [text] subpackage)
//   - SVG documents (in [svg] subpackage)
//   - Containment hierarchy diagrams (in [dot] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). They are shared by the SVG
// and hierarchy renderers.
//
//	out := svg.Render(roots, w, h)
//	pdf, err := render.ToPDF(out)
//	png, err := render.ToPNG(out, 2.0)  // 2x scale
//
// # Character Grid
//
// The [text] subpackage draws boards onto a cell buffer for the terminal
// editor and plain-text export. Snap guides and distance indicators overlay
// the same buffer.
//
// # Hierarchy Diagrams
//
// The [dot] subpackage renders the parent/child structure of a board as a
// Graphviz diagram. Each object appears as a box; edges run from container
// to child.
//
//	d := dot.ToDOT(roots, dot.Options{})
//	svg, err := dot.RenderSVG(d)
package render
