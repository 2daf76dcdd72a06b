package layout

import (
	"github.com/boardkit/boardkit/pkg/core/geom"
	"github.com/boardkit/boardkit/pkg/core/scene"
)

// Calculate computes the placement of each child within container.
//
// When the container's auto-layout is disabled, or there are no children,
// every child keeps its own rect (identity passthrough). Otherwise children
// are distributed inside the container's content rect (rect minus padding)
// along the configured main axis. Inputs are never mutated; calling
// Calculate twice with unchanged inputs yields identical results.
func Calculate(container *scene.Object, children []*scene.Object) []Placement {
	if !container.AutoLayout.Enabled || len(children) == 0 {
		out := make([]Placement, len(children))
		for i, c := range children {
			out[i] = Placement{Object: c, Rect: c.Bounds()}
		}
		return out
	}

	cfg := container.AutoLayout.Normalized()
	content := container.Rect.Inset(cfg.Padding)

	if cfg.Wrap {
		return wrapLayout(cfg, content, children)
	}
	return linearLayout(cfg, content, children)
}

// item carries one child through a layout pass with its resolved sizes.
type item struct {
	obj   *scene.Object
	main  int
	cross int
	fill  bool
}

// =============================================================================
// Linear Layout
// =============================================================================

func linearLayout(cfg scene.AutoLayout, content geom.Rect, children []*scene.Object) []Placement {
	dir := cfg.Direction
	mainAxis := mainSize(content, dir)
	crossAxis := crossSize(content, dir)

	items := collectItems(cfg, children)

	// Fill items split the space left over by fixed items and spacing. The
	// result is floored and never drops below one cell; overflow is accepted
	// as overlap rather than redistributed.
	totalFixed := 0
	fillCount := 0
	for _, it := range items {
		if it.fill {
			fillCount++
		} else {
			totalFixed += it.main
		}
	}
	totalSpacing := cfg.Spacing * maxInt(0, len(items)-1)

	fillMain := 0
	if fillCount > 0 {
		fillMain = (mainAxis - totalFixed - totalSpacing) / fillCount
		if fillMain < 1 {
			fillMain = 1
		}
	}

	totalMain := 0
	for i := range items {
		m := items[i].main
		if items[i].fill {
			m = fillMain
		}
		items[i].main = clampMain(items[i].obj.Sizing, dir, m)
		totalMain += items[i].main
	}

	gap, start := distribute(cfg, mainAxis, totalMain, totalSpacing, len(items))

	placements := make([]Placement, 0, len(items))
	mainPos := mainStart(content, dir) + start
	for _, it := range items {
		itemCross, crossOff := crossPlace(cfg, it, dir, crossAxis)
		r := assemble(dir, mainPos, crossStart(content, dir)+crossOff, it.main, itemCross)
		placements = append(placements, Placement{Object: it.obj, Rect: r})
		mainPos += it.main + gap
	}
	return placements
}

// distribute returns the gap between items and the start offset of the first
// item, both relative to the content rect's main origin.
func distribute(cfg scene.AutoLayout, mainAxis, totalMain, totalSpacing, n int) (gap, start int) {
	switch cfg.Distribute {
	case scene.DistributeSpaceBetween:
		if n > 1 {
			gap = (mainAxis - totalMain) / (n - 1)
		}
		return gap, 0
	case scene.DistributeSpaceAround:
		if n > 0 {
			gap = (mainAxis - totalMain) / n
		}
		return gap, gap / 2
	case scene.DistributeSpaceEvenly:
		gap = (mainAxis - totalMain) / (n + 1)
		return gap, gap
	default: // packed
		return cfg.Spacing, alignOffset(cfg.Align, mainAxis, totalMain+totalSpacing)
	}
}

// =============================================================================
// Wrapping Layout
// =============================================================================

func wrapLayout(cfg scene.AutoLayout, content geom.Rect, children []*scene.Object) []Placement {
	dir := cfg.Direction
	mainAxis := mainSize(content, dir)

	items := collectItems(cfg, children)
	for i := range items {
		items[i].main = clampMain(items[i].obj.Sizing, dir, items[i].main)
	}

	// Greedy line packing: break before an item that would overflow a
	// non-empty line. An oversized item on an empty line is kept so every
	// item lands somewhere.
	var lines [][]item
	var line []item
	lineMain := 0
	for _, it := range items {
		if len(line) > 0 && lineMain+cfg.Spacing+it.main > mainAxis {
			lines = append(lines, line)
			line = nil
			lineMain = 0
		}
		if len(line) > 0 {
			lineMain += cfg.Spacing
		}
		line = append(line, it)
		lineMain += it.main
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}

	placements := make([]Placement, 0, len(items))
	crossPos := crossStart(content, dir)
	for _, ln := range lines {
		lineTotal := cfg.Spacing * (len(ln) - 1)
		lineCross := 0
		for _, it := range ln {
			lineTotal += it.main
			if it.cross > lineCross {
				lineCross = it.cross
			}
		}

		mainPos := mainStart(content, dir) + alignOffset(cfg.Align, mainAxis, lineTotal)
		for _, it := range ln {
			itemCross := it.cross
			off := 0
			switch {
			case cfg.Align == scene.AlignStretch || it.obj.Sizing.Mode(crossDir(dir)) == scene.SizeFill:
				itemCross = lineCross
			case cfg.Align == scene.AlignCenter:
				off = (lineCross - itemCross) / 2
			case cfg.Align == scene.AlignEnd:
				off = lineCross - itemCross
			}
			r := assemble(dir, mainPos, crossPos+off, it.main, itemCross)
			placements = append(placements, Placement{Object: it.obj, Rect: r})
			mainPos += it.main + cfg.Spacing
		}
		crossPos += lineCross + cfg.WrapSpacing
	}
	return placements
}

// =============================================================================
// Axis Helpers
// =============================================================================

// collectItems resolves each child's base sizes in visual order. Reversed
// layouts flip the iteration order without touching the child sequence.
func collectItems(cfg scene.AutoLayout, children []*scene.Object) []item {
	items := make([]item, 0, len(children))
	for i := range children {
		idx := i
		if cfg.Reversed {
			idx = len(children) - 1 - i
		}
		c := children[idx]
		b := c.Bounds()
		items = append(items, item{
			obj:   c,
			main:  mainSize(b, cfg.Direction),
			cross: crossSize(b, cfg.Direction),
			fill:  c.Sizing.Mode(cfg.Direction) == scene.SizeFill,
		})
	}
	return items
}

// crossPlace resolves an item's cross-axis size and offset within the
// container's cross span. Stretched items fill the span at offset zero.
func crossPlace(cfg scene.AutoLayout, it item, dir scene.Direction, crossAxis int) (size, offset int) {
	if cfg.Align == scene.AlignStretch || it.obj.Sizing.Mode(crossDir(dir)) == scene.SizeFill {
		return crossAxis, 0
	}
	switch cfg.Align {
	case scene.AlignCenter:
		return it.cross, (crossAxis - it.cross) / 2
	case scene.AlignEnd:
		return it.cross, crossAxis - it.cross
	default: // start, baseline
		return it.cross, 0
	}
}

// alignOffset returns the main-axis offset of a packed group (or wrapped
// line) of the given total size.
func alignOffset(a scene.Align, axis, total int) int {
	switch a {
	case scene.AlignCenter:
		return (axis - total) / 2
	case scene.AlignEnd:
		return axis - total
	default:
		return 0
	}
}

func clampMain(s scene.Sizing, dir scene.Direction, v int) int {
	if dir == scene.Vertical {
		return s.ClampHeight(v)
	}
	return s.ClampWidth(v)
}

func mainSize(r geom.Rect, dir scene.Direction) int {
	if dir == scene.Vertical {
		return r.Height
	}
	return r.Width
}

func crossSize(r geom.Rect, dir scene.Direction) int {
	if dir == scene.Vertical {
		return r.Width
	}
	return r.Height
}

func mainStart(r geom.Rect, dir scene.Direction) int {
	if dir == scene.Vertical {
		return r.Y
	}
	return r.X
}

func crossStart(r geom.Rect, dir scene.Direction) int {
	if dir == scene.Vertical {
		return r.X
	}
	return r.Y
}

func crossDir(dir scene.Direction) scene.Direction {
	if dir == scene.Vertical {
		return scene.Horizontal
	}
	return scene.Vertical
}

// assemble builds the placed rect from main/cross coordinates.
func assemble(dir scene.Direction, mainPos, crossPos, mainLen, crossLen int) geom.Rect {
	if dir == scene.Vertical {
		return geom.NewRect(crossPos, mainPos, crossLen, mainLen)
	}
	return geom.NewRect(mainPos, crossPos, mainLen, crossLen)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
