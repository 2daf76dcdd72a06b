package layout

import "github.com/boardkit/boardkit/pkg/core/scene"

// minHugSize is the smallest extent a hug-sized container may shrink to.
// Anything smaller leaves no room to hit-test or re-enter the container.
const minHugSize = 3

// HugSize computes the content-driven size of container.
//
// With auto-layout enabled the hug size is the sum of the children along the
// main axis (plus spacing) and the maximum along the cross axis, plus
// padding on both. Free-form containers use the bounding box of their
// children's rendered bounds relative to the padded origin; children placed
// at negative offsets extend the box instead of being clipped.
//
// An axis is only replaced by the hug-computed value when its sizing mode is
// hug; the other axis keeps the container's current size. The result is
// clamped to a minimum of 3×3.
func HugSize(container *scene.Object, children []*scene.Object) (width, height int) {
	width = container.Rect.Width
	height = container.Rect.Height
	if len(children) == 0 {
		return width, height
	}

	var hugW, hugH int
	if container.AutoLayout.Enabled {
		hugW, hugH = hugAutoLayout(container, children)
	} else {
		hugW, hugH = hugFreeForm(container, children)
	}

	if container.Sizing.Mode(scene.Horizontal) == scene.SizeHug {
		width = hugW
	}
	if container.Sizing.Mode(scene.Vertical) == scene.SizeHug {
		height = hugH
	}

	if width < minHugSize {
		width = minHugSize
	}
	if height < minHugSize {
		height = minHugSize
	}
	return width, height
}

func hugAutoLayout(container *scene.Object, children []*scene.Object) (w, h int) {
	cfg := container.AutoLayout.Normalized()

	mainSum := 0
	crossMax := 0
	for _, c := range children {
		b := c.Bounds()
		mainSum += mainSize(b, cfg.Direction)
		if cs := crossSize(b, cfg.Direction); cs > crossMax {
			crossMax = cs
		}
	}
	mainSum += cfg.Spacing * maxInt(0, len(children)-1)

	if cfg.Direction == scene.Vertical {
		return crossMax + cfg.Padding.Horizontal(), mainSum + cfg.Padding.Vertical()
	}
	return mainSum + cfg.Padding.Horizontal(), crossMax + cfg.Padding.Vertical()
}

func hugFreeForm(container *scene.Object, children []*scene.Object) (w, h int) {
	pad := container.AutoLayout.Padding
	originX := container.Rect.X + pad.Left
	originY := container.Rect.Y + pad.Top

	minX, minY := 0, 0
	maxX, maxY := 0, 0
	for i, c := range children {
		b := c.Bounds()
		relX := b.X - originX
		relY := b.Y - originY
		if i == 0 || relX < minX {
			minX = relX
		}
		if i == 0 || relY < minY {
			minY = relY
		}
		if r := relX + b.Width; i == 0 || r > maxX {
			maxX = r
		}
		if bt := relY + b.Height; i == 0 || bt > maxY {
			maxY = bt
		}
	}

	// Children above or left of the padded origin extend the box; the
	// origin itself never moves right or down.
	if minX > 0 {
		minX = 0
	}
	if minY > 0 {
		minY = 0
	}

	return (maxX - minX) + pad.Horizontal(), (maxY - minY) + pad.Vertical()
}
