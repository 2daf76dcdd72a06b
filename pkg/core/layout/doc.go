// Package layout computes child placements for auto-layout containers.
//
// # Overview
//
// The engine is stateless: [Calculate] consumes a container and its children
// and produces a fresh [Placement] per child without mutating either. The
// caller applies the placements back onto the scene. Containers with
// auto-layout disabled are a passthrough - free-form placement is the
// default.
//
// # Linear layout
//
// Without wrapping, children occupy a single row or column along the main
// axis. Fixed and hug items keep their base size; fill items split the
// leftover space evenly, floored and never below one cell. The configured
// distribution picks the gap and start offset:
//
//   - packed: gap is the configured spacing; the whole group is aligned
//     by the container's alignment (start, center, end)
//   - space-between: leftover space between items, none at the edges
//   - space-around: half a gap at the edges
//   - space-evenly: equal gaps between items and at the edges
//
// Overflow is accepted as overlap: negative leftover space is not
// redistributed among fixed items.
//
// # Wrapping layout
//
// With wrapping enabled, items greedily pack into lines. A line breaks when
// the next item would exceed the main-axis size and the current line is not
// empty, so an oversized single item still gets a line of its own. Lines
// stack along the cross axis separated by WrapSpacing, and each line's cross
// extent is the largest item in it.
//
// # Hug sizing
//
// [HugSize] derives a container's size from its content: the axis sum plus
// spacing and padding under auto-layout, or the children's bounding box in
// free-form containers. Only axes whose sizing mode is hug are replaced.
package layout
