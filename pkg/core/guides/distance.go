package guides

import "github.com/boardkit/boardkit/pkg/core/geom"

// measureDistances finds the visible gaps between moving and its neighbors.
// A neighbor produces an indicator when it overlaps moving on the
// perpendicular axis and the gap on the facing side is positive and below
// limit. Indicators are independent of snapping and use the unsnapped
// bounds.
func measureDistances(moving geom.Rect, others []geom.Rect, limit int) []DistanceIndicator {
	var out []DistanceIndicator
	for _, o := range others {
		// Horizontal gaps need vertical overlap.
		if moving.Y < o.Bottom() && o.Y < moving.Bottom() {
			mid := (maxInt(moving.Y, o.Y) + minInt(moving.Bottom(), o.Bottom())) / 2
			if gap := o.X - moving.Right(); gap > 0 && gap < limit {
				out = append(out, DistanceIndicator{
					Axis: AxisHorizontal,
					Gap:  gap,
					From: geom.Point{X: moving.Right(), Y: mid},
					To:   geom.Point{X: o.X, Y: mid},
				})
			}
			if gap := moving.X - o.Right(); gap > 0 && gap < limit {
				out = append(out, DistanceIndicator{
					Axis: AxisHorizontal,
					Gap:  gap,
					From: geom.Point{X: o.Right(), Y: mid},
					To:   geom.Point{X: moving.X, Y: mid},
				})
			}
		}
		// Vertical gaps need horizontal overlap.
		if moving.X < o.Right() && o.X < moving.Right() {
			mid := (maxInt(moving.X, o.X) + minInt(moving.Right(), o.Right())) / 2
			if gap := o.Y - moving.Bottom(); gap > 0 && gap < limit {
				out = append(out, DistanceIndicator{
					Axis: AxisVertical,
					Gap:  gap,
					From: geom.Point{X: mid, Y: moving.Bottom()},
					To:   geom.Point{X: mid, Y: o.Y},
				})
			}
			if gap := moving.Y - o.Bottom(); gap > 0 && gap < limit {
				out = append(out, DistanceIndicator{
					Axis: AxisVertical,
					Gap:  gap,
					From: geom.Point{X: mid, Y: o.Bottom()},
					To:   geom.Point{X: mid, Y: moving.Y},
				})
			}
		}
	}
	return out
}
