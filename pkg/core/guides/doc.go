// Package guides computes snap positions, alignment guides, and distance
// indicators for interactive drag and resize operations.
//
// # Overview
//
// An [Engine] holds a [Config] and the last computed [SnapResult] (kept only
// for redraw and debugging); every [Engine.Snap] call is otherwise a pure
// computation over the arguments. Snapping is evaluated independently per
// axis against an ordered sequence of candidate categories:
//
//  1. user guides (persisted ruler lines)
//  2. grid lines
//  3. canvas or container edges (container wins while dragging in a frame)
//  4. canvas or container centerlines
//  5. other objects' edges (same-edge alignment and adjacency)
//  6. other objects' centers
//
// A candidate is taken when its distance is within the tolerance and
// strictly smaller than the best seen so far. Later categories therefore
// only win by being strictly closer: earlier categories act as priority
// tie-breakers. Every accepted candidate appends a [GuideLine]; the list is
// deliberately not deduplicated, the kind only selects a render color.
//
// Distance indicators are independent of snapping: each neighboring object
// that overlaps the moving bounds on the perpendicular axis and leaves a
// small visible gap produces a [DistanceIndicator] carrying the numeric gap.
//
// All coordinates follow the half-open rect convention of [geom.Rect]: two
// rects touch when one's Right equals the other's X, and adjacency snapping
// targets exactly that coordinate.
package guides
