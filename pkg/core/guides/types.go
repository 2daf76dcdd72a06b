package guides

import "github.com/boardkit/boardkit/pkg/core/geom"

// Axis identifies the orientation of a guide line. A vertical guide is a
// line of constant X and snaps the X axis; a horizontal guide snaps Y.
type Axis string

const (
	AxisVertical   Axis = "vertical"
	AxisHorizontal Axis = "horizontal"
)

// Kind tags the category that produced a guide. It is consumed by renderers
// to pick a color and has no effect on the computation.
type Kind string

const (
	KindUserGuide    Kind = "user"
	KindGrid         Kind = "grid"
	KindCanvasEdge   Kind = "canvas-edge"
	KindCanvasCenter Kind = "canvas-center"
	KindObjectEdge   Kind = "object-edge"
	KindObjectCenter Kind = "object-center"
)

// UserGuide is a persisted ruler line owned by the document. User guides are
// the highest-priority snap targets.
type UserGuide struct {
	Axis     Axis `json:"axis" bson:"axis"`
	Position int  `json:"position" bson:"position"`
}

// GuideLine is an ephemeral alignment line produced while snapping. Start
// and End bound the perpendicular extent for rendering, spanning both
// participating rects or the canvas.
type GuideLine struct {
	Axis     Axis `json:"axis"`
	Kind     Kind `json:"kind"`
	Position int  `json:"position"`
	Start    int  `json:"start"`
	End      int  `json:"end"`
}

// DistanceIndicator marks the visible gap between the moving object and a
// neighbor, for rendering a measurement label.
type DistanceIndicator struct {
	Axis Axis       `json:"axis"` // AxisHorizontal: the gap is measured along X
	Gap  int        `json:"gap"`
	From geom.Point `json:"from"`
	To   geom.Point `json:"to"`
}

// SnapResult is the outcome of one snap query. It is recomputed fresh per
// pointer move and never persisted beyond the engine's last-result cache.
type SnapResult struct {
	// X and Y are the adjusted position (original when no snap hit).
	X int `json:"x"`
	Y int `json:"y"`

	SnappedX bool `json:"snapped_x"`
	SnappedY bool `json:"snapped_y"`

	Guides    []GuideLine         `json:"guides,omitempty"`
	Distances []DistanceIndicator `json:"distances,omitempty"`
}
