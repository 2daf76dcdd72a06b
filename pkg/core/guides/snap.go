package guides

import (
	"math"

	"github.com/boardkit/boardkit/pkg/core/geom"
)

// Engine computes snap positions. It holds the configuration and caches the
// last result for redraw; the computation itself has no other state.
type Engine struct {
	cfg  Config
	last *SnapResult
}

// NewEngine creates a snap engine with the given configuration.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's current configuration.
func (e *Engine) Config() Config { return e.cfg }

// SetConfig replaces the engine's configuration.
func (e *Engine) SetConfig(cfg Config) { e.cfg = cfg }

// LastResult returns the most recent snap result, or nil before the first
// query. It is retained only for redraw and debugging.
func (e *Engine) LastResult() *SnapResult { return e.last }

// Snap computes the snapped position for moving against the candidate set.
//
// others are the bounds of the remaining visible objects; container, when
// non-nil, is the content rect of the frame being dragged inside and takes
// precedence over the canvas bounds. The result's X/Y equal the input
// position on any axis without a hit.
func (e *Engine) Snap(moving geom.Rect, others []geom.Rect, canvasWidth, canvasHeight int, container *geom.Rect, userGuides []UserGuide) SnapResult {
	result := SnapResult{X: moving.X, Y: moving.Y}
	if !e.cfg.Enabled {
		e.last = &result
		return result
	}
	cfg := e.cfg.normalized()

	bounds := geom.NewRect(0, 0, canvasWidth, canvasHeight)
	if container != nil {
		bounds = *container
	}

	x, hitX, guidesX := snapAxis(axisQuery{
		axis:       AxisVertical,
		moving:     spanX(moving),
		movingPerp: spanY(moving),
		bounds:     spanX(bounds),
		boundsPerp: spanY(bounds),
		guides:     guidePositions(userGuides, AxisVertical),
		others:     obstaclesX(others),
		cfg:        cfg,
	})
	y, hitY, guidesY := snapAxis(axisQuery{
		axis:       AxisHorizontal,
		moving:     spanY(moving),
		movingPerp: spanX(moving),
		bounds:     spanY(bounds),
		boundsPerp: spanX(bounds),
		guides:     guidePositions(userGuides, AxisHorizontal),
		others:     obstaclesY(others),
		cfg:        cfg,
	})

	if hitX {
		result.X, result.SnappedX = x, true
	}
	if hitY {
		result.Y, result.SnappedY = y, true
	}
	result.Guides = append(guidesX, guidesY...)
	result.Distances = measureDistances(moving, others, cfg.DistanceLimit)

	e.last = &result
	return result
}

// =============================================================================
// Per-Axis Search
// =============================================================================

// span is a rect projected onto one axis.
type span struct{ lo, size int }

func (s span) hi() int     { return s.lo + s.size }
func (s span) center() int { return s.lo + s.size/2 }

// obstacle is another object's bounds split into the snap axis and the
// perpendicular axis (used for guide extents).
type obstacle struct {
	on   span
	perp span
}

type axisQuery struct {
	axis       Axis
	moving     span
	movingPerp span
	bounds     span
	boundsPerp span
	guides     []int
	others     []obstacle
	cfg        Config
}

// search tracks the best candidate on one axis. A candidate is accepted
// when its distance is within tolerance and strictly below the current
// best, so earlier categories act as tie-breakers.
type search struct {
	pos  int
	best int
	hit  bool
	tol  int
}

func (s *search) consider(dist, snapped int) bool {
	if dist < 0 {
		dist = -dist
	}
	if dist > s.tol {
		return false
	}
	if s.hit && dist >= s.best {
		return false
	}
	s.pos, s.best, s.hit = snapped, dist, true
	return true
}

func snapAxis(q axisQuery) (pos int, hit bool, lines []GuideLine) {
	s := search{tol: q.cfg.SnapTolerance}
	m := q.moving

	addLine := func(kind Kind, position, start, end int) {
		lines = append(lines, GuideLine{Axis: q.axis, Kind: kind, Position: position, Start: start, End: end})
	}
	canvasExtent := func() (int, int) { return q.boundsPerp.lo, q.boundsPerp.hi() }

	// 1. User guides: edges and center of the moving object against the
	// guide position.
	for _, g := range q.guides {
		lo, hi := canvasExtent()
		if s.consider(m.lo-g, g) {
			addLine(KindUserGuide, g, lo, hi)
		}
		if s.consider(m.center()-g, g-m.size/2) {
			addLine(KindUserGuide, g, lo, hi)
		}
		if s.consider(m.hi()-g, g-m.size) {
			addLine(KindUserGuide, g, lo, hi)
		}
	}

	// 2. Grid: leading edge to the nearest grid multiple.
	if q.cfg.SnapToGrid {
		g := int(math.Round(float64(m.lo)/float64(q.cfg.GridSize))) * q.cfg.GridSize
		if s.consider(m.lo-g, g) {
			lo, hi := canvasExtent()
			addLine(KindGrid, g, lo, hi)
		}
	}

	// 3. Canvas or container edges.
	if q.cfg.SnapToCanvasEdges {
		lo, hi := canvasExtent()
		if s.consider(m.lo-q.bounds.lo, q.bounds.lo) {
			addLine(KindCanvasEdge, q.bounds.lo, lo, hi)
		}
		if s.consider(m.hi()-q.bounds.hi(), q.bounds.hi()-m.size) {
			addLine(KindCanvasEdge, q.bounds.hi(), lo, hi)
		}
	}

	// 4. Canvas or container centerline.
	if q.cfg.SnapToCanvasCenter {
		c := q.bounds.center()
		if s.consider(m.center()-c, c-m.size/2) {
			lo, hi := canvasExtent()
			addLine(KindCanvasCenter, c, lo, hi)
		}
	}

	// 5. Other objects' edges: same-edge alignment, then adjacency.
	if q.cfg.SnapToObjects && q.cfg.SnapToObjectEdges {
		for _, o := range q.others {
			lo := minInt(q.movingPerp.lo, o.perp.lo)
			hi := maxInt(q.movingPerp.hi(), o.perp.hi())
			if s.consider(m.lo-o.on.lo, o.on.lo) {
				addLine(KindObjectEdge, o.on.lo, lo, hi)
			}
			if s.consider(m.hi()-o.on.hi(), o.on.hi()-m.size) {
				addLine(KindObjectEdge, o.on.hi(), lo, hi)
			}
			if s.consider(m.lo-o.on.hi(), o.on.hi()) {
				addLine(KindObjectEdge, o.on.hi(), lo, hi)
			}
			if s.consider(m.hi()-o.on.lo, o.on.lo-m.size) {
				addLine(KindObjectEdge, o.on.lo, lo, hi)
			}
		}
	}

	// 6. Other objects' centers.
	if q.cfg.SnapToObjects && q.cfg.SnapToObjectCenters {
		for _, o := range q.others {
			c := o.on.center()
			if s.consider(m.center()-c, c-m.size/2) {
				lo := minInt(q.movingPerp.lo, o.perp.lo)
				hi := maxInt(q.movingPerp.hi(), o.perp.hi())
				addLine(KindObjectCenter, c, lo, hi)
			}
		}
	}

	return s.pos, s.hit, lines
}

// =============================================================================
// Projections
// =============================================================================

func spanX(r geom.Rect) span { return span{lo: r.X, size: r.Width} }
func spanY(r geom.Rect) span { return span{lo: r.Y, size: r.Height} }

func obstaclesX(rects []geom.Rect) []obstacle {
	out := make([]obstacle, len(rects))
	for i, r := range rects {
		out[i] = obstacle{on: spanX(r), perp: spanY(r)}
	}
	return out
}

func obstaclesY(rects []geom.Rect) []obstacle {
	out := make([]obstacle, len(rects))
	for i, r := range rects {
		out[i] = obstacle{on: spanY(r), perp: spanX(r)}
	}
	return out
}

func guidePositions(guides []UserGuide, axis Axis) []int {
	var out []int
	for _, g := range guides {
		if g.Axis == axis {
			out = append(out, g.Position)
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
