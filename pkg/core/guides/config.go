package guides

// Config enumerates the snapping options. The rendering toggles (ShowGuides,
// ShowDistances, ShowPositionLabel) are consumed by the renderer, not by the
// computation itself.
type Config struct {
	// Enabled is the master switch; when false, Snap returns the input
	// position unmodified.
	Enabled bool `toml:"enabled" json:"enabled"`

	// SnapTolerance is the maximum distance, in grid cells, at which any
	// candidate may snap.
	SnapTolerance int `toml:"snap_tolerance" json:"snap_tolerance"`

	SnapToGrid bool `toml:"snap_to_grid" json:"snap_to_grid"`
	GridSize   int  `toml:"grid_size" json:"grid_size"`

	SnapToObjects       bool `toml:"snap_to_objects" json:"snap_to_objects"`
	SnapToObjectEdges   bool `toml:"snap_to_object_edges" json:"snap_to_object_edges"`
	SnapToObjectCenters bool `toml:"snap_to_object_centers" json:"snap_to_object_centers"`

	SnapToCanvasEdges  bool `toml:"snap_to_canvas_edges" json:"snap_to_canvas_edges"`
	SnapToCanvasCenter bool `toml:"snap_to_canvas_center" json:"snap_to_canvas_center"`

	ShowGuides        bool `toml:"show_guides" json:"show_guides"`
	ShowDistances     bool `toml:"show_distances" json:"show_distances"`
	ShowPositionLabel bool `toml:"show_position_label" json:"show_position_label"`

	// DistanceLimit bounds the gap size that still produces a distance
	// indicator. This is visual tuning, not a load-bearing invariant.
	DistanceLimit int `toml:"distance_limit" json:"distance_limit"`
}

// DefaultConfig returns the documented defaults: snapping on with a
// tolerance of 3 cells, all object and canvas categories enabled, grid
// snapping off, and distance indicators up to 20 cells.
func DefaultConfig() Config {
	return Config{
		Enabled:             true,
		SnapTolerance:       3,
		SnapToGrid:          false,
		GridSize:            8,
		SnapToObjects:       true,
		SnapToObjectEdges:   true,
		SnapToObjectCenters: true,
		SnapToCanvasEdges:   true,
		SnapToCanvasCenter:  true,
		ShowGuides:          true,
		ShowDistances:       true,
		ShowPositionLabel:   true,
		DistanceLimit:       20,
	}
}

// normalized fills in unusable values so the engine never divides by zero
// or loops on a degenerate grid.
func (c Config) normalized() Config {
	if c.SnapTolerance < 0 {
		c.SnapTolerance = 0
	}
	if c.GridSize < 1 {
		c.GridSize = 1
	}
	if c.DistanceLimit < 0 {
		c.DistanceLimit = 0
	}
	return c
}
