package scene

import "github.com/boardkit/boardkit/pkg/core/geom"

// Direction selects the main axis for auto-layout distribution.
type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// Align positions children on the cross axis.
type Align string

const (
	AlignStart   Align = "start"
	AlignCenter  Align = "center"
	AlignEnd     Align = "end"
	AlignStretch Align = "stretch"
	// AlignBaseline is accepted for forward compatibility and currently
	// behaves like AlignStart: grid cells carry no baseline metrics.
	AlignBaseline Align = "baseline"
)

// Distribute spaces children along the main axis.
type Distribute string

const (
	DistributePacked       Distribute = "packed"
	DistributeSpaceBetween Distribute = "space-between"
	DistributeSpaceAround  Distribute = "space-around"
	DistributeSpaceEvenly  Distribute = "space-evenly"
)

// SizeMode determines how an object sizes itself on one axis within its
// parent.
type SizeMode string

const (
	SizeFixed SizeMode = "fixed" // keep the explicit size
	SizeHug   SizeMode = "hug"   // derive the size from content
	SizeFill  SizeMode = "fill"  // consume leftover space in the parent
)

// AutoLayout configures how a container places its children. The zero value
// is a disabled layout: children keep their free-form positions.
type AutoLayout struct {
	Enabled     bool       `json:"enabled" bson:"enabled"`
	Direction   Direction  `json:"direction,omitempty" bson:"direction,omitempty"`
	Spacing     int        `json:"spacing,omitempty" bson:"spacing,omitempty"`
	Padding     geom.Edges `json:"padding,omitempty" bson:"padding,omitempty"`
	Align       Align      `json:"align,omitempty" bson:"align,omitempty"`
	Distribute  Distribute `json:"distribute,omitempty" bson:"distribute,omitempty"`
	Wrap        bool       `json:"wrap,omitempty" bson:"wrap,omitempty"`
	WrapSpacing int        `json:"wrap_spacing,omitempty" bson:"wrap_spacing,omitempty"`

	// Reversed flips the visual order of children without mutating the
	// underlying child sequence.
	Reversed bool `json:"reversed,omitempty" bson:"reversed,omitempty"`
}

// DefaultAutoLayout returns an enabled horizontal layout with the documented
// defaults: packed distribution, start alignment, no spacing or padding.
func DefaultAutoLayout() AutoLayout {
	return AutoLayout{
		Enabled:    true,
		Direction:  Horizontal,
		Align:      AlignStart,
		Distribute: DistributePacked,
	}
}

// Normalized returns the config with empty enum fields replaced by their
// defaults, so downstream consumers never branch on "".
func (a AutoLayout) Normalized() AutoLayout {
	if a.Direction == "" {
		a.Direction = Horizontal
	}
	if a.Align == "" {
		a.Align = AlignStart
	}
	if a.Distribute == "" {
		a.Distribute = DistributePacked
	}
	if a.Spacing < 0 {
		a.Spacing = 0
	}
	if a.WrapSpacing < 0 {
		a.WrapSpacing = 0
	}
	return a
}

// Sizing configures how an object sizes itself within its parent, per axis.
// The zero value means fixed on both axes with no min/max bounds.
type Sizing struct {
	Horizontal SizeMode `json:"horizontal,omitempty" bson:"horizontal,omitempty"`
	Vertical   SizeMode `json:"vertical,omitempty" bson:"vertical,omitempty"`

	// Optional bounds; zero means unbounded.
	MinWidth  int `json:"min_width,omitempty" bson:"min_width,omitempty"`
	MaxWidth  int `json:"max_width,omitempty" bson:"max_width,omitempty"`
	MinHeight int `json:"min_height,omitempty" bson:"min_height,omitempty"`
	MaxHeight int `json:"max_height,omitempty" bson:"max_height,omitempty"`
}

// Mode returns the size mode for the given direction, defaulting to fixed.
func (s Sizing) Mode(d Direction) SizeMode {
	m := s.Horizontal
	if d == Vertical {
		m = s.Vertical
	}
	if m == "" {
		return SizeFixed
	}
	return m
}

// ClampWidth applies the horizontal min/max bounds to w.
func (s Sizing) ClampWidth(w int) int {
	if s.MinWidth > 0 && w < s.MinWidth {
		w = s.MinWidth
	}
	if s.MaxWidth > 0 && w > s.MaxWidth {
		w = s.MaxWidth
	}
	return w
}

// ClampHeight applies the vertical min/max bounds to h.
func (s Sizing) ClampHeight(h int) int {
	if s.MinHeight > 0 && h < s.MinHeight {
		h = s.MinHeight
	}
	if s.MaxHeight > 0 && h > s.MaxHeight {
		h = s.MaxHeight
	}
	return h
}

// Constraints pins object edges to its parent. The values are carried with
// the document and consumed by an external positioning step; the layout
// engine itself does not read them.
type Constraints struct {
	Left   bool `json:"left,omitempty" bson:"left,omitempty"`
	Right  bool `json:"right,omitempty" bson:"right,omitempty"`
	Top    bool `json:"top,omitempty" bson:"top,omitempty"`
	Bottom bool `json:"bottom,omitempty" bson:"bottom,omitempty"`
}
