package layout

import (
	"reflect"
	"testing"

	"github.com/boardkit/boardkit/pkg/core/geom"
	"github.com/boardkit/boardkit/pkg/core/scene"
)

func row(spacing int, pad geom.Edges) *scene.Object {
	c := scene.NewObject(scene.KindContainer, geom.NewRect(0, 0, 20, 10))
	c.AutoLayout = scene.AutoLayout{
		Enabled:    true,
		Direction:  scene.Horizontal,
		Spacing:    spacing,
		Padding:    pad,
		Align:      scene.AlignStart,
		Distribute: scene.DistributePacked,
	}
	return c
}

func fixed(w, h int) *scene.Object {
	return scene.NewObject(scene.KindLeaf, geom.NewRect(0, 0, w, h))
}

func fill(w, h int) *scene.Object {
	o := fixed(w, h)
	o.Sizing.Horizontal = scene.SizeFill
	return o
}

func rects(placements []Placement) []geom.Rect {
	out := make([]geom.Rect, len(placements))
	for i, p := range placements {
		out[i] = p.Rect
	}
	return out
}

func TestCalculatePassthrough(t *testing.T) {
	c := scene.NewObject(scene.KindContainer, geom.NewRect(0, 0, 20, 10))
	children := []*scene.Object{fixed(4, 2), fixed(3, 3)}
	children[0].Rect = geom.NewRect(7, 7, 4, 2)

	got := rects(Calculate(c, children))
	want := []geom.Rect{geom.NewRect(7, 7, 4, 2), geom.NewRect(0, 0, 3, 3)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("disabled auto-layout should be identity: got %v, want %v", got, want)
	}
}

func TestCalculateIsPure(t *testing.T) {
	c := row(1, geom.EdgeAll(1))
	children := []*scene.Object{fixed(4, 2), fill(1, 2), fixed(3, 3)}

	before := make([]geom.Rect, len(children))
	for i, ch := range children {
		before[i] = ch.Rect
	}

	first := rects(Calculate(c, children))
	second := rects(Calculate(c, children))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Calculate differs: %v vs %v", first, second)
	}
	for i, ch := range children {
		if ch.Rect != before[i] {
			t.Errorf("child %d mutated: %v -> %v", i, before[i], ch.Rect)
		}
	}
}

func TestLinearFillDistribution(t *testing.T) {
	// mainAxisSize=20, two fixed items of 4, one fill, spacing=1:
	// fill = max(1, (20-8-2)/1) = 10.
	c := row(1, geom.Edges{})
	children := []*scene.Object{fixed(4, 2), fixed(4, 2), fill(1, 2)}

	got := rects(Calculate(c, children))
	if got[2].Width != 10 {
		t.Errorf("fill width = %d, want 10", got[2].Width)
	}
	want := []geom.Rect{
		geom.NewRect(0, 0, 4, 2),
		geom.NewRect(5, 0, 4, 2),
		geom.NewRect(10, 0, 10, 2),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("placements = %v, want %v", got, want)
	}
}

func TestLinearFillNeverBelowOne(t *testing.T) {
	c := row(0, geom.Edges{})
	c.Rect = geom.NewRect(0, 0, 5, 10)
	children := []*scene.Object{fixed(10, 2), fill(1, 2)}

	got := rects(Calculate(c, children))
	if got[1].Width != 1 {
		t.Errorf("overflowed fill width = %d, want 1", got[1].Width)
	}
}

func TestLinearConservationAndMonotonic(t *testing.T) {
	c := row(2, geom.Edges{})
	children := []*scene.Object{fixed(3, 2), fixed(4, 2), fixed(5, 2)}

	got := rects(Calculate(c, children))

	total := 0
	for _, r := range got {
		total += r.Width
	}
	total += 2 * (len(got) - 1)
	if total > c.Rect.Width {
		t.Errorf("packed fixed layout overflows: %d > %d", total, c.Rect.Width)
	}

	for i := 1; i < len(got); i++ {
		if got[i].X <= got[i-1].X {
			t.Errorf("positions not increasing: %v", got)
		}
	}
}

func TestLinearReversed(t *testing.T) {
	c := row(1, geom.Edges{})
	c.AutoLayout.Reversed = true
	a, b := fixed(3, 2), fixed(4, 2)
	children := []*scene.Object{a, b}

	got := Calculate(c, children)
	// Visual order flips: b placed first, a after it. The child sequence
	// itself stays untouched.
	if got[0].Object != b || got[1].Object != a {
		t.Errorf("reversed order wrong: %v, %v", got[0].Object.ID, got[1].Object.ID)
	}
	if got[0].Rect.X != 0 || got[1].Rect.X != 5 {
		t.Errorf("reversed positions = %d, %d, want 0, 5", got[0].Rect.X, got[1].Rect.X)
	}
	if children[0] != a || children[1] != b {
		t.Error("Calculate mutated the child sequence")
	}
}

func TestDistributionModes(t *testing.T) {
	tests := []struct {
		name       string
		distribute scene.Distribute
		wantX      []int
	}{
		{
			// remaining = 20-12 = 8, gap = 8/2 = 4.
			name:       "space-between",
			distribute: scene.DistributeSpaceBetween,
			wantX:      []int{0, 8, 16},
		},
		{
			// gap = 8/3 = 2, start = 1.
			name:       "space-around",
			distribute: scene.DistributeSpaceAround,
			wantX:      []int{1, 7, 13},
		},
		{
			// gap = 8/4 = 2, start = 2.
			name:       "space-evenly",
			distribute: scene.DistributeSpaceEvenly,
			wantX:      []int{2, 8, 14},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := row(0, geom.Edges{})
			c.AutoLayout.Distribute = tt.distribute
			children := []*scene.Object{fixed(4, 2), fixed(4, 2), fixed(4, 2)}

			got := rects(Calculate(c, children))
			for i, x := range tt.wantX {
				if got[i].X != x {
					t.Errorf("item %d X = %d, want %d (%v)", i, got[i].X, x, got)
				}
			}
		})
	}
}

func TestSpaceBetweenSingleChild(t *testing.T) {
	c := row(0, geom.Edges{})
	c.AutoLayout.Distribute = scene.DistributeSpaceBetween
	children := []*scene.Object{fixed(4, 2)}

	// One child must not divide by zero; it sits at the start.
	got := rects(Calculate(c, children))
	if got[0].X != 0 {
		t.Errorf("single child X = %d, want 0", got[0].X)
	}
}

func TestPackedAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align scene.Align
		wantX int
	}{
		{name: "start", align: scene.AlignStart, wantX: 0},
		{name: "center", align: scene.AlignCenter, wantX: 6},
		{name: "end", align: scene.AlignEnd, wantX: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := row(0, geom.Edges{})
			c.AutoLayout.Align = tt.align
			children := []*scene.Object{fixed(8, 2)}

			got := rects(Calculate(c, children))
			if got[0].X != tt.wantX {
				t.Errorf("X = %d, want %d", got[0].X, tt.wantX)
			}
		})
	}
}

func TestCrossAxisPlacement(t *testing.T) {
	tests := []struct {
		name    string
		align   scene.Align
		wantY   int
		wantH   int
	}{
		{name: "start", align: scene.AlignStart, wantY: 0, wantH: 2},
		{name: "center", align: scene.AlignCenter, wantY: 4, wantH: 2},
		{name: "end", align: scene.AlignEnd, wantY: 8, wantH: 2},
		{name: "stretch", align: scene.AlignStretch, wantY: 0, wantH: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := row(0, geom.Edges{})
			c.AutoLayout.Align = tt.align
			children := []*scene.Object{fixed(4, 2)}

			got := rects(Calculate(c, children))
			if got[0].Y != tt.wantY || got[0].Height != tt.wantH {
				t.Errorf("cross placement = (y=%d, h=%d), want (y=%d, h=%d)",
					got[0].Y, got[0].Height, tt.wantY, tt.wantH)
			}
		})
	}
}

func TestCrossFillStretches(t *testing.T) {
	c := row(0, geom.Edges{})
	child := fixed(4, 2)
	child.Sizing.Vertical = scene.SizeFill
	got := rects(Calculate(c, []*scene.Object{child}))
	if got[0].Height != 10 {
		t.Errorf("cross-fill height = %d, want 10", got[0].Height)
	}
}

func TestMinMaxClamping(t *testing.T) {
	c := row(1, geom.Edges{})
	capped := fill(1, 2)
	capped.Sizing.MaxWidth = 6
	floored := fixed(2, 2)
	floored.Sizing.MinWidth = 5

	got := rects(Calculate(c, []*scene.Object{floored, capped}))
	if got[0].Width != 5 {
		t.Errorf("min-clamped width = %d, want 5", got[0].Width)
	}
	if got[1].Width != 6 {
		t.Errorf("max-clamped fill width = %d, want 6", got[1].Width)
	}
}

func TestPaddingOffsetsContent(t *testing.T) {
	c := row(0, geom.EdgeTRBL(1, 2, 1, 2))
	children := []*scene.Object{fixed(4, 2)}
	got := rects(Calculate(c, children))
	if got[0].X != 2 || got[0].Y != 1 {
		t.Errorf("padded origin = (%d, %d), want (2, 1)", got[0].X, got[0].Y)
	}
}

func TestVerticalDirection(t *testing.T) {
	c := row(1, geom.Edges{})
	c.AutoLayout.Direction = scene.Vertical
	children := []*scene.Object{fixed(4, 2), fixed(4, 3)}

	got := rects(Calculate(c, children))
	want := []geom.Rect{geom.NewRect(0, 0, 4, 2), geom.NewRect(0, 3, 4, 3)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("vertical placements = %v, want %v", got, want)
	}
}

func TestWrapLayout(t *testing.T) {
	c := row(1, geom.Edges{})
	c.Rect = geom.NewRect(0, 0, 10, 20)
	c.AutoLayout.Wrap = true
	c.AutoLayout.WrapSpacing = 1
	children := []*scene.Object{fixed(4, 2), fixed(4, 3), fixed(4, 2)}

	got := rects(Calculate(c, children))
	want := []geom.Rect{
		geom.NewRect(0, 0, 4, 2), // line 1
		geom.NewRect(5, 0, 4, 3), // line 1 (4+1+4 = 9 <= 10)
		geom.NewRect(0, 4, 4, 2), // line 2: cross start = 3 (line height) + 1
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wrap placements = %v, want %v", got, want)
	}
}

func TestWrapOversizedItemGetsOwnLine(t *testing.T) {
	c := row(1, geom.Edges{})
	c.Rect = geom.NewRect(0, 0, 5, 20)
	c.AutoLayout.Wrap = true
	children := []*scene.Object{fixed(8, 2), fixed(3, 2)}

	got := rects(Calculate(c, children))
	if got[0].Y == got[1].Y {
		t.Errorf("oversized item should break the line: %v", got)
	}
	if got[0].X != 0 || got[0].Width != 8 {
		t.Errorf("oversized item placed at %v, want full size at origin", got[0])
	}
}

func TestWrapStretchToLineCross(t *testing.T) {
	c := row(1, geom.Edges{})
	c.Rect = geom.NewRect(0, 0, 10, 20)
	c.AutoLayout.Wrap = true
	c.AutoLayout.Align = scene.AlignStretch
	children := []*scene.Object{fixed(4, 2), fixed(4, 5)}

	got := rects(Calculate(c, children))
	if got[0].Height != 5 {
		t.Errorf("stretched item height = %d, want line cross 5", got[0].Height)
	}
}
