package text

import (
	"strings"
	"testing"

	"github.com/boardkit/boardkit/pkg/core/geom"
	"github.com/boardkit/boardkit/pkg/core/guides"
	"github.com/boardkit/boardkit/pkg/core/scene"
)

func TestBufferBounds(t *testing.T) {
	b := NewBuffer(4, 2)

	b.SetChar(0, 0, 'a', ColorDefault)
	b.SetChar(3, 1, 'b', ColorObject)
	// Out-of-bounds writes are dropped.
	b.SetChar(-1, 0, 'x', ColorDefault)
	b.SetChar(4, 0, 'x', ColorDefault)
	b.SetChar(0, 2, 'x', ColorDefault)

	if got := b.Cell(0, 0).Rune; got != 'a' {
		t.Errorf("Cell(0,0) = %q, want 'a'", got)
	}
	if got := b.Cell(3, 1); got.Rune != 'b' || got.Color != ColorObject {
		t.Errorf("Cell(3,1) = %+v, want colored 'b'", got)
	}
	if got := b.Cell(9, 9); got != (Cell{}) {
		t.Errorf("out-of-bounds Cell = %+v, want zero", got)
	}
	if got := b.String(); got != "a   \n   b" {
		t.Errorf("String() = %q", got)
	}
}

func TestRenderBox(t *testing.T) {
	o := scene.NewObject(scene.KindLeaf, geom.NewRect(1, 1, 5, 3))
	buf := Render([]*scene.Object{o}, 8, 5)

	want := strings.Join([]string{
		"        ",
		" ┌───┐  ",
		" │   │  ",
		" └───┘  ",
		"        ",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("rendered box:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderNameInBorder(t *testing.T) {
	o := scene.NewObject(scene.KindContainer, geom.NewRect(0, 0, 10, 3))
	o.Name = "frame"
	buf := Render([]*scene.Object{o}, 12, 4)

	if got := buf.String(); !strings.Contains(got, "┌─frame──┐") {
		t.Errorf("name missing from top border:\n%s", got)
	}

	// Long names truncate to the interior width.
	o.Name = "averylongname"
	buf = Render([]*scene.Object{o}, 12, 4)
	if got := buf.String(); !strings.Contains(got, "┌─averyl") {
		t.Errorf("long name not truncated:\n%s", got)
	}
}

func TestRenderSkipsInvisible(t *testing.T) {
	o := scene.NewObject(scene.KindLeaf, geom.NewRect(0, 0, 4, 3))
	o.Visible = false
	buf := Render([]*scene.Object{o}, 6, 4)
	if got := strings.TrimSpace(buf.String()); got != "" {
		t.Errorf("invisible object drawn: %q", got)
	}
}

func TestRenderChildrenOverParent(t *testing.T) {
	child := scene.NewObject(scene.KindLeaf, geom.NewRect(2, 1, 4, 3))
	parent := scene.NewObject(scene.KindContainer, geom.NewRect(0, 0, 10, 5))
	child.ParentID = parent.ID
	parent.Children = []*scene.Object{child}

	buf := Render([]*scene.Object{parent}, 12, 6)
	// The child's top-left corner overdraws the parent's interior.
	if got := buf.Cell(2, 1); got.Rune != '┌' || got.Color != ColorObject {
		t.Errorf("Cell(2,1) = %+v, want child corner", got)
	}
}

func TestRenderGuideOverlay(t *testing.T) {
	o := scene.NewObject(scene.KindLeaf, geom.NewRect(0, 0, 4, 3))
	snap := &guides.SnapResult{
		Guides: []guides.GuideLine{
			{Axis: guides.AxisVertical, Kind: guides.KindObjectEdge, Position: 6, Start: 0, End: 4},
			{Axis: guides.AxisHorizontal, Kind: guides.KindObjectEdge, Position: 5, Start: 0, End: 8},
		},
		Distances: []guides.DistanceIndicator{
			{Axis: guides.AxisHorizontal, Gap: 3, From: geom.Point{X: 4, Y: 1}, To: geom.Point{X: 7, Y: 1}},
		},
	}

	buf := Render([]*scene.Object{o}, 10, 7, WithSnapResult(snap))
	if got := buf.Cell(6, 2); got.Rune != '┊' || got.Color != ColorGuide {
		t.Errorf("vertical guide cell = %+v", got)
	}
	if got := buf.Cell(3, 5); got.Rune != '┄' {
		t.Errorf("horizontal guide cell = %+v", got)
	}
	if got := buf.Cell(5, 1); got.Rune != '3' || got.Color != ColorDistance {
		t.Errorf("distance label cell = %+v", got)
	}
}

func TestRenderPositionLabel(t *testing.T) {
	buf := Render(nil, 12, 5, WithPositionLabel(3, 2))
	if got := buf.Cell(4, 1); got.Rune != '3' || got.Color != ColorLabel {
		t.Errorf("label cell = %+v", got)
	}
}
