package cli

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/boardkit/boardkit/pkg/board"
	"github.com/boardkit/boardkit/pkg/core/geom"
	"github.com/boardkit/boardkit/pkg/core/guides"
	"github.com/boardkit/boardkit/pkg/core/scene"
)

// editScene builds a root container with one child plus a free root leaf.
func editScene(t *testing.T) (*scene.Scene, *scene.Object, *scene.Object, *scene.Object) {
	t.Helper()
	sc := scene.New()

	frame := scene.NewObject(scene.KindContainer, geom.NewRect(10, 5, 30, 12))
	frame.Name = "frame"
	inner := scene.NewObject(scene.KindLeaf, geom.NewRect(12, 7, 6, 3))
	inner.Name = "inner"
	inner.ParentID = frame.ID
	frame.Children = []*scene.Object{inner}

	free := scene.NewObject(scene.KindLeaf, geom.NewRect(60, 20, 8, 6))
	free.Name = "free"

	if err := sc.AddObject(frame); err != nil {
		t.Fatal(err)
	}
	if err := sc.AddObject(free); err != nil {
		t.Fatal(err)
	}
	return sc, frame, inner, free
}

func testEditModel(t *testing.T, sc *scene.Scene) editModel {
	t.Helper()
	cfg := guides.DefaultConfig()
	cfg.SnapToCanvasEdges = false
	cfg.SnapToCanvasCenter = false
	path := filepath.Join(t.TempDir(), "board.json")
	return newEditModel(path, "test", board.Canvas{Width: 120, Height: 40}, nil, sc, cfg)
}

func press(t *testing.T, m editModel, msg tea.KeyMsg) editModel {
	t.Helper()
	next, _ := m.Update(msg)
	em, ok := next.(editModel)
	if !ok {
		t.Fatalf("Update returned %T, want editModel", next)
	}
	return em
}

func TestEditModelCycleSelection(t *testing.T) {
	sc, frame, _, free := editScene(t)
	m := testEditModel(t, sc)

	if got := m.selected(); got != frame {
		t.Fatalf("initial selection = %v, want frame", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.selected(); got != free {
		t.Errorf("after tab, selection = %v, want free", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := m.selected(); got != frame {
		t.Errorf("after shift+tab, selection = %v, want frame", got)
	}
}

func TestEditModelDescendAndAscend(t *testing.T) {
	sc, frame, inner, _ := editScene(t)
	m := testEditModel(t, sc)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.sel.AtRoot() {
		t.Fatal("enter on a container should descend")
	}
	if got := m.selected(); got != inner {
		t.Errorf("inside frame, selection = %v, want inner", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.sel.AtRoot() {
		t.Fatal("esc should return to root")
	}
	if got := m.selected(); got != frame {
		t.Errorf("after esc, selection = %v, want the exited frame", got)
	}
}

func TestEditModelEnterOnLeafIsRejected(t *testing.T) {
	sc, _, _, _ := editScene(t)
	m := testEditModel(t, sc)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}) // select the leaf
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.sel.AtRoot() {
		t.Error("enter on a leaf must not descend")
	}
	if m.status == "" {
		t.Error("rejected descend should explain itself in the status line")
	}
}

func TestEditModelMoveSnapsToSibling(t *testing.T) {
	sc := scene.New()
	anchor := scene.NewObject(scene.KindLeaf, geom.NewRect(10, 10, 6, 4))
	moving := scene.NewObject(scene.KindLeaf, geom.NewRect(20, 18, 8, 6))
	if err := sc.AddObject(anchor); err != nil {
		t.Fatal(err)
	}
	if err := sc.AddObject(moving); err != nil {
		t.Fatal(err)
	}
	m := testEditModel(t, sc)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}) // select the moving object

	// One step left puts the left edge at 19, within tolerance of the
	// anchor's right edge (16): the move snaps flush against it.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if moving.Rect.X != 16 {
		t.Errorf("X = %d, want 16 (flush with anchor)", moving.Rect.X)
	}
	if moving.Rect.Y != 18 {
		t.Errorf("Y = %d, want 18 (no vertical candidate)", moving.Rect.Y)
	}
	if m.lastSnap == nil || !m.lastSnap.SnappedX || m.lastSnap.SnappedY {
		t.Errorf("lastSnap = %+v, want SnappedX only", m.lastSnap)
	}
	if !m.unsaved {
		t.Error("moving an object should mark the board unsaved")
	}
}

func TestEditModelMoveLockedObject(t *testing.T) {
	sc, _, _, free := editScene(t)
	free.Locked = true
	m := testEditModel(t, sc)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if free.Rect.X != 60 {
		t.Errorf("locked object moved to X=%d", free.Rect.X)
	}
	if m.unsaved {
		t.Error("a refused move must not mark the board unsaved")
	}
}

func TestEditModelDropIntoContainer(t *testing.T) {
	sc, frame, _, free := editScene(t)
	// Park the free leaf over the frame so its center hits the container.
	free.Rect = geom.NewRect(14, 8, 6, 3)
	m := testEditModel(t, sc)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}) // select free

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if free.ParentID != frame.ID {
		t.Fatalf("ParentID = %q, want %q", free.ParentID, frame.ID)
	}
	if m.sel.AtRoot() {
		t.Error("drop should follow the object into its new container")
	}
	if got := m.selected(); got != free {
		t.Errorf("selection after drop = %v, want the dropped object", got)
	}
}

func TestEditModelSaveRoundTrip(t *testing.T) {
	sc, _, _, free := editScene(t)
	m := testEditModel(t, sc)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})

	if m.unsaved {
		t.Error("save should clear the unsaved flag")
	}
	b, err := board.ReadFile(m.path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(b.Objects) != 3 {
		t.Errorf("saved %d objects, want 3", len(b.Objects))
	}
	for _, o := range b.Objects {
		if o.ID == free.ID && o.Rect.X != 61 {
			t.Errorf("saved X = %d, want 61", o.Rect.X)
		}
	}
}

func TestEditModelToggleSnap(t *testing.T) {
	sc, _, _, _ := editScene(t)
	m := testEditModel(t, sc)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	if m.snap.Config().Enabled {
		t.Error("g should disable snapping")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	if !m.snap.Config().Enabled {
		t.Error("g again should re-enable snapping")
	}
}
