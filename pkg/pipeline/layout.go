package pipeline

import (
	"github.com/boardkit/boardkit/pkg/core/layout"
	"github.com/boardkit/boardkit/pkg/core/scene"
)

// =============================================================================
// Layout Stage
// =============================================================================

// LayoutScene runs a full layout pass over the scene tree. Hug sizes are
// resolved bottom-up so a container knows its children's final sizes, then
// placements are applied top-down so children position inside their
// container's final rect.
func LayoutScene(s *scene.Scene) {
	for _, r := range s.Roots() {
		hugPass(r)
	}
	for _, r := range s.Roots() {
		placePass(r)
	}
	// A full pass leaves nothing pending.
	s.TakeDirty()
}

// LayoutDirty re-runs layout only for containers marked dirty since the
// last pass, in tree order. Used by the editor after reparenting.
func LayoutDirty(s *scene.Scene) []*scene.Object {
	dirty := s.TakeDirty()
	for _, o := range dirty {
		hugPass(o)
		placePass(o)
	}
	return dirty
}

func hugPass(o *scene.Object) {
	for _, c := range o.Children {
		hugPass(c)
	}
	if !o.CanContainChildren() {
		return
	}
	w, h := layout.HugSize(o, o.Children)
	o.Rect.Width, o.Rect.Height = w, h
}

func placePass(o *scene.Object) {
	if o.CanContainChildren() {
		layout.Apply(layout.Calculate(o, o.Children))
	}
	for _, c := range o.Children {
		placePass(c)
	}
}
