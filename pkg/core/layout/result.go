package layout

import (
	"github.com/boardkit/boardkit/pkg/core/geom"
	"github.com/boardkit/boardkit/pkg/core/scene"
)

// Placement is the computed rect for one child. Placements are ephemeral:
// they are recomputed every pass and never persisted, and the caller applies
// them back onto the scene objects.
type Placement struct {
	Object *scene.Object
	Rect   geom.Rect
}

// Apply writes the placements back onto their objects. It is the one
// mutation in this package and is kept separate from [Calculate] so
// read-only consumers (previews, what-if queries) can skip it.
func Apply(placements []Placement) {
	for _, p := range placements {
		p.Object.Rect = p.Rect
	}
}
