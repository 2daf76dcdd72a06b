package board

import (
	"fmt"

	"github.com/boardkit/boardkit/pkg/core/geom"
	"github.com/boardkit/boardkit/pkg/core/guides"
	"github.com/boardkit/boardkit/pkg/core/scene"
)

// =============================================================================
// Board - Composition Serialization
// =============================================================================

// Board is the canonical serialization format for a composition. Used for
// API responses, storage, caching, and file import/export.
//
// Objects are stored flat in depth-first document order with a parent_id
// reference, so child sequence and z-order survive a round trip.
type Board struct {
	Name    string             `json:"name,omitempty" bson:"name,omitempty"`
	Canvas  Canvas             `json:"canvas" bson:"canvas"`
	Objects []Object           `json:"objects" bson:"objects"`
	Guides  []guides.UserGuide `json:"guides,omitempty" bson:"guides,omitempty"`
}

// Canvas is the drawable area of a board.
type Canvas struct {
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`
}

// Object is the wire form of a scene object.
type Object struct {
	ID          string            `json:"id" bson:"id"`
	Name        string            `json:"name,omitempty" bson:"name,omitempty"`
	Kind        scene.Kind        `json:"kind" bson:"kind"`
	ParentID    string            `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
	Rect        geom.Rect         `json:"rect" bson:"rect"`
	Visible     bool              `json:"visible" bson:"visible"`
	Locked      bool              `json:"locked,omitempty" bson:"locked,omitempty"`
	AutoLayout  scene.AutoLayout  `json:"auto_layout,omitempty" bson:"auto_layout,omitempty"`
	Sizing      scene.Sizing      `json:"sizing,omitempty" bson:"sizing,omitempty"`
	Constraints scene.Constraints `json:"constraints,omitempty" bson:"constraints,omitempty"`
}

// =============================================================================
// Scene ↔ Board Conversion
// =============================================================================

// FromScene flattens a scene into its serialization format, preserving
// root order and child sequence.
func FromScene(s *scene.Scene, name string, canvas Canvas, userGuides []guides.UserGuide) Board {
	out := Board{
		Name:    name,
		Canvas:  canvas,
		Objects: make([]Object, 0, s.Len()),
		Guides:  userGuides,
	}
	var flatten func(o *scene.Object)
	flatten = func(o *scene.Object) {
		out.Objects = append(out.Objects, Object{
			ID:          o.ID,
			Name:        o.Name,
			Kind:        o.Kind,
			ParentID:    o.ParentID,
			Rect:        o.Rect,
			Visible:     o.Visible,
			Locked:      o.Locked,
			AutoLayout:  o.AutoLayout,
			Sizing:      o.Sizing,
			Constraints: o.Constraints,
		})
		for _, c := range o.Children {
			flatten(c)
		}
	}
	for _, r := range s.Roots() {
		flatten(r)
	}
	return out
}

// ToScene rebuilds a scene from a board. Parents must appear before their
// children in the object list; children attach in document order.
func ToScene(b Board) (*scene.Scene, error) {
	s := scene.New()
	byID := make(map[string]*scene.Object, len(b.Objects))
	var roots []*scene.Object
	for _, oj := range b.Objects {
		o := &scene.Object{
			ID:          oj.ID,
			Name:        oj.Name,
			Kind:        oj.Kind,
			ParentID:    oj.ParentID,
			Rect:        oj.Rect,
			Visible:     oj.Visible,
			Locked:      oj.Locked,
			AutoLayout:  oj.AutoLayout,
			Sizing:      oj.Sizing,
			Constraints: oj.Constraints,
		}
		if _, dup := byID[o.ID]; dup {
			return nil, fmt.Errorf("object %q: %w", o.ID, scene.ErrDuplicateObjectID)
		}
		if oj.ParentID == "" {
			roots = append(roots, o)
		} else {
			parent, ok := byID[oj.ParentID]
			if !ok {
				return nil, fmt.Errorf("object %q: parent %q: %w", oj.ID, oj.ParentID, scene.ErrObjectNotFound)
			}
			if !parent.CanContainChildren() {
				return nil, fmt.Errorf("object %q: parent %q: %w", oj.ID, oj.ParentID, scene.ErrNotContainer)
			}
			parent.Children = append(parent.Children, o)
		}
		byID[o.ID] = o
	}
	for _, r := range roots {
		if err := s.AddObject(r); err != nil {
			return nil, fmt.Errorf("add object %q: %w", r.ID, err)
		}
	}
	return s, nil
}
