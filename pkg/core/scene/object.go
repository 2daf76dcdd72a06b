package scene

import (
	"github.com/google/uuid"

	"github.com/boardkit/boardkit/pkg/core/geom"
)

// Kind is the capability tag distinguishing plain objects from containers.
// Only containers may own children or receive drops.
type Kind string

const (
	KindLeaf      Kind = "leaf"
	KindContainer Kind = "container"
)

// Object is a node in the composition tree.
//
// Children are owned and ordered; the order is the z-order with the last
// child rendered topmost. ParentID is a weak back reference kept in sync by
// [Scene.Reparent] and must never be written directly by callers.
type Object struct {
	ID       string    `json:"id" bson:"id"`
	Name     string    `json:"name,omitempty" bson:"name,omitempty"`
	Kind     Kind      `json:"kind" bson:"kind"`
	ParentID string    `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
	Children []*Object `json:"children,omitempty" bson:"children,omitempty"`

	Rect geom.Rect `json:"rect" bson:"rect"`

	Visible bool `json:"visible" bson:"visible"`
	Locked  bool `json:"locked,omitempty" bson:"locked,omitempty"`

	AutoLayout  AutoLayout  `json:"auto_layout,omitempty" bson:"auto_layout,omitempty"`
	Sizing      Sizing      `json:"sizing,omitempty" bson:"sizing,omitempty"`
	Constraints Constraints `json:"constraints,omitempty" bson:"constraints,omitempty"`
}

// NewObject creates a visible object of the given kind with a fresh UUID.
func NewObject(kind Kind, rect geom.Rect) *Object {
	if rect.Width < 1 {
		rect.Width = 1
	}
	if rect.Height < 1 {
		rect.Height = 1
	}
	return &Object{
		ID:      uuid.NewString(),
		Kind:    kind,
		Rect:    rect,
		Visible: true,
	}
}

// Bounds returns the rendered bounds of the object. Custom object types that
// draw outside their rect would override this; the base implementation is
// the rect itself.
func (o *Object) Bounds() geom.Rect { return o.Rect }

// ContainsPoint reports whether the point falls inside the object's bounds.
func (o *Object) ContainsPoint(x, y int) bool { return o.Bounds().Contains(x, y) }

// CanContainChildren reports whether the object may receive dropped objects.
func (o *Object) CanContainChildren() bool { return o.Kind == KindContainer }

// IndexOf returns the position of child in the child sequence, or -1.
func (o *Object) IndexOf(child *Object) int {
	for i, c := range o.Children {
		if c.ID == child.ID {
			return i
		}
	}
	return -1
}

// insertAt places child at index, appending when index is out of [0, len].
func (o *Object) insertAt(child *Object, index int) {
	if index < 0 || index > len(o.Children) {
		o.Children = append(o.Children, child)
		return
	}
	o.Children = append(o.Children, nil)
	copy(o.Children[index+1:], o.Children[index:])
	o.Children[index] = child
}

// removeAt removes and returns the child at index. Index must be valid.
func (o *Object) removeAt(index int) *Object {
	child := o.Children[index]
	o.Children = append(o.Children[:index], o.Children[index+1:]...)
	return child
}
