package scene

import "errors"

var (
	// ErrInvalidObjectID is returned by [Scene.AddObject] when the object ID
	// is empty. All objects must have non-empty identifiers.
	ErrInvalidObjectID = errors.New("object ID must not be empty")

	// ErrDuplicateObjectID is returned by [Scene.AddObject] when an object
	// with the same ID is already indexed.
	ErrDuplicateObjectID = errors.New("duplicate object ID")

	// ErrObjectNotFound is returned by mutating operations when an object is
	// not part of the scene.
	ErrObjectNotFound = errors.New("object not in scene")

	// ErrNotContainer is returned by [Scene.Reparent] when the target cannot
	// contain children.
	ErrNotContainer = errors.New("target cannot contain children")

	// ErrReparentIntoSelf is returned by [Scene.Reparent] when the target is
	// the moved object itself or one of its descendants. Accepting such a
	// move would create a cycle.
	ErrReparentIntoSelf = errors.New("cannot reparent into self or descendant")
)

// Scene holds the root collection of a board together with an ID index and
// the set of containers whose layout is stale.
//
// The zero value is not usable - use [New]. Scene is not safe for concurrent
// mutation without external synchronization.
type Scene struct {
	roots []*Object
	index map[string]*Object
	dirty map[string]bool
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		index: make(map[string]*Object),
		dirty: make(map[string]bool),
	}
}

// Roots returns the top-level objects in z-order (last renders topmost).
// The returned slice is owned by the scene and must not be modified.
func (s *Scene) Roots() []*Object { return s.roots }

// FindObjectByID resolves an ID via the index. Returns nil when absent.
func (s *Scene) FindObjectByID(id string) *Object { return s.index[id] }

// Len returns the number of indexed objects, including nested children.
func (s *Scene) Len() int { return len(s.index) }

// AddObject appends obj to the root collection and indexes it together with
// its subtree. The object keeps any children it arrives with.
func (s *Scene) AddObject(obj *Object) error {
	if err := s.indexTree(obj); err != nil {
		return err
	}
	obj.ParentID = ""
	s.roots = append(s.roots, obj)
	return nil
}

// RemoveObject detaches obj from its parent (or the root collection) and
// drops its subtree from the index.
func (s *Scene) RemoveObject(obj *Object) error {
	if _, ok := s.index[obj.ID]; !ok {
		return ErrObjectNotFound
	}
	s.detach(obj)
	s.walk(obj, func(o *Object) {
		delete(s.index, o.ID)
		delete(s.dirty, o.ID)
	})
	return nil
}

// MarkDirty records that a container needs a layout pass.
func (s *Scene) MarkDirty(id string) {
	if _, ok := s.index[id]; ok {
		s.dirty[id] = true
	}
}

// TakeDirty returns the containers marked for re-layout and clears the set.
func (s *Scene) TakeDirty() []*Object {
	out := make([]*Object, 0, len(s.dirty))
	for id := range s.dirty {
		if o := s.index[id]; o != nil {
			out = append(out, o)
		}
	}
	s.dirty = make(map[string]bool)
	return out
}

// Reparent moves obj under newParent at the given child index. It is the
// single mutating entry point for structural edits.
//
// A nil newParent moves obj to the root collection. An index outside
// [0, len(children)] appends. Parents with auto-layout enabled, on both
// sides of the move, are marked for re-layout.
//
// The move is rejected with [ErrReparentIntoSelf] when the target is obj or
// one of obj's descendants, and with [ErrNotContainer] when the target is a
// leaf. Reparenting several objects is not atomic: callers performing a
// multi-select drag invoke Reparent once per object and intermediate states
// are externally visible.
func (s *Scene) Reparent(obj, newParent *Object, index int) error {
	if _, ok := s.index[obj.ID]; !ok {
		return ErrObjectNotFound
	}
	if newParent != nil {
		if !newParent.CanContainChildren() {
			return ErrNotContainer
		}
		if newParent.ID == obj.ID || IsDescendantOf(newParent, obj) {
			return ErrReparentIntoSelf
		}
	}

	s.detach(obj)

	if newParent == nil {
		obj.ParentID = ""
		s.roots = append(s.roots, obj)
		return nil
	}

	obj.ParentID = newParent.ID
	newParent.insertAt(obj, index)
	if newParent.AutoLayout.Enabled {
		s.MarkDirty(newParent.ID)
	}
	return nil
}

// detach removes obj from its current parent's children or from the root
// collection, marking an auto-layout parent dirty.
func (s *Scene) detach(obj *Object) {
	if obj.ParentID != "" {
		parent := s.index[obj.ParentID]
		if parent != nil {
			if i := parent.IndexOf(obj); i >= 0 {
				parent.removeAt(i)
			}
			if parent.AutoLayout.Enabled {
				s.MarkDirty(parent.ID)
			}
		}
		return
	}
	for i, r := range s.roots {
		if r.ID == obj.ID {
			s.roots = append(s.roots[:i], s.roots[i+1:]...)
			return
		}
	}
}

// indexTree adds obj and its subtree to the index, validating IDs.
func (s *Scene) indexTree(obj *Object) error {
	var add []*Object
	var err error
	s.walk(obj, func(o *Object) {
		if err != nil {
			return
		}
		if o.ID == "" {
			err = ErrInvalidObjectID
			return
		}
		if _, exists := s.index[o.ID]; exists {
			err = ErrDuplicateObjectID
			return
		}
		add = append(add, o)
	})
	if err != nil {
		return err
	}
	for _, o := range add {
		s.index[o.ID] = o
	}
	return nil
}

// walk visits obj and its subtree depth-first. A node seen twice means an
// outside writer corrupted the tree; that is a defect, not a condition to
// tolerate.
func (s *Scene) walk(obj *Object, fn func(*Object)) {
	seen := make(map[*Object]bool)
	var visit func(*Object)
	visit = func(o *Object) {
		if seen[o] {
			panic("scene: cycle detected in object tree")
		}
		seen[o] = true
		fn(o)
		for _, c := range o.Children {
			visit(c)
		}
	}
	visit(obj)
}
