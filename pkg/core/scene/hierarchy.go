package scene

// FindObjectAtPoint returns the topmost visible object under (x, y), or nil.
//
// Roots and children are scanned in reverse order so later (topmost)
// siblings win, and children are tested before their parent because children
// render above it. Invisible or locked objects are skipped together with
// their entire subtree, as is the excluded object (matched by ID; pass nil
// to exclude nothing).
func FindObjectAtPoint(roots []*Object, x, y int, exclude *Object) *Object {
	for i := len(roots) - 1; i >= 0; i-- {
		if hit := hitTest(roots[i], x, y, exclude); hit != nil {
			return hit
		}
	}
	return nil
}

func hitTest(obj *Object, x, y int, exclude *Object) *Object {
	if !obj.Visible || obj.Locked {
		return nil
	}
	if exclude != nil && obj.ID == exclude.ID {
		return nil
	}
	for i := len(obj.Children) - 1; i >= 0; i-- {
		if hit := hitTest(obj.Children[i], x, y, exclude); hit != nil {
			return hit
		}
	}
	if obj.ContainsPoint(x, y) {
		return obj
	}
	return nil
}

// FindDropTarget returns the container that would receive dragged if it were
// dropped at (x, y), or nil when the drop lands on empty canvas.
//
// The dragged object and all of its descendants are excluded before any
// point test: an object can never be dropped into itself. Only containers
// that contain the point qualify.
func FindDropTarget(roots []*Object, x, y int, dragged *Object) *Object {
	for i := len(roots) - 1; i >= 0; i-- {
		if target := dropTest(roots[i], x, y, dragged); target != nil {
			return target
		}
	}
	return nil
}

func dropTest(obj *Object, x, y int, dragged *Object) *Object {
	if !obj.Visible || obj.Locked {
		return nil
	}
	if dragged != nil && (obj.ID == dragged.ID || IsDescendantOf(obj, dragged)) {
		return nil
	}
	for i := len(obj.Children) - 1; i >= 0; i-- {
		if target := dropTest(obj.Children[i], x, y, dragged); target != nil {
			return target
		}
	}
	if obj.CanContainChildren() && obj.ContainsPoint(x, y) {
		return obj
	}
	return nil
}

// IsDescendantOf reports whether candidate appears in ancestor's subtree.
// An object is not its own descendant.
//
// The traversal assumes the no-cycle invariant; a node revisited during the
// search indicates a corrupted tree and panics.
func IsDescendantOf(candidate, ancestor *Object) bool {
	if candidate == nil || ancestor == nil {
		return false
	}
	seen := make(map[*Object]bool)
	var search func(*Object) bool
	search = func(o *Object) bool {
		if seen[o] {
			panic("scene: cycle detected in object tree")
		}
		seen[o] = true
		for _, c := range o.Children {
			if c.ID == candidate.ID {
				return true
			}
			if search(c) {
				return true
			}
		}
		return false
	}
	return search(ancestor)
}

// ObjectPath returns the objects from a root down to target, inclusive, or
// nil when target is not reachable from roots. The search short-circuits on
// the first match.
func ObjectPath(roots []*Object, target *Object) []*Object {
	if target == nil {
		return nil
	}
	for _, root := range roots {
		if path := pathTo(root, target); path != nil {
			return path
		}
	}
	return nil
}

func pathTo(obj, target *Object) []*Object {
	if obj.ID == target.ID {
		return []*Object{obj}
	}
	for _, c := range obj.Children {
		if path := pathTo(c, target); path != nil {
			return append([]*Object{obj}, path...)
		}
	}
	return nil
}

// InsertionIndex returns the child slot a drop at (x, y) maps to inside
// container.
//
// Free-form containers always append. Auto-layout containers compare the
// drop coordinate along the main axis against each sibling's midpoint,
// skipping the dragged object itself, and return the slot of the first
// sibling whose midpoint lies past the drop position.
func InsertionIndex(container *Object, x, y int, dragged *Object) int {
	if !container.AutoLayout.Enabled {
		return len(container.Children)
	}

	cfg := container.AutoLayout.Normalized()
	pos := x
	if cfg.Direction == Vertical {
		pos = y
	}

	index := 0
	for _, child := range container.Children {
		if dragged != nil && child.ID == dragged.ID {
			continue
		}
		mid := child.Rect.CenterX()
		if cfg.Direction == Vertical {
			mid = child.Rect.CenterY()
		}
		if pos < mid {
			return index
		}
		index++
	}
	return index
}
