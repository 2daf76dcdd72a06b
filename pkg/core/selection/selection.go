// Package selection tracks the editing focus and the selected object set.
//
// A [Context] is either at the scene root or inside a container. Entering a
// container records the full root-to-container path as a breadcrumb so the
// editor can render it and walk back out one level at a time. Every focus
// change clears the selection, since the previously selected objects are no
// longer at the visible level.
package selection

import (
	"github.com/boardkit/boardkit/pkg/core/scene"
)

// Context is the focus state machine. The zero value is at the root with
// nothing selected.
type Context struct {
	breadcrumb []*scene.Object
	selected   map[string]bool
}

// New creates a context at the scene root.
func New() *Context {
	return &Context{selected: make(map[string]bool)}
}

// AtRoot reports whether no container is focused.
func (c *Context) AtRoot() bool { return len(c.breadcrumb) == 0 }

// Current returns the focused container, or nil at the root.
func (c *Context) Current() *scene.Object {
	if len(c.breadcrumb) == 0 {
		return nil
	}
	return c.breadcrumb[len(c.breadcrumb)-1]
}

// Breadcrumb returns the root-to-current container path. The returned slice
// is shared; callers must not modify it.
func (c *Context) Breadcrumb() []*scene.Object { return c.breadcrumb }

// EnterContainer focuses a container and records its path from the roots.
// The selection is cleared. Entering a non-container or an object not
// reachable from roots leaves the context unchanged.
func (c *Context) EnterContainer(container *scene.Object, roots []*scene.Object) {
	if container == nil || !container.CanContainChildren() {
		return
	}
	path := scene.ObjectPath(roots, container)
	if path == nil {
		return
	}
	c.breadcrumb = path
	c.ClearSelection()
}

// ExitContainer pops one breadcrumb level, returning to the parent container
// or to the root when only one level remains. The selection is cleared.
func (c *Context) ExitContainer() {
	if len(c.breadcrumb) == 0 {
		return
	}
	c.breadcrumb = c.breadcrumb[:len(c.breadcrumb)-1]
	c.ClearSelection()
}

// ExitToRoot returns to the scene root unconditionally and clears the
// selection.
func (c *Context) ExitToRoot() {
	c.breadcrumb = nil
	c.ClearSelection()
}

// ObjectsAtCurrentLevel returns the focused container's children, or the
// scene roots when at the root.
func (c *Context) ObjectsAtCurrentLevel(roots []*scene.Object) []*scene.Object {
	if cur := c.Current(); cur != nil {
		return cur.Children
	}
	return roots
}

// =============================================================================
// Selection Set
// =============================================================================

// Select adds an object ID to the selection.
func (c *Context) Select(id string) {
	if id == "" {
		return
	}
	if c.selected == nil {
		c.selected = make(map[string]bool)
	}
	c.selected[id] = true
}

// Deselect removes an object ID from the selection.
func (c *Context) Deselect(id string) { delete(c.selected, id) }

// Toggle flips an object's selection state.
func (c *Context) Toggle(id string) {
	if c.selected[id] {
		c.Deselect(id)
		return
	}
	c.Select(id)
}

// IsSelected reports whether the object ID is selected.
func (c *Context) IsSelected(id string) bool { return c.selected[id] }

// ClearSelection empties the selection set.
func (c *Context) ClearSelection() {
	for id := range c.selected {
		delete(c.selected, id)
	}
}

// SelectedIDs returns the selected object IDs in no particular order.
func (c *Context) SelectedIDs() []string {
	out := make([]string, 0, len(c.selected))
	for id := range c.selected {
		out = append(out, id)
	}
	return out
}
