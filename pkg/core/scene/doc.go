// Package scene defines the composition tree for boardkit documents and the
// hierarchy operations that query and mutate it.
//
// # Overview
//
// A board is a forest of [Object] nodes. Each object is a rectangle on the
// integer cell grid; containers own an ordered child sequence whose order is
// the z-order (last child renders topmost). A [Scene] wraps the root
// collection with an ID index so objects can be resolved in O(1) during
// structural edits.
//
// # Hierarchy operations
//
//   - [FindObjectAtPoint]: topmost visible object under a point
//   - [FindDropTarget]: container that would receive a dragged object
//   - [IsDescendantOf]: containment query used for drop validation
//   - [ObjectPath]: root-to-target path for breadcrumb display
//   - [InsertionIndex]: auto-layout slot for a drop coordinate
//   - [Scene.Reparent]: the single mutating entry point
//
// # Invariants
//
// Every object appears in at most one parent's child sequence, and its
// ParentID agrees with that membership. No object is its own ancestor:
// Reparent rejects self and descendant targets before touching the tree.
// A cycle encountered during traversal means the tree was corrupted by an
// outside writer and is surfaced as a panic rather than tolerated.
//
// Reparent is the only operation with side effects. It requires exclusive
// access to the affected containers; callers must serialize structural edits.
package scene
