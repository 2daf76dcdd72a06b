// Package board provides serialization types for compositions.
//
// This package defines the canonical wire format for Boardkit's scene data,
// used for JSON files, API responses, caching, and storage backends.
//
// # Architecture
//
// The package sits at the serialization boundary between internal
// representations and external formats:
//
//   - [Board], [Object]: Serialization types (this package)
//   - pkg/core/scene.Scene: Internal tree representation
//
// Use [FromScene]/[ToScene] to convert between them.
//
// # Wire Format
//
// Objects are stored flat in depth-first document order with a parent_id
// reference:
//
//	{
//	  "canvas": {"width": 120, "height": 40},
//	  "objects": [
//	    {"id": "frame-1", "kind": "container", "rect": {...}},
//	    {"id": "box-1", "kind": "leaf", "parent_id": "frame-1", "rect": {...}}
//	  ],
//	  "guides": [{"axis": "vertical", "position": 40}]
//	}
//
// Parents always precede their children, so child sequence and z-order
// survive a round trip.
//
// # Common Operations
//
//	b, _ := board.ReadFile("board.json")     // File → Board
//	board.WriteFile(b, "output.json")        // Board → File
//	data, _ := board.Marshal(b)              // Board → []byte
//	s, _ := board.ToScene(b)                 // Board → Scene
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package board
