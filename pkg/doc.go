// Package pkg provides the core libraries for Boardkit board composition.
//
// # Overview
//
// Boardkit lays out and renders hierarchical 2D grid compositions: nested
// containers with flexbox-style auto-layout, smart-guide snapping, and
// multi-format output. The pkg directory is organized into five main areas:
//
//  1. [core] - Domain logic (geometry, layout, scene tree, snapping, selection)
//  2. [board] - The serialization format and scene conversion
//  3. [pipeline] - Orchestration (load → layout → render) with caching
//  4. [render] - Output backends (text grid, SVG, Graphviz, PNG/PDF)
//  5. [store] / [cache] - Board persistence and pipeline result caching
//
// # Architecture
//
// The typical data flow through Boardkit:
//
//	Board document (JSON, file or store)
//	         ↓
//	    [board] package (flat document → scene tree)
//	         ↓
//	    [core/layout] package (hug sizing + auto-layout placement)
//	         ↓
//	    [render] packages (text / SVG / DOT / PNG / PDF)
//	         ↓
//	    Artifacts, cached by content hash
//
// # Quick Start
//
// Run the full pipeline against a board file:
//
//	import (
//	    "context"
//	    "github.com/boardkit/boardkit/pkg/cache"
//	    "github.com/boardkit/boardkit/pkg/pipeline"
//	)
//
//	c, _ := cache.NewFileCache("/tmp/boardkit-cache")
//	runner := pipeline.NewRunner(c, nil, nil)
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    Path:    "board.json",
//	    Formats: []string{"svg", "text"},
//	})
//
// Interactive concerns (hit-testing, drag snapping, selection context) live
// in [core/scene], [core/guides], and [core/selection] and are consumed by
// the terminal editor and the HTTP API.
package pkg
