// Package pipeline provides the core board processing pipeline for Boardkit.
//
// This package implements the complete load → layout → render pipeline that
// can be used by CLI and server components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a board document from a store or file
//  2. Layout: Run the auto-layout pass over the scene tree
//  3. Render: Generate output in various formats (text, SVG, DOT, PNG, PDF)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Path:    "board.json",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	b, err := runner.Load(ctx, opts)
//
//	// Layout with an existing board
//	laid, s, err := runner.Layout(ctx, b, opts)
//
//	// Render with an existing laid-out board
//	artifacts, err := runner.Render(ctx, laid, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/boardkit/boardkit/pkg/board"
	"github.com/boardkit/boardkit/pkg/cache"
	"github.com/boardkit/boardkit/pkg/store"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultCanvasWidth is the fallback canvas width in grid units when
	// neither the options nor the board specify one.
	DefaultCanvasWidth = 120

	// DefaultCanvasHeight is the fallback canvas height in grid units.
	DefaultCanvasHeight = 40

	// DefaultPNGScale is the raster scale factor for PNG export.
	DefaultPNGScale = 2.0
)

// Format constants for output formats.
const (
	FormatText = "text"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatSVG:  true,
	FormatDOT:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the board pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	BoardID string `json:"board_id,omitempty"` // Load from the runner's store
	Path    string `json:"path,omitempty"`     // Load from a JSON file instead
	Refresh bool   `json:"refresh,omitempty"`  // Bypass the board cache

	// Layout options
	CanvasWidth  int `json:"canvas_width,omitempty"`
	CanvasHeight int `json:"canvas_height,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // Geometry in DOT labels

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
	Store  store.Store `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Board is the laid-out board document.
	Board board.Board

	// BoardHash is the content hash of the loaded board.
	BoardHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ObjectCount int
	LoadTime    time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // Whether the board document came from cache
	LayoutHit bool // Whether the layout result came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: text, svg, dot, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for the load stage.
func (o *Options) ValidateForLoad() error {
	if o.BoardID == "" && o.Path == "" {
		return fmt.Errorf("board_id or path is required")
	}
	if o.BoardID != "" && o.Store == nil {
		return fmt.Errorf("board_id requires a store")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Source names where the board comes from, for logging and instrumentation.
func (o *Options) Source() string {
	if o.BoardID != "" {
		return o.BoardID
	}
	return o.Path
}

// canvas resolves the canvas size from options and board, falling back to
// package defaults.
func (o *Options) canvas(b board.Board) (w, h int) {
	w, h = o.CanvasWidth, o.CanvasHeight
	if w == 0 {
		w = b.Canvas.Width
	}
	if h == 0 {
		h = b.Canvas.Height
	}
	if w == 0 {
		w = DefaultCanvasWidth
	}
	if h == 0 {
		h = DefaultCanvasHeight
	}
	return w, h
}

// LayoutKeyOpts returns cache key options for the layout stage.
func (o *Options) LayoutKeyOpts(b board.Board) cache.LayoutKeyOpts {
	w, h := o.canvas(b)
	return cache.LayoutKeyOpts{CanvasWidth: w, CanvasHeight: h}
}

// RenderKeyOpts returns cache key options for one output format.
func (o *Options) RenderKeyOpts(b board.Board, format string) cache.RenderKeyOpts {
	w, h := o.canvas(b)
	return cache.RenderKeyOpts{Format: format, Width: w, Height: h, Detailed: o.Detailed}
}
