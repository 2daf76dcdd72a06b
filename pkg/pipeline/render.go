package pipeline

import (
	"fmt"

	"github.com/boardkit/boardkit/pkg/board"
	"github.com/boardkit/boardkit/pkg/core/scene"
	"github.com/boardkit/boardkit/pkg/render"
	"github.com/boardkit/boardkit/pkg/render/dot"
	"github.com/boardkit/boardkit/pkg/render/svg"
	"github.com/boardkit/boardkit/pkg/render/text"
)

// =============================================================================
// Render Stage
// =============================================================================

// renderFormats renders the laid-out board in every requested format.
func renderFormats(b board.Board, s *scene.Scene, opts Options) (map[string][]byte, error) {
	w, h := opts.canvas(b)
	out := make(map[string][]byte, len(opts.Formats))

	// SVG is rendered once and reused for raster conversion.
	var svgData []byte
	needSVG := false
	for _, f := range opts.Formats {
		if f == FormatSVG || f == FormatPNG || f == FormatPDF {
			needSVG = true
		}
	}
	if needSVG {
		svgData = svg.Render(s.Roots(), w, h, svg.WithUserGuides(b.Guides))
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatText:
			out[format] = []byte(text.Render(s.Roots(), w, h).String())
		case FormatSVG:
			out[format] = svgData
		case FormatDOT:
			out[format] = []byte(dot.ToDOT(s.Roots(), dot.Options{Detailed: opts.Detailed}))
		case FormatPNG:
			data, err := render.ToPNG(svgData, DefaultPNGScale)
			if err != nil {
				return nil, fmt.Errorf("render png: %w", err)
			}
			out[format] = data
		case FormatPDF:
			data, err := render.ToPDF(svgData)
			if err != nil {
				return nil, fmt.Errorf("render pdf: %w", err)
			}
			out[format] = data
		case FormatJSON:
			data, err := board.Marshal(b)
			if err != nil {
				return nil, fmt.Errorf("render json: %w", err)
			}
			out[format] = data
		default:
			return nil, fmt.Errorf("invalid format: %q", format)
		}
	}
	return out, nil
}
