package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boardkit/boardkit/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: text, svg, dot, png, pdf, json
	detailed bool     // include geometry in DOT labels
	noCache  bool     // disable caching
	refresh  bool     // bypass the board cache
	width    int      // canvas width in cells
	height   int      // canvas height in cells
}

// renderCommand creates the render command for generating board artifacts.
//
// Default settings:
//   - format: svg
//   - canvas: the board's own canvas, falling back to the configured default
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		width:  c.Config.Canvas.Width,
		height: c.Config.Canvas.Height,
	}

	cmd := &cobra.Command{
		Use:   "render [board.json]",
		Short: "Render a board to SVG, text, or Graphviz output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), text, dot, png, pdf, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include geometry in DOT labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the board cache")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "canvas width in cells")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "canvas height in cells")

	return cmd
}

// runRender loads the board, runs the pipeline, and writes each requested
// format to its own file. The text format goes to stdout when no output is
// given.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		Path:         input,
		Refresh:      opts.refresh,
		CanvasWidth:  opts.width,
		CanvasHeight: opts.height,
		Formats:      opts.formats,
		Detailed:     opts.detailed,
		Logger:       c.Logger,
	}

	spinner := newSpinnerWithContext(ctx, "Rendering board...")
	spinner.Start()

	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	// A lone text render without -o streams to the terminal.
	if len(opts.formats) == 1 && opts.formats[0] == pipeline.FormatText && opts.output == "" {
		fmt.Println(string(result.Artifacts[pipeline.FormatText]))
		return nil
	}

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		var path string
		if len(opts.formats) == 1 && opts.output != "" {
			path = opts.output
		} else {
			path = base + "." + format
		}
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	printSuccess("Render complete")
	printStats(result.Stats.ObjectCount, len(result.Board.Guides), result.CacheInfo.RenderHit)

	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output already
// carries a format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifact writes data to path, or stdout when path is "-".
func writeArtifact(path string, data []byte) error {
	var out io.WriteCloser
	if path == "-" {
		out = os.Stdout
	} else {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		out = f
		defer f.Close()
	}
	_, err := out.Write(data)
	return err
}
