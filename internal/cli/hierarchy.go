package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boardkit/boardkit/pkg/board"
	"github.com/boardkit/boardkit/pkg/pipeline"
	"github.com/boardkit/boardkit/pkg/render/dot"
)

// hierarchyCommand creates the hierarchy command for inspecting containment.
func (c *CLI) hierarchyCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
		laidOut  bool
	)

	cmd := &cobra.Command{
		Use:   "hierarchy [board.json]",
		Short: "Show the containment hierarchy of a board as a Graphviz diagram",
		Long: `Show the containment hierarchy of a board as a Graphviz diagram.

Each object becomes a node and edges point from parent to child in document
order. With --format dot the DOT source is printed to stdout; svg, png, and
pdf render the graph through Graphviz.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runHierarchy(cmd.Context(), args[0], output, format, detailed, laidOut)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout for dot, <input>.hierarchy.<format> otherwise)")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot (default), svg, png, pdf")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include geometry and layout config in labels")
	cmd.Flags().BoolVar(&laidOut, "layout", false, "run the layout pass before rendering")

	return cmd
}

func (c *CLI) runHierarchy(ctx context.Context, input, output, format string, detailed, laidOut bool) error {
	b, err := board.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load board %s: %w", input, err)
	}
	sc, err := board.ToScene(b)
	if err != nil {
		return fmt.Errorf("rebuild scene: %w", err)
	}
	if laidOut {
		pipeline.LayoutScene(sc)
	}

	src := dot.ToDOT(sc.Roots(), dot.Options{Detailed: detailed})

	var data []byte
	switch format {
	case "dot":
		if output == "" {
			fmt.Print(src)
			return nil
		}
		data = []byte(src)
	case "svg":
		if data, err = dot.RenderSVG(src); err != nil {
			return fmt.Errorf("render hierarchy: %w", err)
		}
	case "png":
		if data, err = dot.RenderPNG(src, pipeline.DefaultPNGScale); err != nil {
			return fmt.Errorf("render hierarchy: %w", err)
		}
	case "pdf":
		if data, err = dot.RenderPDF(src); err != nil {
			return fmt.Errorf("render hierarchy: %w", err)
		}
	default:
		return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', 'png', or 'pdf')", format)
	}

	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		output = base + ".hierarchy." + format
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Hierarchy rendered")
	printFile(output)
	return nil
}
