package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boardkit/boardkit/pkg/board"
	"github.com/boardkit/boardkit/pkg/pipeline"
)

// layoutCommand creates the layout command for computing board layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{
		CanvasWidth:  c.Config.Canvas.Width,
		CanvasHeight: c.Config.Canvas.Height,
	}

	cmd := &cobra.Command{
		Use:   "layout [board.json]",
		Short: "Compute auto-layout for a board",
		Long: `Compute auto-layout for a board.

The layout command takes a board.json file, resolves hug sizing bottom-up and
places children of every auto-layout container, and writes the laid-out board
back out as JSON. The output can be rendered with the 'render' command.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			return c.runLayout(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().IntVar(&opts.CanvasWidth, "width", opts.CanvasWidth, "canvas width in cells")
	cmd.Flags().IntVar(&opts.CanvasHeight, "height", opts.CanvasHeight, "canvas height in cells")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass the board cache")

	return cmd
}

// runLayout loads the board, runs the layout pass, and writes output.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	b, err := runner.Load(ctx, opts)
	if err != nil {
		return fmt.Errorf("load board %s: %w", opts.Path, err)
	}

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	laid, cacheHit, err := runner.LayoutWithCacheInfo(ctx, b, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(opts.Path, filepath.Ext(opts.Path))
		outputPath = base + ".layout.json"
	}

	if err := board.WriteFile(laid, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(laid.Objects), len(laid.Guides), cacheHit)
	printNewline()
	printNextStep("Render", "boardkit render "+outputPath)

	return nil
}
