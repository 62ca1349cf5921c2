package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/framegrid/framegrid/pkg/errors"
	"github.com/framegrid/framegrid/pkg/render"
	"github.com/framegrid/framegrid/pkg/render/topology"
)

const (
	formatSVG  = "svg"  // top-view drawing of the plan
	formatDOT  = "dot"  // graphviz DOT source of the topology
	formatTopo = "topo" // topology diagram rendered to SVG via graphviz
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string  // output file path (default: derived from input)
	format   string  // svg, dot, or topo
	scale    float64 // pixels per meter in the top view
	labels   bool    // draw column ids in the top view
	detailed bool    // include positions and kinds in topology labels
}

// renderCommand creates the render command for drawing plans.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		format: formatSVG,
		scale:  render.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render <plan.json>",
		Short: "Render a plan as a top view or topology diagram",
		Long: `Render a plan as a top view or topology diagram.

Formats:
  svg   top view: beams as strokes, columns as filled sections (default)
  dot   graphviz DOT source of the column/beam topology
  topo  topology diagram rendered to SVG with the neato engine`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with new extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot, topo")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "pixels per meter (svg)")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "draw column ids (svg)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include positions and kinds in labels (dot, topo)")

	return cmd
}

// validateFormat checks that the requested format is one of svg, dot, or topo.
func validateFormat(f string) error {
	switch f {
	case formatSVG, formatDOT, formatTopo:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'dot', or 'topo')", f)
	}
}

// runRender loads the plan and renders it in the requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	p, err := loadPlanFile(input)
	if err != nil {
		return err
	}
	stats := p.Stats()
	logger.Debugf("Loaded plan: %d columns, %d beams", stats.Columns, stats.Beams)

	var data []byte
	switch opts.format {
	case formatSVG:
		data = render.RenderSVG(p, svgOptions(opts)...)

	case formatDOT:
		data = []byte(topology.ToDOT(p, topology.Options{Detailed: opts.detailed}))

	case formatTopo:
		dot := topology.ToDOT(p, topology.Options{Detailed: opts.detailed})
		spinner := newSpinnerWithContext(ctx, "Rendering topology")
		spinner.Start()
		data, err = topology.RenderSVG(dot)
		if err != nil {
			spinner.StopWithError("Topology rendering failed")
			return fmt.Errorf("render topology: %w", err)
		}
		spinner.Stop()
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "." + outputExt(opts.format)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	printSuccess("Render complete")
	printFile(outputPath)
	printCounts(stats.Columns, stats.Beams)

	return nil
}

// svgOptions translates command-line flags into top-view render options.
func svgOptions(opts *renderOpts) []render.SVGOption {
	svgOpts := []render.SVGOption{render.WithScale(opts.scale)}
	if opts.labels {
		svgOpts = append(svgOpts, render.WithLabels())
	}
	return svgOpts
}

// outputExt returns the file extension for the given format.
func outputExt(format string) string {
	if format == formatDOT {
		return "dot"
	}
	return "svg"
}
