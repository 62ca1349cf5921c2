package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framegrid/framegrid/pkg/plan/grid"
)

// gridCommand creates the grid command for filling a footprint with columns.
func (c *CLI) gridCommand() *cobra.Command {
	var (
		output     string
		polygon    string
		contour    bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "grid <plan.json> --polygon \"x,y x,y ...\"",
		Short: "Fill a footprint polygon with a column grid",
		Long: `Fill a footprint polygon with a column grid.

Grid lines run parallel to the axes, spaced so no interval exceeds the
configured span limits, and columns rise at every line intersection inside
the footprint. Neighbouring columns are joined by beams and a span
enforcement round runs afterwards.

When the plan file does not exist yet, the grid starts from a blank plan
using --config (or built-in defaults). Vertices are comma pairs separated
by spaces: --polygon "0,0 20,0 20,12 0,12".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGrid(cmd.Context(), args[0], polygon, contour, configPath, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().StringVar(&polygon, "polygon", "", "footprint vertices as \"x,y x,y ...\" (required)")
	cmd.Flags().BoolVar(&contour, "contour", false, "add grid lines through every footprint vertex")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config for new plans")
	_ = cmd.MarkFlagRequired("polygon")

	return cmd
}

func (c *CLI) runGrid(ctx context.Context, input, polygon string, contour bool, configPath, output string) error {
	vertices, err := parsePolygon(polygon)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	p, fresh, err := loadOrNewPlan(input, cfg)
	if err != nil {
		return err
	}
	if fresh {
		printInfo("Starting blank plan")
	}

	prog := newProgress(loggerFromContext(ctx))
	res, err := grid.Fill(p, vertices, grid.Options{Contour: contour})
	if err != nil {
		return fmt.Errorf("grid fill: %w", err)
	}
	prog.done(fmt.Sprintf("Filled footprint with %d vertices", len(vertices)))

	path, err := savePlanFile(p, input, output)
	if err != nil {
		return err
	}

	printSuccess("Grid complete: %d columns created, %d promoted, %d beams",
		res.ColumnsCreated, res.ColumnsPromoted, res.BeamsCreated)
	printFile(path)
	stats := p.Stats()
	printCounts(stats.Columns, stats.Beams)
	printNewline()
	printNextStep("Render", "framegrid render "+path)

	return nil
}
