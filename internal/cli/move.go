package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framegrid/framegrid/pkg/errors"
	"github.com/framegrid/framegrid/pkg/plan/move"
)

// moveCommand creates the move command for translating columns.
func (c *CLI) moveCommand() *cobra.Command {
	var (
		output  string
		targets string
		dx, dy  float64
	)

	cmd := &cobra.Command{
		Use:   "move <plan.json> --targets id,id --dx N [--dy N]",
		Short: "Move columns and re-support the surrounding grid",
		Long: `Move columns and re-support the surrounding grid.

The targets are moved by the given delta in one step: neighbours swallowed
along the way are absorbed, the grid edge expands when a column leaves the
plan's bounding box, and a span enforcement round re-supports every
stretched beam. The result is exactly what an interactive session ending
at the same delta would produce.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMove(cmd.Context(), args[0], targets, dx, dy, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().StringVar(&targets, "targets", "", "comma-separated column ids to move (required)")
	cmd.Flags().Float64Var(&dx, "dx", 0, "delta along x in meters")
	cmd.Flags().Float64Var(&dy, "dy", 0, "delta along y in meters")
	_ = cmd.MarkFlagRequired("targets")

	return cmd
}

func (c *CLI) runMove(ctx context.Context, input, targets string, dx, dy float64, output string) error {
	ids := parseTargets(targets)
	if len(ids) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no move targets given")
	}

	p, err := loadPlanFile(input)
	if err != nil {
		return err
	}

	before := p.Stats()

	sess := move.Start(p, ids)
	if sess == nil {
		return errors.New(errors.ErrCodeColumnNotFound, "no eligible move targets in %s", input)
	}

	prog := newProgress(loggerFromContext(ctx))
	sess.Apply(dx, dy)
	sess.Finalize()
	prog.done(fmt.Sprintf("Moved %d columns by (%g, %g)", len(ids), dx, dy))

	path, err := savePlanFile(p, input, output)
	if err != nil {
		return err
	}

	after := p.Stats()
	printSuccess("Move complete")
	if diff := before.Columns - after.Columns; diff > 0 {
		printInfo("%d columns absorbed", diff)
	} else if diff < 0 {
		printInfo("%d columns added by re-supporting", -diff)
	}
	printFile(path)
	printCounts(after.Columns, after.Beams)
	printNewline()
	printNextStep("Inspect", "framegrid info "+path)

	return nil
}
