package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framegrid/framegrid/pkg/plan/span"
)

// enforceCommand creates the enforce command for applying the sub-span rule.
func (c *CLI) enforceCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "enforce <plan.json>",
		Short: "Subdivide over-long beams with automatic support columns",
		Long: `Subdivide over-long beams with automatic support columns.

Every beam whose largest gap between supports exceeds the configured span
limit gets evenly spaced auto columns; stale auto columns no beam needs
anymore are removed. Running enforce on an already satisfied plan changes
nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEnforce(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")

	return cmd
}

func (c *CLI) runEnforce(ctx context.Context, input, output string) error {
	p, err := loadPlanFile(input)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	res := span.Enforce(p)
	prog.done(fmt.Sprintf("Enforced %d beams", p.BeamCount()))

	path, err := savePlanFile(p, input, output)
	if err != nil {
		return err
	}

	if res.Changed() {
		printSuccess("Plan updated: %d inserted, %d removed, %d pruned",
			res.Inserted, res.Removed, res.Pruned)
	} else {
		printSuccess("Plan already satisfies its span limits")
	}
	printFile(path)
	stats := p.Stats()
	printCounts(stats.Columns, stats.Beams)
	printNewline()
	printNextStep("Inspect", "framegrid info "+path)

	return nil
}
