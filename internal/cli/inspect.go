package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// inspectCommand creates the inspect command for interactive beam browsing.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <plan.json>",
		Short: "Browse a plan's beams interactively",
		Long: `Browse a plan's beams interactively.

Each row shows the beam's axis, span, support count and worst gap
between supports. Press enter on a beam to see its segment breakdown.
The plan is never modified.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runInspect(ctx context.Context, input string) error {
	p, err := loadPlanFile(input)
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debugf("Loaded plan: %d beams", p.BeamCount())

	m := NewBeamListModel(p)
	prog := tea.NewProgram(m)
	if _, err := prog.Run(); err != nil {
		return err
	}
	return nil
}
