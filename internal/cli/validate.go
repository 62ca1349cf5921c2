package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCommand creates the validate command for integrity checking.
func (c *CLI) validateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <plan.json>",
		Short: "Check a plan document for integrity breaks",
		Long: `Check a plan document for integrity breaks.

Validation covers referential integrity (beams pointing at existing
columns), suspension bookkeeping (suspended columns attributed to live
clones and vice versa), and duplicate active positions. The command exits
non-zero when the document fails, so it can gate scripts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0])
		},
	}

	return cmd
}

func (c *CLI) runValidate(input string) error {
	p, err := loadPlanFile(input)
	if err != nil {
		printError("Plan %s is invalid", input)
		return err
	}

	// Import already validates; run again explicitly so a healthy exit
	// really means a full pass over the live plan.
	if err := p.Validate(); err != nil {
		printError("Plan %s is invalid", input)
		return fmt.Errorf("validate %s: %w", input, err)
	}

	stats := p.Stats()
	printSuccess("Plan %s is valid", input)
	printCounts(stats.Columns, stats.Beams)

	return nil
}
