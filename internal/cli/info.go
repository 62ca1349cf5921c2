package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// infoCommand creates the info command for plan statistics.
func (c *CLI) infoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <plan.json>",
		Short: "Show plan statistics",
		Long: `Show plan statistics.

Counts columns by kind and activity, lists beam totals, and reports the
longest gap between consecutive supports along with any spans that exceed
their configured limit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInfo(args[0])
		},
	}

	return cmd
}

func (c *CLI) runInfo(input string) error {
	p, err := loadPlanFile(input)
	if err != nil {
		return err
	}

	stats := p.Stats()
	cfg := p.Config()

	fmt.Println(StyleTitle.Render("Plan " + input))
	printNewline()
	printKeyValue("Columns", fmt.Sprintf("%d (%d active, %d suspended)",
		stats.Columns, stats.Active, stats.Suspended))
	printKeyValue("By kind", fmt.Sprintf("%d user · %d auto · %d transient · %d anchor",
		stats.User, stats.Auto, stats.Transient, stats.Anchor))
	printKeyValue("Beams", fmt.Sprintf("%d", stats.Beams))
	printKeyValue("Span limits", fmt.Sprintf("%.1f m (x) · %.1f m (y)", cfg.MaxSpanX, cfg.MaxSpanY))
	printKeyValue("Longest gap", fmt.Sprintf("%.2f m", stats.LongestSubSpan))

	printNewline()
	if stats.SpanViolations > 0 {
		printWarning("%d spans exceed their limit", stats.SpanViolations)
		printNextStep("Fix", "framegrid enforce "+input)
	} else {
		printSuccess("All spans within limits")
	}

	return nil
}
