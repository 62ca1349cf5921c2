package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/framegrid/framegrid/pkg/errors"
	"github.com/framegrid/framegrid/pkg/plan"
	"github.com/framegrid/framegrid/pkg/plan/segment"
)

// segmentsCommand creates the segments command for splitting a beam at its
// supports.
func (c *CLI) segmentsCommand() *cobra.Command {
	var beamID string

	cmd := &cobra.Command{
		Use:   "segments <plan.json> --beam BEAM",
		Short: "List a beam's sub-segments between consecutive supports",
		Long: `List a beam's sub-segments between consecutive supports.

Each segment runs between two consecutive columns on the beam's axis and
carries a height of one tenth of its length. The plan is not modified.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSegments(args[0], beamID)
		},
	}

	cmd.Flags().StringVar(&beamID, "beam", "", "beam id to split (required)")
	_ = cmd.MarkFlagRequired("beam")

	return cmd
}

func (c *CLI) runSegments(input, beamID string) error {
	p, err := loadPlanFile(input)
	if err != nil {
		return err
	}
	b, ok := p.Beam(plan.BeamID(beamID))
	if !ok {
		return errors.New(errors.ErrCodeBeamNotFound, "beam %q not found in %s", beamID, input)
	}

	segs := segment.Split(p, b)

	rows := make([][]string, 0, len(segs))
	for i, s := range segs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			shortColumnID(string(s.StartID)),
			shortColumnID(string(s.EndID)),
			fmt.Sprintf("%.2f m", s.Length),
			fmt.Sprintf("%.2f m", s.Height),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "From", "To", "Length", "Height").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Println(StyleTitle.Render(fmt.Sprintf("Beam %s", beamID)))
	fmt.Println(t.Render())
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf("%d segments · %.2f m total", len(segs), b.Span())))

	return nil
}
