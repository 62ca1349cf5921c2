package cli

import (
	"context"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/framegrid/framegrid/pkg/errors"
	"github.com/framegrid/framegrid/pkg/plan"
	"github.com/framegrid/framegrid/pkg/plan/support"
)

// linkCommand creates the link command for resting one beam on another.
func (c *CLI) linkCommand() *cobra.Command {
	var (
		output    string
		dependent string
		supporter string
		angle     float64
	)

	cmd := &cobra.Command{
		Use:   "link <plan.json> --dependent BEAM --support BEAM",
		Short: "Rest a beam on another via a support anchor",
		Long: `Rest a beam on another via a support anchor.

A ray is cast from the dependent beam's nearer end square onto the
support beam (tilted off perpendicular by --angle degrees). Where it
lands, a hidden anchor column is created and the support beam is split
so the anchor becomes a real joint. When the ray misses, the plan is
unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLink(cmd.Context(), args[0], dependent, supporter, angle, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().StringVar(&dependent, "dependent", "", "beam id that needs support (required)")
	cmd.Flags().StringVar(&supporter, "support", "", "beam id that carries the load (required)")
	cmd.Flags().Float64Var(&angle, "angle", 0, "ray tilt in degrees off perpendicular")
	_ = cmd.MarkFlagRequired("dependent")
	_ = cmd.MarkFlagRequired("support")

	return cmd
}

func (c *CLI) runLink(ctx context.Context, input, dependent, supporter string, angle float64, output string) error {
	p, err := loadPlanFile(input)
	if err != nil {
		return err
	}
	for _, id := range []string{dependent, supporter} {
		if _, ok := p.Beam(plan.BeamID(id)); !ok {
			return errors.New(errors.ErrCodeBeamNotFound, "beam %q not found in %s", id, input)
		}
	}

	anchor, landed := support.Link(p, plan.BeamID(dependent), plan.BeamID(supporter), angle*math.Pi/180)
	if !landed {
		printWarning("Ray from beam %s misses beam %s - plan unchanged", dependent, supporter)
		return nil
	}

	path, err := savePlanFile(p, input, output)
	if err != nil {
		return err
	}

	loggerFromContext(ctx).Debug("anchor placed", "id", anchor.ID, "x", anchor.Position.X(), "y", anchor.Position.Y())
	printSuccess("Anchor %s placed at (%.2f, %.2f)",
		shortColumnID(string(anchor.ID)), anchor.Position.X(), anchor.Position.Y())
	printFile(path)
	printNewline()
	printNextStep("Segments", fmt.Sprintf("framegrid segments %s --beam %s", path, supporter))

	return nil
}
