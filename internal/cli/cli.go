// Package cli implements the framegrid command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/framegrid/framegrid/pkg/buildinfo"
	"github.com/framegrid/framegrid/pkg/config"
	"github.com/framegrid/framegrid/pkg/plan"
	"github.com/framegrid/framegrid/pkg/plandoc"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "framegrid"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "framegrid",
		Short:        "FrameGrid computes structural column grids for building plans",
		Long:         `FrameGrid is a CLI tool for structural plan topology: it subdivides over-long beams, fills footprints with column grids, moves columns with live re-support, and renders the result.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		// main wraps PersistentPreRunE to set the log level, so the
		// logger attach must use the E variant or cobra drops it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.enforceCommand())
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.linkCommand())
	root.AddCommand(c.segmentsCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.plansCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Plan File Helpers
// =============================================================================

// loadPlanFile imports a plan document from disk.
func loadPlanFile(path string) (*plan.Plan, error) {
	p, err := plandoc.Import(path)
	if err != nil {
		return nil, fmt.Errorf("load plan %s: %w", path, err)
	}
	return p, nil
}

// loadOrNewPlan imports the plan if path exists, or starts a blank plan with
// the given config. Commands that build geometry from nothing (grid) use
// this so a missing file is a fresh start, not an error.
func loadOrNewPlan(path string, cfg config.Config) (*plan.Plan, bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return plan.New(cfg), true, nil
	}
	p, err := loadPlanFile(path)
	return p, false, err
}

// savePlanFile exports the plan. An empty output path overwrites the input.
func savePlanFile(p *plan.Plan, input, output string) (string, error) {
	path := output
	if path == "" {
		path = input
	}
	if err := plandoc.Export(p, path); err != nil {
		return "", fmt.Errorf("write plan %s: %w", path, err)
	}
	return path, nil
}

// loadConfig reads the TOML config file, or returns defaults when path is
// empty.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
