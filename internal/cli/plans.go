package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/framegrid/framegrid/internal/api"
	"github.com/framegrid/framegrid/pkg/store"
)

// plansCommand creates the stored-plan management command. It operates on
// the same store backend the serve command uses, so plans created through
// the API can be listed and pruned from the shell.
func (c *CLI) plansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage stored plans",
	}

	cmd.AddCommand(c.plansListCommand())
	cmd.AddCommand(c.plansPathCommand())
	cmd.AddCommand(c.plansDeleteCommand())

	return cmd
}

// plansListCommand creates the "plans list" subcommand.
func (c *CLI) plansListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List plans in the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openConfiguredStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			ids, err := st.List(ctx)
			if err != nil {
				return fmt.Errorf("list plans: %w", err)
			}
			if len(ids) == 0 {
				printInfo("No stored plans")
				return nil
			}

			for _, id := range ids {
				doc, err := st.Get(ctx, id)
				if err != nil {
					printWarning("%s (unreadable)", id)
					continue
				}
				fmt.Println(StyleValue.Render(id) + " " +
					StyleDim.Render(fmt.Sprintf("%d columns · %d beams", len(doc.Columns), len(doc.Beams))))
			}
			printNewline()
			printInfo("%d plans", len(ids))
			return nil
		},
	}
}

// plansPathCommand creates the "plans path" subcommand.
func (c *CLI) plansPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the file store plan directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir := os.Getenv("FRAMEGRID_STORE_DIR"); dir != "" {
				fmt.Println(dir)
				return nil
			}
			dir, err := store.DefaultDir()
			if err != nil {
				return fmt.Errorf("get plan dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}

// plansDeleteCommand creates the "plans delete" subcommand.
func (c *CLI) plansDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			st, err := openConfiguredStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if _, err := st.Get(ctx, id); err != nil {
				return err
			}
			if err := st.Delete(ctx, id); err != nil {
				return err
			}
			printSuccess("Deleted plan %s", id)
			return nil
		},
	}
}

// openConfiguredStore opens the store backend named by the FRAMEGRID_*
// environment. One-shot commands get nothing from an empty memory store,
// so the backend defaults to file unless the environment names one.
func openConfiguredStore(ctx context.Context) (store.Store, error) {
	cfg, err := api.LoadConfig()
	if err != nil {
		return nil, err
	}
	if os.Getenv("FRAMEGRID_STORE") == "" {
		cfg.Store = "file"
	}
	return cfg.OpenStore(ctx)
}
