package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framegrid/framegrid/internal/api"
)

// serveOpts holds the command-line flags for the serve command. Flags
// override the FRAMEGRID_* environment variables they correspond to.
type serveOpts struct {
	addr  string // listen address
	store string // store backend: memory, file, redis, mongo
	dir   string // plan directory for the file backend
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the FrameGrid HTTP API",
		Long: `Run the FrameGrid HTTP API.

The server reads its configuration from FRAMEGRID_* environment
variables; flags override individual settings. Plans are kept in the
configured store backend (memory by default) and every engine
operation is exposed under /api/v1/plans.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default $FRAMEGRID_ADDR or :8080)")
	cmd.Flags().StringVar(&opts.store, "store", "", "store backend: memory, file, redis, mongo (default $FRAMEGRID_STORE)")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "plan directory for the file backend (default $FRAMEGRID_STORE_DIR)")

	return cmd
}

// runServe opens the configured store and serves until the context is
// cancelled (Ctrl-C from main).
func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	cfg, err := api.LoadConfig()
	if err != nil {
		return err
	}
	if opts.addr != "" {
		cfg.Addr = opts.addr
	}
	if opts.store != "" {
		cfg.Store = opts.store
	}
	if opts.dir != "" {
		cfg.StoreDir = opts.dir
	}

	st, err := cfg.OpenStore(ctx)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store, err)
	}
	defer st.Close()

	c.Logger.Infof("Using %s store", cfg.Store)

	srv := api.NewServer(st, c.Logger)
	return srv.ListenAndServe(ctx, cfg.Addr)
}
