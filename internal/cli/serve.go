package cli

import (
	"github.com/spf13/cobra"

	"github.com/boardkit/boardkit/internal/server"
	"github.com/boardkit/boardkit/pkg/pipeline"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags   storeFlags
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the boardkit HTTP API",
		Long: `Run the boardkit HTTP API.

The server exposes board storage, the layout/render pipeline, and the snap
engine over HTTP. It shuts down gracefully on SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd, flags)
			if err != nil {
				return err
			}

			backend, err := newCache(noCache)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(backend, nil, c.Logger)
			defer runner.Close()

			srv := server.New(server.Config{
				Addr:   addr,
				Store:  st,
				Runner: runner,
				Snap:   c.Config.Snap,
				Logger: c.Logger,
			})
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable pipeline caching")
	flags.register(cmd)

	return cmd
}
