// ABOUTME: Serve command running the HTTP API and web UI.
// ABOUTME: Shuts down gracefully on SIGINT or SIGTERM.

package main

import (
	"errors"

	"github.com/harper/notebox/internal/api"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long:  `Serve the JSON API, web UI, health check and metrics over HTTP.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serverURL != "" {
			return errors.New("serve needs a local database; drop --server")
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		srv := api.NewServer(store,
			api.WithLogger(logger),
			api.WithShutdownTimeout(cfg.ShutdownTimeout),
		)
		return srv.ListenAndServe(cmd.Context(), cfg.Addr())
	},
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "listen port (default $PORT or 3000)")
	rootCmd.AddCommand(serveCmd)
}
