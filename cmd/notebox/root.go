// ABOUTME: Root command and shared setup for every notebox subcommand.
// ABOUTME: Loads config, builds the logger and picks a local or remote note store.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/harper/notebox/internal/client"
	"github.com/harper/notebox/internal/config"
	"github.com/harper/notebox/internal/db"
	"github.com/harper/notebox/internal/logging"
	"github.com/harper/notebox/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	logger    zerolog.Logger
	store     db.NoteStore
	localDB   *db.Store
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:           "notebox",
	Short:         "A small notes service with a CLI, web UI and MCP server",
	Long:          `notebox stores titled text notes in SQLite and serves them over a JSON API.`,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("db") {
			cfg.DBPath, _ = cmd.Flags().GetString("db")
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
		}

		logger, err = logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}

		return openStore()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if localDB != nil {
			return localDB.Close()
		}
		return nil
	},
}

// openStore targets the HTTP API when --server is set, otherwise the local database.
func openStore() error {
	if serverURL != "" {
		logger.Debug().Str("server", serverURL).Msg("using remote note store")
		store = client.New(serverURL)
		return nil
	}

	var err error
	localDB, err = db.OpenStore(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug().Str("path", cfg.DBPath).Msg("opened database")
	store = localDB
	return nil
}

// Execute runs the root command with ctx as the command context.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "database path (default $XDG_DATA_HOME/notebox/notebox.db)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "use a notebox server at this URL instead of the local database")
	rootCmd.PersistentFlags().String("env-file", ".env", "environment file to load")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
}
