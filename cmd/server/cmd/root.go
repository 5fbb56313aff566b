package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kishoreadhith-v/clubs-api/internal/config"
	"github.com/kishoreadhith-v/clubs-api/internal/database"
	"github.com/kishoreadhith-v/clubs-api/internal/store"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "clubs-api",
	Short: "Campus clubs API - forums, posts and event registration",
	Long: `clubs-api serves the campus clubs backend: user accounts, discussion forums
with posts and replies, campus-wide posts and event registration.
Without a subcommand it starts the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if err := cfg.Validate(); err != nil {
			return err
		}
		setupLogger(cfg)
		gin.SetMode(cfg.GinMode)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(backfillCmd)
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if !cfg.IsRelease() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// openStore connects to the configured store and ensures its indexes.
func openStore(ctx context.Context) (store.Store, error) {
	st, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(ctx, st); err != nil {
		st.Close(context.Background())
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return st, nil
}

func closeStore(st store.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := st.Close(ctx); err != nil {
		log.Error().Err(err).Msg("failed to close store")
	}
}
