package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/kishoreadhith-v/clubs-api/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeStore(st)

		router := server.NewRouter(cfg, server.NewServices(cfg, st))
		return server.Run(ctx, cfg, router)
	},
}
