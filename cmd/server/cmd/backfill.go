package cmd

import (
	"fmt"

	"github.com/kishoreadhith-v/clubs-api/internal/server"
	"github.com/spf13/cobra"
)

var backfillCmd = &cobra.Command{
	Use:   "backfill-participants",
	Short: "Add an empty participant list to events missing one",
	Long: `Scans the events collection and sets participants to an empty list wherever
the field is missing or null. Safe to run repeatedly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore(st)

		updated, err := server.NewServices(cfg, st).Events.BackfillParticipants(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Backfilled participants on %d event(s)\n", updated)
		return nil
	},
}
