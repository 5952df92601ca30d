package cli

import (
	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the player leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := client.Leaderboard(cmd.Context(), cfg.Token)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(entries)
			return nil
		},
	}
}
