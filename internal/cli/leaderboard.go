package cli

import (
	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show players ranked by total score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Leaderboard

			if err := client.Get("/api/v1/leaderboard", &result); err != nil {
				return err
			}

			if top > 0 && len(result.Entries) > top {
				result.Entries = result.Entries[:top]
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 0, "Only show the first N players (0 for all)")

	return cmd
}
