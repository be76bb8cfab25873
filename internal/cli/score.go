package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score submission and leaderboard",
	}

	cmd.AddCommand(newScoreSubmitCmd())
	cmd.AddCommand(newScoreTopCmd())

	return cmd
}

func newScoreSubmitCmd() *cobra.Command {
	var points int

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a score",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"score": points}
			var result ScoreEntry

			if err := client.Post("/api/scores", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&points, "points", 0, "Score to submit (required)")
	_ = cmd.MarkFlagRequired("points")

	return cmd
}

func newScoreTopCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/scores"
			if limit > 0 {
				path = fmt.Sprintf("%s?limit=%d", path, limit)
			}

			var result Leaderboard
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Number of entries (server default if unset)")

	return cmd
}
