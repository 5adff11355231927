package cli

import (
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <guess> <answer>",
		Short: "Show the feedback pattern a guess gets against an answer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := parseWords(args)
			if err != nil {
				return err
			}
			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(ScoreResult{
				Guess:   ws[0],
				Answer:  ws[1],
				Pattern: game.Compute(ws[0], ws[1]),
			})
			return nil
		},
	}
}
