package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

func newDailyCmd() *cobra.Command {
	var (
		date string
		play bool
	)

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Show the daily puzzle answer, or let the solver play it",
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := loadCorpus(cmd.Context())
			if err != nil {
				return err
			}

			day := time.Now()
			if date != "" {
				if day, err = daily.ParseDate(date); err != nil {
					return err
				}
			}
			p, err := daily.For(day, cfg.DailySalt, corpus.Answers)
			if err != nil {
				return err
			}

			res := DailyResult{Puzzle: p}
			if play {
				s, err := solver.New(corpus.Dictionary, cfg.Solver())
				if err != nil {
					return err
				}
				g := playOne(s, corpus.Dictionary, p.Answer, cfg.MaxAttempts)
				res.Game = &g
			}
			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(res)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Puzzle date as YYYY-MM-DD (default: today, UTC)")
	cmd.Flags().BoolVar(&play, "play", false, "Let the solver play the puzzle")
	cmd.Flags().String("daily-salt", "", "Secret mixed into the daily word choice")
	return cmd
}
