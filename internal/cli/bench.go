package cli

import (
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/bench"
)

func newBenchCmd() *cobra.Command {
	var (
		games    int
		progress bool
		worst    int
		results  bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Play every answer and report the score distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := loadCorpus(cmd.Context())
			if err != nil {
				return err
			}

			bc := bench.Config{
				Games:       games,
				MaxAttempts: cfg.MaxAttempts,
				Workers:     cfg.Workers,
				Solver:      cfg.Solver(),
			}
			if progress {
				bc.Progress = cmd.ErrOrStderr()
			}

			report, err := bench.Run(cmd.Context(), corpus.Dictionary, corpus.Answers, bc)
			if err != nil {
				return err
			}

			switch {
			case worst > 0:
				report.Results = report.Worst(worst)
			case !results:
				report.Results = nil
			}
			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(report)
			return nil
		},
	}

	cmd.Flags().IntVarP(&games, "games", "n", 0, "Play only the first N answers (0 = all)")
	cmd.Flags().IntP("workers", "j", 0, "Concurrent games (0 = number of CPUs)")
	cmd.Flags().BoolVar(&progress, "progress", false, "Show a progress bar on stderr")
	cmd.Flags().IntVar(&worst, "worst", 0, "List the N hardest answers")
	cmd.Flags().BoolVar(&results, "results", false, "List every answer with its score")

	return cmd
}
