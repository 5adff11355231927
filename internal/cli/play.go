package cli

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play [answer...]",
		Short: "Let the solver play one game per answer",
		Long:  "Plays the given answers, or one random answer from the answer list when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := loadCorpus(cmd.Context())
			if err != nil {
				return err
			}

			answers, err := parseWords(args)
			if err != nil {
				return err
			}
			if len(answers) == 0 {
				if len(corpus.Answers) == 0 {
					return words.ErrEmptyDictionary
				}
				answers = []game.Word{corpus.Answers[rand.Intn(len(corpus.Answers))]}
			}

			s, err := solver.New(corpus.Dictionary, cfg.Solver())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			for _, answer := range answers {
				out.Print(playOne(s, corpus.Dictionary, answer, cfg.MaxAttempts))
			}
			return nil
		},
	}
}

func playOne(s solver.Solver, dict *words.Dictionary, answer game.Word, maxAttempts int) GameResult {
	g := game.New(answer, maxAttempts)
	g.Legal = dict.Contains
	attempts, ok := g.Run(s)
	return GameResult{
		ID:       g.ID,
		Answer:   answer,
		Solved:   ok,
		Attempts: attempts,
		Guesses:  g.History,
	}
}
