package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

var errNoCandidates = errors.New("no dictionary word matches that feedback")

func newAssistCmd() *cobra.Command {
	var show int

	cmd := &cobra.Command{
		Use:   "assist",
		Short: "Suggest guesses for a game played elsewhere",
		Long: `Reads the feedback for each guess from stdin, one line per guess:

  CIMII         feedback for the suggested word
  crane CIMII   feedback for a different word you played

C is green, M is yellow, I is gray. An empty line or EOF stops.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := loadCorpus(cmd.Context())
			if err != nil {
				return err
			}
			s, err := solver.New(corpus.Dictionary, cfg.Solver())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			in := bufio.NewScanner(cmd.InOrStdin())
			var history []game.Guess
			next := solver.Suggest(s, history)

			for {
				if len(history) >= cfg.MaxAttempts {
					out.PrintMessage("Out of attempts")
					return nil
				}
				out.Print(suggestion(s, next, show))

				fmt.Fprint(cmd.ErrOrStderr(), "> ")
				if !in.Scan() {
					return in.Err()
				}
				line := strings.TrimSpace(in.Text())
				if line == "" {
					return nil
				}

				g, err := parseFeedback(line, next)
				if err != nil {
					return err
				}
				history = append(history, g)
				if g.Pattern.Solved() {
					out.PrintMessage(fmt.Sprintf("Solved in %d", len(history)))
					return nil
				}

				s.Replay(history)
				if s.Remaining() == 0 {
					return errNoCandidates
				}
				next = s.Guess(history)
			}
		},
	}

	cmd.Flags().IntVar(&show, "show", 10, "List up to N remaining candidates")
	return cmd
}

// parseFeedback reads "PATTERN" or "word PATTERN"; a bare pattern applies to suggested.
func parseFeedback(line string, suggested game.Word) (game.Guess, error) {
	fields := strings.Fields(line)
	g := game.Guess{Word: suggested}
	var err error
	switch len(fields) {
	case 1:
		g.Pattern, err = game.ParsePattern(fields[0])
	case 2:
		if g.Word, err = game.ParseWord(fields[0]); err == nil {
			g.Pattern, err = game.ParsePattern(fields[1])
		}
	default:
		err = fmt.Errorf("expected \"PATTERN\" or \"word PATTERN\", got %q", line)
	}
	return g, err
}

func suggestion(s solver.Solver, next game.Word, show int) Suggestion {
	sg := Suggestion{Guess: next, Remaining: s.Remaining()}
	if show > 0 {
		cands := s.Candidates()
		for _, e := range cands[:min(show, len(cands))] {
			sg.Candidates = append(sg.Candidates, e.Word.String())
		}
	}
	return sg
}
