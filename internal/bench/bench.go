// apps/solver/internal/bench/bench.go
//
// Batch evaluation of a solver strategy.
// Responsibilities:
//   - Play one game per answer with a pool of workers, each owning its own guesser.
//   - Collect per-game results in answer order and aggregate them into a Report.
//   - Stop scheduling new games when the context is cancelled.

package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// ErrNegativeAttempts rejects an attempt limit below zero.
var ErrNegativeAttempts = errors.New("bench: negative attempt limit")

// Config controls a benchmark run.
type Config struct {
	Games       int // first N answers; 0 plays all of them
	MaxAttempts int // 0 plays no guesses, so every game fails
	Workers     int // 0 means runtime.NumCPU()
	Solver      solver.Config

	// Progress receives a progress bar when set.
	Progress io.Writer
}

// Result is the outcome of a single game.
type Result struct {
	Answer   game.Word     `json:"answer"`
	Attempts int           `json:"attempts"` // 0 when not solved
	Solved   bool          `json:"solved"`
	Guesses  []game.Guess  `json:"guesses"`
	Elapsed  time.Duration `json:"elapsed"`
}

// Run plays the configured answers against dict and returns the aggregated report.
func Run(ctx context.Context, dict *words.Dictionary, answers []game.Word, cfg Config) (*Report, error) {
	if cfg.Games > 0 && cfg.Games < len(answers) {
		answers = answers[:cfg.Games]
	}
	if cfg.MaxAttempts < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeAttempts, cfg.MaxAttempts)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, max(len(answers), 1))

	// Fail on a bad strategy before starting any goroutine.
	if _, err := solver.New(dict, cfg.Solver); err != nil {
		return nil, err
	}

	bar := newBar(cfg.Progress, len(answers))
	results := make([]Result, len(answers))
	jobs := make(chan int)
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := range answers {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			guesser, err := solver.New(dict, cfg.Solver)
			if err != nil {
				return err
			}
			for i := range jobs {
				results[i] = play(guesser, answers[i], cfg.MaxAttempts)
				_ = bar.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}
	_ = bar.Finish()

	return newReport(results, cfg.MaxAttempts, time.Since(start)), nil
}

func play(guesser game.Guesser, answer game.Word, maxAttempts int) Result {
	start := time.Now()
	g := game.New(answer, maxAttempts)
	attempts, ok := g.Run(guesser)
	r := Result{
		Answer:   answer,
		Attempts: attempts,
		Solved:   ok,
		Guesses:  g.History,
		Elapsed:  time.Since(start),
	}

	if ok {
		log.Info().
			Str("game", g.ID).
			Stringer("answer", answer).
			Int("attempts", attempts).
			Dur("elapsed", r.Elapsed).
			Msg("guessed")
	} else {
		log.Error().
			Str("game", g.ID).
			Stringer("answer", answer).
			Int("max_attempts", maxAttempts).
			Dur("elapsed", r.Elapsed).
			Msg("did not guess")
	}
	return r
}

func newBar(w io.Writer, n int) *progressbar.ProgressBar {
	if w == nil {
		return progressbar.DefaultSilent(int64(n))
	}
	return progressbar.NewOptions64(int64(n),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("playing"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("games"),
		progressbar.OptionShowIts(),
		progressbar.OptionOnCompletion(func() { _, _ = fmt.Fprintln(w) }),
	)
}
