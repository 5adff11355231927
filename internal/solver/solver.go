// apps/solver/internal/solver/solver.go
//
// Guesser construction and configuration.
// Strategies:
//   - entropy: expected-information scoring with the candidate cutoff and pattern pruning
//     (both disabled by Exhaustive).
//   - naive:   every pattern against every candidate through game.Allows; the reference oracle.
//   - cached:  entropy with a per-instance memo of computed patterns.

package solver

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

type Strategy string

const (
	StrategyEntropy Strategy = "entropy"
	StrategyNaive   Strategy = "naive"
	StrategyCached  Strategy = "cached"
)

// Strategies lists the accepted strategy names.
var Strategies = []Strategy{StrategyEntropy, StrategyNaive, StrategyCached}

// Weighting decides how a candidate's entropy becomes its score.
type Weighting string

const (
	// WeightFrequency multiplies entropy by the candidate's share of the remaining mass,
	// favouring words that might be the answer outright.
	WeightFrequency Weighting = "frequency"
	// WeightRaw scores by entropy alone.
	WeightRaw Weighting = "raw"
)

// DefaultOpener is played on an empty history.
const DefaultOpener = "tares"

var (
	ErrUnknownStrategy  = errors.New("solver: unknown strategy")
	ErrUnknownWeighting = errors.New("solver: unknown weighting")
	ErrOpenerNotInDict  = errors.New("solver: opener not in dictionary")
)

// Config selects and tunes a guesser.
type Config struct {
	Strategy   Strategy  `mapstructure:"strategy"`
	Weighting  Weighting `mapstructure:"weighting"`
	Exhaustive bool      `mapstructure:"exhaustive"`
	// Opener is returned for an empty history. Empty means score the first guess too.
	Opener string `mapstructure:"opener"`
}

// DefaultConfig is the entropy strategy with frequency weighting and the "tares" opener.
func DefaultConfig() Config {
	return Config{
		Strategy:  StrategyEntropy,
		Weighting: WeightFrequency,
		Opener:    DefaultOpener,
	}
}

// Solver is a game.Guesser that can also be restored from a complete history
// and report what is left to choose from.
type Solver interface {
	game.Guesser
	// Replay resets the solver and prunes by every guess in history.
	Replay(history []game.Guess)
	// Remaining is the number of candidates still consistent with what was seen.
	Remaining() int
	// Candidates returns the remaining entries in count order.
	Candidates() []words.Entry
}

// New builds the guesser described by cfg over dict.
func New(dict *words.Dictionary, cfg Config) (Solver, error) {
	if dict == nil || dict.Len() == 0 {
		return nil, words.ErrEmptyDictionary
	}
	if cfg.Weighting == "" {
		cfg.Weighting = WeightFrequency
	}
	if cfg.Weighting != WeightFrequency && cfg.Weighting != WeightRaw {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWeighting, cfg.Weighting)
	}

	var opener *game.Word
	if cfg.Opener != "" {
		w, err := game.ParseWord(cfg.Opener)
		if err != nil {
			return nil, fmt.Errorf("opener: %w", err)
		}
		if !dict.Contains(w) {
			return nil, fmt.Errorf("%w: %s", ErrOpenerNotInDict, w)
		}
		opener = &w
	}

	switch cfg.Strategy {
	case StrategyEntropy, "":
		return newEntropy(dict, cfg, opener, nil), nil
	case StrategyCached:
		return newEntropy(dict, cfg, opener, newMemo(dict)), nil
	case StrategyNaive:
		return newNaive(dict, cfg, opener), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.Strategy)
	}
}

// MustNew is New for configurations known to be valid.
func MustNew(dict *words.Dictionary, cfg Config) Solver {
	s, err := New(dict, cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// Suggest returns the next guess for history using a fresh replay of s.
func Suggest(s Solver, history []game.Guess) game.Word {
	s.Replay(history)
	return s.Guess(history)
}
