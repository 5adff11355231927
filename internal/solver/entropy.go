package solver

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// minCandidates is the floor of the non-exhaustive candidate cutoff.
const minCandidates = 20

// Entropy picks the candidate whose feedback is expected to reveal the most.
//
// Each round it prunes the dictionary by the last guess, then scores the
// leading candidates by the entropy of the pattern distribution they would
// produce over the remaining mass. Unless Exhaustive is set, only the first
// max(n/3, 20) candidates are scored and patterns that a scored candidate
// could not produce are skipped for every later candidate of the game.
type Entropy struct {
	cfg      Config
	opener   *game.Word
	dict     dictView
	patterns patternView
	memo     *memo

	mass [game.PatternCount]uint64
}

func newEntropy(dict *words.Dictionary, cfg Config, opener *game.Word, m *memo) *Entropy {
	return &Entropy{
		cfg:      cfg,
		opener:   opener,
		dict:     newDictView(dict),
		patterns: newPatternView(),
		memo:     m,
	}
}

func (g *Entropy) Reset() {
	g.dict.reset()
	g.patterns.reset()
}

func (g *Entropy) Replay(history []game.Guess) {
	g.Reset()
	for _, h := range history {
		g.dict.prune(h)
	}
}

func (g *Entropy) Remaining() int { return g.dict.len() }

func (g *Entropy) Candidates() []words.Entry { return g.dict.entries() }

func (g *Entropy) Guess(history []game.Guess) game.Word {
	if n := len(history); n > 0 {
		g.dict.prune(history[n-1])
	} else {
		g.patterns.reset()
		if g.opener != nil {
			return *g.opener
		}
	}

	n := g.dict.len()
	if n == 0 {
		panic("solver: no candidates left")
	}
	if n == 1 || g.dict.mass == 0 {
		return g.dict.entry(0).Word
	}

	limit := n
	if !g.cfg.Exhaustive {
		limit = min(n, max(n/3, minCandidates))
	}
	log.Debug().
		Int("remaining", n).
		Int("considering", limit).
		Int("patterns", g.patterns.len()).
		Msg("scoring candidates")

	scores := make([]float64, limit)
	for i := 0; i < limit; i++ {
		scores[i] = g.score(i)
	}
	best := argMax(scores)

	log.Trace().
		Stringer("word", g.dict.entry(best).Word).
		Float64("score", scores[best]).
		Msg("best candidate")
	return g.dict.entry(best).Word
}

// score rates the i-th remaining entry as a guess.
func (g *Entropy) score(i int) float64 {
	clear(g.mass[:])
	guessIdx := g.dict.idx[i]
	guess := g.dict.base.Entry(guessIdx).Word

	for _, j := range g.dict.idx {
		e := g.dict.base.Entry(j)
		var code uint8
		if g.memo != nil {
			code = g.memo.pattern(guessIdx, j)
		} else {
			code = game.Compute(guess, e.Word).Code()
		}
		g.mass[code] += e.Count
	}

	total := float64(g.dict.mass)
	var sum float64
	for code := 0; code < game.PatternCount; code++ {
		c := uint8(code)
		if !g.patterns.has(c) {
			continue
		}
		if g.mass[code] == 0 {
			if !g.cfg.Exhaustive {
				g.patterns.remove(c)
			}
			continue
		}
		p := float64(g.mass[code]) / total
		sum += p * math.Log2(p)
	}
	entropy := -sum

	if g.cfg.Weighting == WeightRaw {
		return entropy
	}
	return float64(g.dict.entry(i).Count) / total * entropy
}
