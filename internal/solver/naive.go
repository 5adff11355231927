package solver

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Naive scores every remaining candidate against every pattern with
// game.Allows. No cutoff, no pattern pruning. It is slow and exists to
// check the faster strategies against.
type Naive struct {
	cfg    Config
	opener *game.Word
	dict   dictView
}

func newNaive(dict *words.Dictionary, cfg Config, opener *game.Word) *Naive {
	return &Naive{cfg: cfg, opener: opener, dict: newDictView(dict)}
}

func (g *Naive) Reset() { g.dict.reset() }

func (g *Naive) Replay(history []game.Guess) {
	g.Reset()
	for _, h := range history {
		g.dict.prune(h)
	}
}

func (g *Naive) Remaining() int { return g.dict.len() }

func (g *Naive) Candidates() []words.Entry { return g.dict.entries() }

func (g *Naive) Guess(history []game.Guess) game.Word {
	if n := len(history); n > 0 {
		g.dict.prune(history[n-1])
	} else if g.opener != nil {
		return *g.opener
	}

	n := g.dict.len()
	if n == 0 {
		panic("solver: no candidates left")
	}
	if n == 1 || g.dict.mass == 0 {
		return g.dict.entry(0).Word
	}
	log.Debug().Int("remaining", n).Msg("scoring all candidates")

	total := float64(g.dict.mass)
	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		guess := g.dict.entry(i)
		var sum float64
		for _, pattern := range game.AllPatterns() {
			var mass uint64
			for k := 0; k < n; k++ {
				cand := g.dict.entry(k)
				if game.Allows(pattern, guess.Word, cand.Word) {
					mass += cand.Count
				}
			}
			if mass == 0 {
				continue
			}
			p := float64(mass) / total
			sum += p * math.Log2(p)
		}
		scores[i] = -sum
		if g.cfg.Weighting != WeightRaw {
			scores[i] *= float64(guess.Count) / total
		}
	}
	return g.dict.entry(argMax(scores)).Word
}
