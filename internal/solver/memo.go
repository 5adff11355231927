package solver

import (
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// unset marks a memo slot not computed yet; valid codes stop at PatternCount-1.
const unset = 0xff

// memo caches Compute results by baseline (guess, candidate) index.
// Rows are allocated on first use, so only guesses that were actually
// scored cost memory. It lives as long as its guesser, across Reset.
type memo struct {
	base *words.Dictionary
	rows [][]uint8
}

func newMemo(base *words.Dictionary) *memo {
	return &memo{base: base, rows: make([][]uint8, base.Len())}
}

func (m *memo) pattern(guess, candidate int) uint8 {
	row := m.rows[guess]
	if row == nil {
		row = make([]uint8, m.base.Len())
		for k := range row {
			row[k] = unset
		}
		m.rows[guess] = row
	}
	if row[candidate] == unset {
		row[candidate] = game.Compute(m.base.Entry(guess).Word, m.base.Entry(candidate).Word).Code()
	}
	return row[candidate]
}
