// apps/solver/internal/solver/view.go
//
// Copy-on-write working state shared by every guesser variant.
// Responsibilities:
//   - dictView: the entries still consistent with the history, as baseline indices.
//   - patternView: the subset of the 243 pattern codes still worth scoring.
//
// Both views start out borrowing shared read-only data and only allocate
// their own copy on the first mutation. Reset drops the copy.

package solver

import (
	"sync"

	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

type dictView struct {
	base  *words.Dictionary
	all   []int // shared identity permutation of base, never mutated
	idx   []int
	owned bool
	mass  uint64
}

func newDictView(base *words.Dictionary) dictView {
	all := make([]int, base.Len())
	for i := range all {
		all[i] = i
	}
	v := dictView{base: base, all: all}
	v.reset()
	return v
}

func (v *dictView) reset() {
	v.idx = v.all
	v.owned = false
	v.mass = v.base.Total()
}

func (v *dictView) len() int { return len(v.idx) }

func (v *dictView) entry(i int) words.Entry { return v.base.Entry(v.idx[i]) }

// prune keeps the entries guess still allows. Order is preserved, so the
// view stays sorted by descending count.
func (v *dictView) prune(guess game.Guess) {
	var out []int
	if v.owned {
		out = v.idx[:0]
	} else {
		out = make([]int, 0, len(v.idx))
	}
	var mass uint64
	for _, i := range v.idx {
		e := v.base.Entry(i)
		if guess.Allows(e.Word) {
			out = append(out, i)
			mass += e.Count
		}
	}
	v.idx, v.owned, v.mass = out, true, mass
}

func (v *dictView) entries() []words.Entry {
	out := make([]words.Entry, len(v.idx))
	for k, i := range v.idx {
		out[k] = v.base.Entry(i)
	}
	return out
}

var fullPatterns = sync.OnceValue(func() *bitset.BitSet {
	return bitset.New(game.PatternCount).Complement()
})

type patternView struct {
	set   *bitset.BitSet
	owned bool
}

func newPatternView() patternView {
	return patternView{set: fullPatterns()}
}

func (v *patternView) reset() {
	v.set = fullPatterns()
	v.owned = false
}

func (v *patternView) has(code uint8) bool { return v.set.Test(uint(code)) }

func (v *patternView) remove(code uint8) {
	if !v.owned {
		v.set = v.set.Clone()
		v.owned = true
	}
	v.set.Clear(uint(code))
}

func (v *patternView) len() int { return int(v.set.Count()) }
