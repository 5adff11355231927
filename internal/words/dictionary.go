// apps/solver/internal/words/dictionary.go
//
// Weighted dictionary used by every guesser.
// Responsibilities:
//   - Hold (word, count) entries sorted by descending count.
//   - Cache the total count so frequencies are derived, never stored.
//   - Answer membership queries through a set.
//
// Notes:
//   - Ties in count keep their input order (stable sort).
//   - A Dictionary is immutable after New and safe to share between goroutines.

package words

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

var (
	ErrEmptyDictionary = errors.New("words: dictionary is empty")
	ErrDuplicateWord   = errors.New("words: duplicate word")
)

// Entry is a dictionary word with its occurrence weight.
type Entry struct {
	Word  game.Word `json:"word"`
	Count uint64    `json:"count"`
}

// Dictionary is an immutable, count-ordered list of entries.
type Dictionary struct {
	entries []Entry
	total   uint64
	index   map[game.Word]int
	set     mapset.Set[game.Word]
}

// New validates entries and builds a Dictionary.
// The input slice is copied; callers may reuse it.
func New(entries []Entry) (*Dictionary, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyDictionary
	}

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int { return cmp.Compare(b.Count, a.Count) })

	d := &Dictionary{
		entries: sorted,
		index:   make(map[game.Word]int, len(sorted)),
		set:     mapset.NewThreadUnsafeSetWithSize[game.Word](len(sorted)),
	}
	for i, e := range sorted {
		if !d.set.Add(e.Word) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWord, e.Word)
		}
		d.index[e.Word] = i
		d.total += e.Count
	}
	return d, nil
}

// MustNew is New for fixed data; it panics on invalid entries.
func MustNew(entries []Entry) *Dictionary {
	d, err := New(entries)
	if err != nil {
		panic(err)
	}
	return d
}

// Len is the number of entries.
func (d *Dictionary) Len() int { return len(d.entries) }

// Entry returns the i-th entry in count order.
func (d *Dictionary) Entry(i int) Entry { return d.entries[i] }

// Entries returns a copy of all entries in count order.
func (d *Dictionary) Entries() []Entry { return slices.Clone(d.entries) }

// Total is the sum of all counts.
func (d *Dictionary) Total() uint64 { return d.total }

// Frequency is count/total of the i-th entry, or 0 when the total is 0.
func (d *Dictionary) Frequency(i int) float64 {
	if d.total == 0 {
		return 0
	}
	return float64(d.entries[i].Count) / float64(d.total)
}

// Contains reports whether w is a dictionary word.
func (d *Dictionary) Contains(w game.Word) bool { return d.set.Contains(w) }

// Index returns the position of w, or -1.
func (d *Dictionary) Index(w game.Word) int {
	if i, ok := d.index[w]; ok {
		return i
	}
	return -1
}

// Words returns the words in count order.
func (d *Dictionary) Words() []game.Word {
	out := make([]game.Word, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Word
	}
	return out
}
