// apps/solver/internal/words/group.go
//
// Tools for turning a raw word-frequency list into a solver dictionary.
// Responsibilities:
//   - ParseRaw: read one "word count" line per entry.
//   - Group: collapse blank-line separated groups of "word count" lines into one line each.
//   - MergeStems: credit inflections to the five-letter word that shares their stem.
//   - Filter: keep five-letter a–z words and sort them by count.
//
// Raw lines may hold words of any length; only the output of Filter is a valid dictionary.

package words

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/kljensen/snowball/english"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// RawEntry is a line of an unfiltered frequency list.
type RawEntry struct {
	Word  string
	Count uint64
}

// Group reads "word count" lines where blank lines separate groups.
// Each group becomes one RawEntry carrying the last word of the group
// and the sum of the group's counts.
func Group(r io.Reader) ([]RawEntry, error) {
	var (
		out   []RawEntry
		cur   RawEntry
		open  bool
		line  int
		flush = func() {
			if open {
				out = append(out, cur)
			}
			cur, open = RawEntry{}, false
		}
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			flush()
			continue
		}
		word, count, ok := strings.Cut(s, " ")
		if !ok {
			return nil, fmt.Errorf("line %d: expected \"word count\", got %q", line, s)
		}
		n, err := strconv.ParseUint(strings.TrimSpace(count), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: count %q: %w", line, count, err)
		}
		cur.Word = strings.ToLower(word)
		cur.Count += n
		open = true
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read groups: %w", err)
	}
	flush()
	return out, nil
}

// ParseRaw reads ungrouped "word count" lines of any word length.
// Blank lines and '#' comments are skipped.
func ParseRaw(r io.Reader) ([]RawEntry, error) {
	var out []RawEntry
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected \"word count\", got %q", line, sc.Text())
		}
		n, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: count %q: %w", line, fields[1], err)
		}
		out = append(out, RawEntry{Word: strings.ToLower(fields[0]), Count: n})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read raw list: %w", err)
	}
	return out, nil
}

// MergeStems folds counts of related forms onto five-letter words.
//
// lexicon maps stems to base words (five-letter words win a stem). When lexicon
// is empty the five-letter words of raw are used. A raw word that is itself five
// letters keeps its own count; a longer or shorter form is credited to the
// five-letter lexicon word sharing its stem. Words with no matching stem are dropped.
func MergeStems(raw []RawEntry, lexicon []string) []RawEntry {
	if len(lexicon) == 0 {
		for _, e := range raw {
			if len(e.Word) == game.WordLength {
				lexicon = append(lexicon, e.Word)
			}
		}
	}

	stems := make(map[string]string, len(lexicon))
	for _, w := range lexicon {
		if !lowerAlpha(w) {
			continue
		}
		stem := english.Stem(w, true)
		if prev, ok := stems[stem]; !ok || len(prev) != game.WordLength {
			stems[stem] = w
		}
	}

	counts := make(map[string]uint64)
	var order []string
	credit := func(w string, n uint64) {
		if _, ok := counts[w]; !ok {
			order = append(order, w)
		}
		counts[w] += n
	}
	for _, e := range raw {
		if !lowerAlpha(e.Word) {
			continue
		}
		base, ok := stems[english.Stem(e.Word, true)]
		switch {
		case !ok:
		case len(e.Word) == game.WordLength:
			credit(e.Word, e.Count)
		case len(base) == game.WordLength:
			credit(base, e.Count)
		}
	}

	out := make([]RawEntry, len(order))
	for i, w := range order {
		out[i] = RawEntry{Word: w, Count: counts[w]}
	}
	return out
}

// Filter keeps valid five-letter words, sums duplicates and sorts by
// descending count. The result is ready for New.
func Filter(raw []RawEntry) []Entry {
	idx := make(map[game.Word]int)
	var out []Entry
	for _, e := range raw {
		w, err := game.ParseWord(e.Word)
		if err != nil {
			continue
		}
		if i, ok := idx[w]; ok {
			out[i].Count += e.Count
			continue
		}
		idx[w] = len(out)
		out = append(out, Entry{Word: w, Count: e.Count})
	}
	slices.SortStableFunc(out, func(a, b Entry) int { return cmp.Compare(b.Count, a.Count) })
	return out
}

func lowerAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
