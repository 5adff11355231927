package words

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// ParseEntries reads "word count" lines. Blank lines and lines starting
// with '#' are skipped; a line with a word but no count gets count 1.
// Words that are not five a–z letters are an error, not silently dropped.
func ParseEntries(r io.Reader) ([]Entry, error) {
	var out []Entry
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		fields := strings.Fields(s)
		w, err := game.ParseWord(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		count := uint64(1)
		if len(fields) > 1 {
			count, err = strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: count %q: %w", line, fields[1], err)
			}
		}
		out = append(out, Entry{Word: w, Count: count})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}
	return out, nil
}

// ParseWords reads one word per line, skipping blanks and '#' comments.
// Only the first field of each line is used, so a "word count" file also works.
func ParseWords(r io.Reader) ([]game.Word, error) {
	entries, err := ParseEntries(r)
	if err != nil {
		return nil, err
	}
	out := make([]game.Word, len(entries))
	for i, e := range entries {
		out[i] = e.Word
	}
	return out, nil
}

// WriteEntries writes entries as "word count" lines.
func WriteEntries(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s %d\n", e.Word, e.Count); err != nil {
			return err
		}
	}
	return bw.Flush()
}
