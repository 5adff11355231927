package words

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

func entry(w string, n uint64) Entry { return Entry{Word: game.MustWord(w), Count: n} }

func TestNewSortsByCountStably(t *testing.T) {
	d, err := New([]Entry{
		entry("aaaaa", 1),
		entry("bbbbb", 5),
		entry("ccccc", 1),
		entry("ddddd", 5),
	})
	require.NoError(t, err)

	got := make([]string, d.Len())
	for i := range got {
		got[i] = d.Entry(i).Word.String()
	}
	assert.Equal(t, []string{"bbbbb", "ddddd", "aaaaa", "ccccc"}, got)
	assert.Equal(t, uint64(12), d.Total())
	assert.InDelta(t, 5.0/12.0, d.Frequency(0), 1e-12)
	assert.Equal(t, 2, d.Index(game.MustWord("aaaaa")))
	assert.Equal(t, -1, d.Index(game.MustWord("zzzzz")))
}

func TestNewRejectsEmptyAndDuplicates(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyDictionary)

	_, err = New([]Entry{entry("tares", 1), entry("tares", 2)})
	assert.ErrorIs(t, err, ErrDuplicateWord)
}

func TestFrequencyWithZeroTotal(t *testing.T) {
	d := MustNew([]Entry{entry("tares", 0)})
	assert.Zero(t, d.Frequency(0))
}

func TestEntriesReturnsCopy(t *testing.T) {
	d := MustNew([]Entry{entry("tares", 3)})
	es := d.Entries()
	es[0].Count = 99
	assert.Equal(t, uint64(3), d.Entry(0).Count)
}

func TestParseEntries(t *testing.T) {
	in := "# comment\nTares 10\n\nroate\nslate 7\n"
	es, err := ParseEntries(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Entry{entry("tares", 10), entry("roate", 1), entry("slate", 7)}, es)

	_, err = ParseEntries(strings.NewReader("tare 3\n"))
	assert.ErrorIs(t, err, game.ErrInvalidWord)
	_, err = ParseEntries(strings.NewReader("tares many\n"))
	assert.Error(t, err)
}

func TestWriteEntriesRoundTrip(t *testing.T) {
	in := []Entry{entry("tares", 10), entry("slate", 7)}
	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, in))
	assert.Equal(t, "tares 10\nslate 7\n", buf.String())
}

func TestGroupKeepsLastWordAndSums(t *testing.T) {
	in := "run 5\nruns 3\nrunning 2\n\nslate 4\n\n\ncrane 1\ncranes 6\n"
	got, err := Group(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []RawEntry{
		{Word: "running", Count: 10},
		{Word: "slate", Count: 4},
		{Word: "cranes", Count: 7},
	}, got)

	_, err = Group(strings.NewReader("lonely\n"))
	assert.Error(t, err)
}

func TestMergeStemsCreditsFiveLetterBase(t *testing.T) {
	raw := []RawEntry{
		{Word: "crane", Count: 10},
		{Word: "cranes", Count: 4},
		{Word: "Nope!", Count: 100},
		{Word: "zzzzzz", Count: 1},
	}
	got := MergeStems(raw, nil)
	assert.Equal(t, []RawEntry{{Word: "crane", Count: 14}}, got)
}

func TestFilterKeepsFiveLetterWordsSorted(t *testing.T) {
	got := Filter([]RawEntry{
		{Word: "slate", Count: 2},
		{Word: "running", Count: 50},
		{Word: "Crane", Count: 5},
		{Word: "slate", Count: 4},
	})
	assert.Equal(t, []Entry{entry("slate", 6), entry("crane", 5)}, got)
}

func TestEmbeddedCorpus(t *testing.T) {
	c, err := LoadCorpus("", "")
	require.NoError(t, err)
	assert.True(t, c.Dictionary.Contains(game.MustWord("tares")))
	require.NotEmpty(t, c.Answers)
	for _, w := range c.Answers {
		assert.True(t, c.Dictionary.Contains(w), w.String())
	}
	for i := 1; i < c.Dictionary.Len(); i++ {
		assert.GreaterOrEqual(t, c.Dictionary.Entry(i-1).Count, c.Dictionary.Entry(i).Count)
	}
}

func TestLoadCorpusFromFiles(t *testing.T) {
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "dict.txt")
	require.NoError(t, os.WriteFile(dictPath, []byte("tares 3\nslate 2\ncrane 1\n"), 0o644))

	c, err := LoadCorpus(dictPath, "")
	require.NoError(t, err)
	assert.Len(t, c.Answers, 3)

	ansPath := filepath.Join(dir, "answers.txt")
	require.NoError(t, os.WriteFile(ansPath, []byte("crane\nzebra\n"), 0o644))
	c, err = LoadCorpus(dictPath, ansPath)
	require.NoError(t, err)
	assert.Equal(t, []game.Word{game.MustWord("crane")}, c.Answers)

	_, err = LoadCorpus(filepath.Join(dir, "missing.txt"), "")
	assert.Error(t, err)
}

func TestProcessCorpusIsShared(t *testing.T) {
	require.NoError(t, Init())
	c, err := Default()
	require.NoError(t, err)
	assert.Same(t, c.Dictionary, Baseline())
	assert.Equal(t, c.Answers, Answers())
}

func TestParseRaw(t *testing.T) {
	got, err := ParseRaw(strings.NewReader("# header\nThe 100\n\nrunning 7\n"))
	require.NoError(t, err)
	assert.Equal(t, []RawEntry{{Word: "the", Count: 100}, {Word: "running", Count: 7}}, got)

	_, err = ParseRaw(strings.NewReader("alone\n"))
	assert.Error(t, err)
}
