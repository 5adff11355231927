package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/bench"
	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// run executes the CLI in-process and returns what it wrote to stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir()) // no stray .env

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestScore(t *testing.T) {
	out, err := run(t, "", "score", "tares", "rates")
	require.NoError(t, err)
	assert.Equal(t, "tares  MCMCC\n", out)

	out, err = run(t, "", "-o", "json", "score", "speed", "abide")
	require.NoError(t, err)
	var res ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, game.Compute(game.MustWord("speed"), game.MustWord("abide")), res.Pattern)

	_, err = run(t, "", "score", "tare", "rates")
	assert.ErrorIs(t, err, game.ErrInvalidWord)
}

func TestPlayOpenerAnswer(t *testing.T) {
	out, err := run(t, "", "play", "tares")
	require.NoError(t, err)
	assert.Equal(t, "1. tares\nSolved tares in 1\n", out)
}

func TestPlayJSON(t *testing.T) {
	c, err := words.Default()
	require.NoError(t, err)
	answer := c.Answers[0].String()

	out, err := run(t, "", "-o", "json", "play", answer)
	require.NoError(t, err)
	var res GameResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, answer, res.Answer.String())
	assert.NotEmpty(t, res.ID)
	require.NotEmpty(t, res.Guesses)
	assert.Equal(t, "tares", res.Guesses[0].Word.String())
	if res.Solved {
		assert.Len(t, res.Guesses, res.Attempts)
		assert.True(t, res.Guesses[len(res.Guesses)-1].Pattern.Solved())
	}
}

func TestPlayZeroAttempts(t *testing.T) {
	out, err := run(t, "", "--attempts", "0", "play", "tares")
	require.NoError(t, err)
	assert.Equal(t, "Failed to solve tares\n", out)
}

func TestBench(t *testing.T) {
	out, err := run(t, "", "-o", "json", "bench", "-n", "5", "-j", "2")
	require.NoError(t, err)

	var r bench.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 5, r.Games)
	assert.Equal(t, r.Games, r.Solved+r.Failed)
	assert.Empty(t, r.Results)

	out, err = run(t, "", "bench", "-n", "3", "--worst", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "games: 3\n")
	assert.Contains(t, out, "distribution:\n")
}

func TestBenchUnknownStrategy(t *testing.T) {
	_, err := run(t, "", "--strategy", "magic", "bench", "-n", "1")
	assert.Error(t, err)
}

func TestAssistSolves(t *testing.T) {
	out, err := run(t, "IIIII\ncrane CCCCC\n", "assist", "--show", "0")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Try: tares ("))
	assert.Equal(t, "Solved in 2", lines[2])
}

func TestAssistStopsAtAttemptLimit(t *testing.T) {
	out, err := run(t, "IIIII\n", "--attempts", "1", "assist", "--show", "0")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Try: tares ("))
	assert.Equal(t, "Out of attempts", lines[1])

	out, err = run(t, "", "--attempts", "0", "assist")
	require.NoError(t, err)
	assert.Equal(t, "Out of attempts\n", out)
}

func TestAssistStopsOnEmptyLine(t *testing.T) {
	out, err := run(t, "\n", "assist", "--show", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Try: tares")
	assert.Contains(t, out, "Candidates: ")
}

func TestAssistRejectsBadFeedback(t *testing.T) {
	_, err := run(t, "CCX\n", "assist")
	assert.Error(t, err)
}

func TestParseFeedback(t *testing.T) {
	sugg := game.MustWord("tares")

	g, err := parseFeedback("CMIII", sugg)
	require.NoError(t, err)
	assert.Equal(t, sugg, g.Word)
	assert.Equal(t, "CMIII", g.Pattern.String())

	g, err = parseFeedback("crane IIIIC", sugg)
	require.NoError(t, err)
	assert.Equal(t, "crane", g.Word.String())

	_, err = parseFeedback("a b c", sugg)
	assert.Error(t, err)
}

func TestDaily(t *testing.T) {
	out, err := run(t, "", "-o", "json", "daily", "--date", "2025-01-02", "--daily-salt", "pepper", "--play")
	require.NoError(t, err)

	var res DailyResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))

	c, err := words.Default()
	require.NoError(t, err)
	date, err := daily.ParseDate("2025-01-02")
	require.NoError(t, err)
	want, err := daily.For(date, "pepper", c.Answers)
	require.NoError(t, err)

	assert.Equal(t, want, res.Puzzle)
	require.NotNil(t, res.Game)
	assert.Equal(t, want.Answer, res.Game.Answer)

	_, err = run(t, "", "daily", "--date", "02/01/2025")
	assert.Error(t, err)
}

func TestDictBuild(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "raw.txt")
	require.NoError(t, os.WriteFile(raw, []byte("the 900\ncrane 10\ncranes 4\nslate 7\nrunning 3\n"), 0o644))

	out, err := run(t, "", "dict", "build", raw)
	require.NoError(t, err)
	assert.Equal(t, "crane 10\nslate 7\n", out)

	dst := filepath.Join(dir, "dict.txt")
	_, err = run(t, "", "dict", "build", "--stem", "--out", dst, raw)
	require.NoError(t, err)
	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "crane 14\nslate 7\n", string(b))
}

func TestDictStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "dict.txt")
	require.NoError(t, os.WriteFile(src, []byte("tares 30\nslate 20\ncrane 10\n"), 0o644))
	storeArgs := []string{"--store", "sqlite", "--sqlite-path", filepath.Join(dir, "solver.db"), "--dictionary", "small"}

	out, err := run(t, "", append(storeArgs, "dict", "import", src)...)
	require.NoError(t, err)
	assert.Equal(t, "Imported 3 words into sqlite/small\n", out)

	out, err = run(t, "", append(storeArgs, "dict", "list")...)
	require.NoError(t, err)
	assert.Equal(t, "small\n", out)

	out, err = run(t, "", append(storeArgs, "dict", "export")...)
	require.NoError(t, err)
	assert.Equal(t, "tares 30\nslate 20\ncrane 10\n", out)

	// Every stored word is an answer when no answers file is given.
	out, err = run(t, "", append(storeArgs, "play", "crane")...)
	require.NoError(t, err)
	assert.Equal(t, "1. tares\n2. crane\nSolved crane in 2\n", out)
}

func TestDictExportToFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "dict.txt")
	require.NoError(t, os.WriteFile(src, []byte("tares 30\ncrane 10\n"), 0o644))
	storeArgs := []string{"--store", "sqlite", "--sqlite-path", filepath.Join(dir, "solver.db")}

	_, err := run(t, "", append(storeArgs, "dict", "import", src)...)
	require.NoError(t, err)

	dst := filepath.Join(dir, "out.txt")
	out, err := run(t, "", append(storeArgs, "dict", "export", dst)...)
	require.NoError(t, err)
	assert.Empty(t, out)
	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "tares 30\ncrane 10\n", string(b))

	_, err = run(t, "", append(storeArgs, "dict", "export", filepath.Join(dir, "missing", "out.txt"))...)
	assert.Error(t, err)
}

func TestMemoryStoreHoldsEmbeddedDictionary(t *testing.T) {
	out, err := run(t, "", "--store", "memory", "dict", "list")
	require.NoError(t, err)
	assert.Equal(t, "default\n", out)

	_, err = run(t, "", "--store", "memory", "--dictionary", "missing", "play", "tares")
	assert.Error(t, err)
}

func TestDictNeedsStore(t *testing.T) {
	_, err := run(t, "", "dict", "list")
	assert.ErrorIs(t, err, errNoStore)
}
