package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

func TestDateKeyIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2026, 3, 1, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-02-28", DateKey(d))
}

func TestWordIndexIsStableAndInRange(t *testing.T) {
	day := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	sameDay := time.Date(2026, 10, 15, 23, 59, 0, 0, time.UTC)

	for _, n := range []int{1, 7, 120, 2315} {
		i := WordIndex(day, "salt", n)
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, n)
		assert.Equal(t, i, WordIndex(sameDay, "salt", n))
	}
	assert.Zero(t, WordIndex(day, "salt", 0))
}

func TestWordIndexDependsOnSalt(t *testing.T) {
	// Across a month two salts should disagree at least once.
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	differ := false
	for d := 0; d < 31; d++ {
		day := start.AddDate(0, 0, d)
		if WordIndex(day, "a", 1000) != WordIndex(day, "b", 1000) {
			differ = true
			break
		}
	}
	assert.True(t, differ)
}

func TestFor(t *testing.T) {
	answers := []game.Word{game.MustWord("crane"), game.MustWord("slate"), game.MustWord("tares")}
	date, err := ParseDate("2026-10-15")
	require.NoError(t, err)

	p, err := For(date, DefaultSalt, answers)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-15", p.Date)
	assert.Equal(t, answers[p.Index], p.Answer)

	_, err = For(date, DefaultSalt, nil)
	assert.ErrorIs(t, err, ErrNoAnswers)
}
