package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	defer st.Close()

	_, err := st.Load(ctx, DefaultName)
	require.ErrorIs(t, err, ErrDictionaryNotLoaded)

	in := []words.Entry{
		{Word: game.MustWord("tares"), Count: 2},
		{Word: game.MustWord("crane"), Count: 9},
	}
	require.NoError(t, st.Save(ctx, DefaultName, in))
	in[0].Count = 100

	out, err := st.Load(ctx, DefaultName)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), out[0].Count)

	names, err := st.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultName}, names)

	d, err := LoadDictionary(ctx, st, DefaultName)
	require.NoError(t, err)
	assert.Equal(t, game.MustWord("crane"), d.Entry(0).Word)
}

func TestLoadDictionaryRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	dup := []words.Entry{
		{Word: game.MustWord("tares"), Count: 2},
		{Word: game.MustWord("tares"), Count: 9},
	}
	require.NoError(t, st.Save(ctx, "dup", dup))

	_, err := LoadDictionary(ctx, st, "dup")
	assert.ErrorIs(t, err, words.ErrDuplicateWord)
}
