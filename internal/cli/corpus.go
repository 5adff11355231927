package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	redisstore "github.com/robalobadob/wordle/apps/solver/internal/store/redis"
	"github.com/robalobadob/wordle/apps/solver/internal/store/sqlite"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

var errNoStore = errors.New("no store configured (use --store)")

// openStore opens the backend selected by --store. The memory store lives
// only as long as the command, so it starts out holding the embedded
// dictionary under store.DefaultName.
func openStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		c, err := words.Default()
		if err != nil {
			return nil, err
		}
		st := store.NewMemoryStore()
		if err := st.Save(ctx, store.DefaultName, c.Dictionary.Entries()); err != nil {
			return nil, err
		}
		return st, nil
	case config.StoreSQLite:
		return sqlite.Open(cfg.SQLitePath)
	case config.StoreRedis:
		return redisstore.New(cfg.Redis())
	default:
		return nil, errNoStore
	}
}

// loadCorpus resolves the dictionary and answers for solver commands.
func loadCorpus(ctx context.Context) (*words.Corpus, error) {
	if cfg.Store == config.StoreNone {
		if cfg.DictionaryFile == "" && cfg.AnswersFile == "" {
			return words.Default()
		}
		return words.LoadCorpus(cfg.DictionaryFile, cfg.AnswersFile)
	}

	st, err := openStore(ctx)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	dict, err := store.LoadDictionary(ctx, st, cfg.Dictionary)
	if err != nil {
		return nil, fmt.Errorf("%s store: %w", cfg.Store, err)
	}

	answers := dict.Words()
	if cfg.AnswersFile != "" {
		if answers, err = words.LoadAnswers(cfg.AnswersFile); err != nil {
			return nil, err
		}
	}
	return words.NewCorpus(dict, answers), nil
}

// parseWords converts command arguments to words.
func parseWords(args []string) ([]game.Word, error) {
	out := make([]game.Word, len(args))
	for i, a := range args {
		w, err := game.ParseWord(a)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}
