package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Storage keeps dictionaries in a SQLite file. Entry order is stored
// explicitly, so a dictionary loads back exactly as it was saved.
type Storage struct {
	db *sql.DB
}

var _ store.Store = (*Storage)(nil)

// Open opens (creating if needed) the database at path and migrates it.
func Open(path string) (*Storage, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Storage{db: db}, nil
}

func (s *Storage) Close() error { return s.db.Close() }

// MaxCount is the largest count the INTEGER column holds.
const MaxCount = math.MaxInt64

func (s *Storage) Save(ctx context.Context, name string, entries []words.Entry) error {
	if err := store.CheckCounts(entries, MaxCount); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM dictionaries WHERE name=?`, name); err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	if len(entries) == 0 {
		return tx.Commit()
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO dictionaries(name) VALUES (?)`, name); err != nil {
		return fmt.Errorf("insert %q: %w", name, err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO entries(dictionary, position, word, count) VALUES (?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.ExecContext(ctx, name, i, e.Word.String(), int64(e.Count)); err != nil {
			return fmt.Errorf("insert %s: %w", e.Word, err)
		}
	}
	return tx.Commit()
}

func (s *Storage) Load(ctx context.Context, name string) ([]words.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT word, count
        FROM entries
        WHERE dictionary=?
        ORDER BY position ASC`, name,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []words.Entry
	for rows.Next() {
		var (
			word  string
			count int64
		)
		if err := rows.Scan(&word, &count); err != nil {
			return nil, err
		}
		w, err := game.ParseWord(word)
		if err != nil {
			return nil, fmt.Errorf("dictionary %q: %w", name, err)
		}
		out = append(out, words.Entry{Word: w, Count: uint64(count)})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %q", store.ErrDictionaryNotLoaded, name)
	}
	return out, nil
}

func (s *Storage) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM dictionaries ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
