// apps/solver/internal/store/memory.go
//
// Dictionary corpus storage.
// The Store interface lets `dict import/export` and the server move named
// dictionaries between text files and a backend. This file holds the
// in-memory implementation; SQLite and Redis live in subpackages.
//
// Characteristics of memory:
//   - Entries keyed by dictionary name in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// ErrDictionaryNotLoaded is returned when a named dictionary has no entries.
var ErrDictionaryNotLoaded = errors.New("store: dictionary not loaded")

// ErrCountOutOfRange is returned by Save when a count does not fit the
// backend's numeric type exactly.
var ErrCountOutOfRange = errors.New("store: count out of range")

// CheckCounts fails with ErrCountOutOfRange on the first entry above limit.
func CheckCounts(entries []words.Entry, limit uint64) error {
	for _, e := range entries {
		if e.Count > limit {
			return fmt.Errorf("%w: %s %d exceeds %d", ErrCountOutOfRange, e.Word, e.Count, limit)
		}
	}
	return nil
}

// DefaultName is the dictionary name used when none is given.
const DefaultName = "default"

// Store defines the persistence interface for dictionaries.
type Store interface {
	// Save replaces the named dictionary with entries.
	Save(ctx context.Context, name string, entries []words.Entry) error

	// Load returns the named dictionary's entries.
	// Returns ErrDictionaryNotLoaded if nothing was saved under name.
	Load(ctx context.Context, name string) ([]words.Entry, error)

	// Names lists the saved dictionaries in lexical order.
	Names(ctx context.Context) ([]string, error)

	Close() error
}

// LoadDictionary loads the named entries and builds a Dictionary from them.
func LoadDictionary(ctx context.Context, st Store, name string) (*words.Dictionary, error) {
	entries, err := st.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	d, err := words.New(entries)
	if err != nil {
		return nil, fmt.Errorf("dictionary %q: %w", name, err)
	}
	return d, nil
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex             // guards dicts
	dicts map[string][]words.Entry // keyed by dictionary name
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{dicts: make(map[string][]words.Entry)}
}

func (m *memory) Save(ctx context.Context, name string, entries []words.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dicts[name] = slices.Clone(entries)
	return nil
}

func (m *memory) Load(ctx context.Context, name string) ([]words.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if es, ok := m.dicts[name]; ok && len(es) > 0 {
		return slices.Clone(es), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrDictionaryNotLoaded, name)
}

func (m *memory) Names(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.dicts))
	for name := range m.dicts {
		out = append(out, name)
	}
	slices.Sort(out)
	return out, nil
}

func (m *memory) Close() error { return nil }
