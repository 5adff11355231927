package redis

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Storage is a Redis-backed dictionary store.
// Each dictionary is a sorted set scored by count; equal counts come back
// in lexical order.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultConfig().Prefix
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ store.Store = (*Storage)(nil)

// MaxCount is the largest count a sorted-set score holds exactly.
const MaxCount = 1 << 53

func (s *Storage) Save(ctx context.Context, name string, entries []words.Entry) error {
	if err := store.CheckCounts(entries, MaxCount); err != nil {
		return err
	}
	key := s.dictionaryKey(name)

	// Replace the dictionary and update the name index atomically
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	if len(entries) > 0 {
		members := make([]redis.Z, len(entries))
		for i, e := range entries {
			members[i] = redis.Z{Score: float64(e.Count), Member: e.Word.String()}
		}
		pipe.ZAdd(ctx, key, members...)
		pipe.SAdd(ctx, s.namesKey(), name)
	} else {
		pipe.SRem(ctx, s.namesKey(), name)
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) Load(ctx context.Context, name string) ([]words.Entry, error) {
	zs, err := s.client.ZRangeWithScores(ctx, s.dictionaryKey(name), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(zs) == 0 {
		return nil, fmt.Errorf("%w: %q", store.ErrDictionaryNotLoaded, name)
	}

	// ZRANGE is ascending; flip to count order keeping lexical order on ties
	out := make([]words.Entry, len(zs))
	for i, z := range zs {
		member, _ := z.Member.(string)
		w, err := game.ParseWord(member)
		if err != nil {
			return nil, fmt.Errorf("dictionary %q: %w", name, err)
		}
		out[i] = words.Entry{Word: w, Count: uint64(z.Score)}
	}
	slices.SortStableFunc(out, func(a, b words.Entry) int { return cmp.Compare(b.Count, a.Count) })
	return out, nil
}

func (s *Storage) Names(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, s.namesKey()).Result()
	if err != nil {
		return nil, err
	}
	slices.Sort(names)
	return names, nil
}
