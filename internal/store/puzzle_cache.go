package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"tagvorto/internal/logger"
)

const puzzleKeyPrefix = "puzzle:"

// CachedPuzzleStore is a redis read-through cache in front of a PuzzleStore.
// Cache failures degrade to the inner store; they never fail a request.
type CachedPuzzleStore struct {
	inner  PuzzleStore
	client *redis.Client
	ttl    time.Duration
}

// NewCachedPuzzleStore wraps inner with a redis cache.
func NewCachedPuzzleStore(inner PuzzleStore, addr, password string, ttl time.Duration) *CachedPuzzleStore {
	return &CachedPuzzleStore{
		inner: inner,
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		ttl: ttl,
	}
}

func (c *CachedPuzzleStore) GetPuzzle(ctx context.Context, date string) (Puzzle, bool, error) {
	if p, ok := c.cacheGet(ctx, date); ok {
		return p, true, nil
	}
	p, ok, err := c.inner.GetPuzzle(ctx, date)
	if err != nil || !ok {
		return p, ok, err
	}
	c.cacheSet(ctx, p)
	return p, true, nil
}

func (c *CachedPuzzleStore) InsertPuzzle(ctx context.Context, p Puzzle) (Puzzle, error) {
	stored, err := c.inner.InsertPuzzle(ctx, p)
	if err != nil {
		return Puzzle{}, err
	}
	c.cacheSet(ctx, stored)
	return stored, nil
}

func (c *CachedPuzzleStore) cacheGet(ctx context.Context, date string) (Puzzle, bool) {
	val, err := c.client.Get(ctx, puzzleKeyPrefix+date).Result()
	if err == redis.Nil {
		return Puzzle{}, false
	}
	if err != nil {
		logger.Warn("puzzle cache read failed", "date", date, "err", err)
		return Puzzle{}, false
	}
	var p Puzzle
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		logger.Warn("puzzle cache entry corrupt", "date", date, "err", err)
		return Puzzle{}, false
	}
	return p, true
}

func (c *CachedPuzzleStore) cacheSet(ctx context.Context, p Puzzle) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, puzzleKeyPrefix+p.Date, data, c.ttl).Err(); err != nil {
		logger.Warn("puzzle cache write failed", "date", p.Date, "err", err)
	}
}
