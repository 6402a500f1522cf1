package ratelimiter

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/wikikit/pkg/cache"
)

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// MemoryStore keeps buckets in a bounded LRU. When it is full the least
// recently seen key is dropped, which hands that client a fresh bucket.
type MemoryStore struct {
	mu      sync.Mutex
	buckets *cache.LRU[string, *bucket]
	now     func() time.Time
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if now != nil {
			ms.now = now
		}
	}
}

// NewMemoryStore creates a store holding at most maxKeys buckets.
// It panics if maxKeys is not positive.
func NewMemoryStore(maxKeys int, opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		buckets: cache.New[string, *bucket](maxKeys),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(ms)
	}
	return ms
}

func (ms *MemoryStore) ConsumeTokens(_ context.Context, key string, tokens int, cfg Config) (int, time.Time, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	b, ok := ms.buckets.Get(key)
	if !ok {
		b = &bucket{tokens: cfg.Capacity, lastRefill: now}
		ms.buckets.Put(key, b)
	}

	// capped so a long idle period cannot overflow
	maxIntervals := int64(cfg.Capacity/cfg.RefillRate + 1)
	intervals := int(min(int64(now.Sub(b.lastRefill)/cfg.RefillInterval), maxIntervals))
	if intervals > 0 {
		b.tokens = min(b.tokens+intervals*cfg.RefillRate, cfg.Capacity)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * cfg.RefillInterval)
		if b.tokens == cfg.Capacity {
			b.lastRefill = now
		}
	}

	if b.tokens-tokens < 0 {
		// denied requests do not drain the bucket further
		return b.tokens - tokens, b.lastRefill.Add(cfg.RefillInterval), nil
	}
	b.tokens -= tokens
	return b.tokens, b.lastRefill.Add(cfg.RefillInterval), nil
}

func (ms *MemoryStore) Reset(_ context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.buckets.Remove(key)
	return nil
}

// Len reports the number of tracked keys.
func (ms *MemoryStore) Len() int {
	return ms.buckets.Len()
}
