package ratelimiter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wikikit/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newBucket(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Bucket, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	b, err := ratelimiter.NewMemoryBucket(cfg, ratelimiter.WithClock(clock.Now))
	require.NoError(t, err)
	return b, clock
}

func TestBucket_Allow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, clock := newBucket(t, ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Second, MaxKeys: 10})

	for want := 2; want >= 0; want-- {
		res, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, want, res.Remaining)
		assert.Equal(t, 3, res.Limit)
	}

	res, err := b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, time.Second, res.RetryAfter(clock.Now()))

	// a denied request leaves the bucket as it was
	res, err = b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, -1, res.Remaining)

	clock.Advance(time.Second)
	res, err = b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 0, res.Remaining)

	other, err := b.Allow(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, 2, other.Remaining)
}

func TestBucket_RefillIsCapped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, clock := newBucket(t, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Second, MaxKeys: 10})

	_, err := b.AllowN(ctx, "k", 2)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	res, err := b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Remaining)
}

func TestBucket_Reset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute, MaxKeys: 10})

	_, err := b.Allow(ctx, "k")
	require.NoError(t, err)
	require.NoError(t, b.Reset(ctx, "k"))

	res, err := b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
}

func TestBucket_Errors(t *testing.T) {
	t.Parallel()

	_, err := ratelimiter.NewMemoryBucket(ratelimiter.Config{RefillRate: 1, RefillInterval: time.Second})
	require.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	_, err = ratelimiter.NewMemoryBucket(ratelimiter.Config{Capacity: 1, RefillInterval: time.Second})
	require.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	_, err = ratelimiter.NewBucket(ratelimiter.NewMemoryStore(1), ratelimiter.Config{Capacity: 1, RefillRate: 1})
	require.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)

	b, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	_, err = b.AllowN(context.Background(), "k", 0)
	require.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
}

func TestMemoryStore_Bounded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := ratelimiter.NewMemoryStore(2)
	cfg := ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute}

	for _, key := range []string{"a", "b", "c"} {
		_, _, err := store.ConsumeTokens(ctx, key, 1, cfg)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, store.Len())

	// "a" was evicted and starts over with a full bucket
	remaining, _, err := store.ConsumeTokens(ctx, "a", 1, cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
}

func TestComposite(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/notify", nil)
	constant := func(s string) ratelimiter.KeyFunc {
		return func(*http.Request) string { return s }
	}

	assert.Equal(t, "10.0.0.1:/notify", ratelimiter.Composite(constant("10.0.0.1"), constant(""), ratelimiter.ByPath)(req))
	assert.Empty(t, ratelimiter.Composite(constant(""))(req))

	long := ratelimiter.Composite(constant(strings.Repeat("x", 80)))(req)
	assert.NotEmpty(t, long)
	assert.LessOrEqual(t, len(long), 13)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute, MaxKeys: 10})

	limited := 0
	mw := ratelimiter.Middleware(b,
		func(r *http.Request) string { return r.Header.Get("X-Key") },
		ratelimiter.WithLimitedHandler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			limited++
			w.WriteHeader(http.StatusTooManyRequests)
		})),
	)
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if key != "" {
			req.Header.Set("X-Key", key)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := do("a")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = do("a")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, 1, limited)

	assert.Equal(t, http.StatusNoContent, do("b").Code)

	// no key, no limit
	assert.Equal(t, http.StatusNoContent, do("").Code)
	assert.Equal(t, http.StatusNoContent, do("").Code)
}
