package cache_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wikikit/pkg/cache"
)

func TestLRU_GetPut(t *testing.T) {
	t.Parallel()

	c := cache.New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	c.Put("a", 10)
	v, _ = c.Get("a")
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestLRU_Eviction(t *testing.T) {
	t.Parallel()

	var evicted []string
	c := cache.New(2, cache.WithEvictCallback(func(k string, _ int) {
		evicted = append(evicted, k)
	}))

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a") // b becomes the oldest
	c.Put("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []string{"b"}, evicted)

	c.Purge()
	assert.Equal(t, 0, c.Len())
	assert.ElementsMatch(t, []string{"b", "a", "c"}, evicted)
}

func TestLRU_GetOrCreate(t *testing.T) {
	t.Parallel()

	c := cache.New[string, string](4)
	calls := 0
	build := func() (string, error) {
		calls++
		return "built", nil
	}

	v, err := c.GetOrCreate("k", build)
	require.NoError(t, err)
	assert.Equal(t, "built", v)

	v, err = c.GetOrCreate("k", build)
	require.NoError(t, err)
	assert.Equal(t, "built", v)
	assert.Equal(t, 1, calls)

	boom := errors.New("boom")
	_, err = c.GetOrCreate("bad", func() (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
	_, ok := c.Get("bad")
	assert.False(t, ok)
}

func TestLRU_Remove(t *testing.T) {
	t.Parallel()

	c := cache.New[int, int](2)
	c.Put(1, 1)
	assert.True(t, c.Remove(1))
	assert.False(t, c.Remove(1))
	assert.Equal(t, 0, c.Len())
}

func TestLRU_InvalidCapacity(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { cache.New[string, int](0) })
}

func TestLRU_Concurrent(t *testing.T) {
	t.Parallel()

	c := cache.New[string, int](16)
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%8)
			_, _ = c.GetOrCreate(key, func() (int, error) { return i, nil })
			c.Get(key)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 8, c.Len())
}
