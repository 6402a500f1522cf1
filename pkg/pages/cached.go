package pages

import (
	"context"
	"io"

	"github.com/dmitrymomot/wikikit/pkg/cache"
)

// Cached keeps the most recently read pages of another Source in memory.
// Misses and errors are not cached.
type Cached struct {
	src Source
	lru *cache.LRU[string, []byte]
}

// CacheOption configures NewCached.
type CacheOption func(*cacheOptions)

type cacheOptions struct {
	onEvict func(title string)
}

// WithEvictHook calls fn for every page pushed out of the cache.
func WithEvictHook(fn func(title string)) CacheOption {
	return func(o *cacheOptions) { o.onEvict = fn }
}

// NewCached wraps src with an LRU of capacity pages. It panics if capacity
// is not positive.
func NewCached(src Source, capacity int, opts ...CacheOption) *Cached {
	o := &cacheOptions{}
	for _, opt := range opts {
		opt(o)
	}

	var lruOpts []cache.Option[string, []byte]
	if o.onEvict != nil {
		onEvict := o.onEvict
		lruOpts = append(lruOpts, cache.WithEvictCallback(func(title string, _ []byte) { onEvict(title) }))
	}
	return &Cached{src: src, lru: cache.New(capacity, lruOpts...)}
}

// Read returns a cached copy or reads through to the wrapped source. The
// returned slice is shared and must not be modified.
func (c *Cached) Read(ctx context.Context, title string) ([]byte, error) {
	name, err := FileName(title)
	if err != nil {
		return nil, err
	}
	return c.lru.GetOrCreate(name, func() ([]byte, error) {
		return c.src.Read(ctx, title)
	})
}

func (c *Cached) Exists(ctx context.Context, title string) bool {
	if name, err := FileName(title); err == nil {
		if _, ok := c.lru.Get(name); ok {
			return true
		}
	}
	return c.src.Exists(ctx, title)
}

// Invalidate drops title from the cache.
func (c *Cached) Invalidate(title string) bool {
	name, err := FileName(title)
	if err != nil {
		return false
	}
	return c.lru.Remove(name)
}

// Len reports the number of cached pages.
func (c *Cached) Len() int {
	return c.lru.Len()
}

// Close closes the wrapped source if it holds resources.
func (c *Cached) Close() error {
	if closer, ok := c.src.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
