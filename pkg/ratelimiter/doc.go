// Package ratelimiter limits how often a client may call an endpoint, using
// a token bucket per key.
//
// A bucket starts full with Capacity tokens and gains RefillRate tokens
// every RefillInterval, never exceeding Capacity. Each request takes one
// token; a request that finds too few is denied without draining the bucket.
//
//	limiter, err := ratelimiter.NewMemoryBucket(ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     1,
//		RefillInterval: 6 * time.Second,
//		MaxKeys:        10000,
//	})
//	if err != nil {
//		return err
//	}
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.Composite(ipKey, ratelimiter.ByPath))).
//		Post("/notify", notify)
//
// The in-memory store holds at most MaxKeys buckets in an LRU, so it needs no
// background cleanup. Denied requests get X-RateLimit-* headers, Retry-After
// and a 429 from the handler set with WithLimitedHandler.
package ratelimiter
