package ratelimiter

import "time"

// Result is the outcome of a rate limit check.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Allowed reports whether the request fits in the bucket.
func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is how long to wait before the next token arrives, or 0 when
// the request was allowed.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(r.ResetAt.Sub(now), 0)
}

// Config describes a token bucket.
type Config struct {
	// Capacity is the burst size.
	Capacity int `env:"RATE_LIMIT_CAPACITY" envDefault:"10"`
	// RefillRate tokens are added every RefillInterval.
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"6s"`
	// MaxKeys bounds the number of buckets kept in memory.
	MaxKeys int `env:"RATE_LIMIT_MAX_KEYS" envDefault:"10000"`
}
