package ratelimiter

import "errors"

var (
	// ErrInvalidConfig is returned for a non-positive capacity, rate or interval.
	ErrInvalidConfig = errors.New("ratelimiter: invalid configuration")
	// ErrInvalidTokenCount is returned by AllowN for n <= 0.
	ErrInvalidTokenCount = errors.New("ratelimiter: invalid token count")
)
