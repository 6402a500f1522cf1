// Package cache provides a small generic LRU used to memoise values that are
// expensive to build and keyed by request input, such as compiled
// query-parameter patterns and page sources read from disk.
//
//	patterns := cache.New[string, *regexp.Regexp](256)
//	re, err := patterns.GetOrCreate(name, func() (*regexp.Regexp, error) {
//		return regexp.Compile(expr(name))
//	})
//
// Entries beyond the capacity are evicted least recently used first.
// WithEvictCallback observes evictions, for example to feed a metrics counter.
package cache
