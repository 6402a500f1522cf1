package binder

import (
	"fmt"
	"net/http"
)

// Path binds router path parameters using `path` struct tags. extract is the
// router's lookup, chi.URLParam for chi.
func Path(extract func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extract == nil {
			return fmt.Errorf("%w: nil extractor", ErrFailedToParsePath)
		}
		return bindWith(v, "path", func(name string) []string {
			if value := extract(r, name); value != "" {
				return []string{value}
			}
			return nil
		}, ErrFailedToParsePath)
	}
}
