package binder

import "net/http"

// Query binds URL query parameters using `query` struct tags.
//
//	type ValidateRequest struct {
//		Kind  string `query:"kind"`
//		Value string `query:"value"`
//		Block bool   `query:"block"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
