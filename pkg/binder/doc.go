// Package binder fills request structs from HTTP input.
//
// Each binder reads one source and only touches fields tagged for it:
//
//	type ParamRequest struct {
//		Name string `query:"name"`
//		URL  string `query:"url"`
//	}
//
// Query reads the URL query, Form reads url-encoded or multipart form
// values, Path reads router parameters through an extractor such as
// chi.URLParam. Scalars take the first value, slices take all of them and
// pointers stay nil when the parameter is absent. Failures wrap one of the
// ErrFailedToParse* sentinels.
package binder
