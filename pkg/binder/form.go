package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxMemory bounds the in-memory part of a multipart form.
const DefaultMaxMemory = 10 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data
// values using `form` struct tags. Uploaded files are not bound.
//
//	type NotifyRequest struct {
//		Message string `form:"message"`
//		Return  string `form:"return"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		}

		mediaType, params, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
		}

		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			return bindToStruct(v, "form", r.PostForm, ErrFailedToParseForm)

		case "multipart/form-data":
			if params["boundary"] == "" {
				return fmt.Errorf("%w: missing boundary", ErrFailedToParseForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			return bindToStruct(v, "form", r.MultipartForm.Value, ErrFailedToParseForm)

		default:
			return fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mediaType)
		}
	}
}
