package handler

import (
	"net/http"
)

// HandlerFunc handles a request already bound into R.
//
//	func validate(ctx handler.Context, req ValidateRequest) handler.Response {
//		return handler.JSON(result)
//	}
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response renders itself. A returned error goes to the ErrorHandler, so
// Render must not write anything before it knows it will succeed.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind fills v from the request. See package binder.
type Bind func(r *http.Request, v any) error

// ErrorHandler writes the response for a bind or render failure.
type ErrorHandler func(ctx Context, err error)

// WrapOption configures Wrap.
type WrapOption func(*wrapConfig)

type wrapConfig struct {
	binders      []Bind
	errorHandler ErrorHandler
}

// WithBinders runs the binders in order before the handler.
func WithBinders(binders ...Bind) WrapOption {
	return func(c *wrapConfig) {
		for _, b := range binders {
			if b != nil {
				c.binders = append(c.binders, b)
			}
		}
	}
}

// WithErrorHandler replaces the default error handler.
func WithErrorHandler(h ErrorHandler) WrapOption {
	return func(c *wrapConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// Wrap turns h into an http.HandlerFunc: bind, call, render, and route any
// failure to the error handler.
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption) http.HandlerFunc {
	cfg := &wrapConfig{errorHandler: defaultErrorHandler}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		resp := h(ctx, req)
		if resp == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}

func defaultErrorHandler(ctx Context, err error) {
	info := ClassifyError(err)
	http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
}
