package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/wikikit/pkg/binder"
	"github.com/dmitrymomot/wikikit/pkg/logger"
	"github.com/dmitrymomot/wikikit/pkg/requestid"
	"github.com/dmitrymomot/wikikit/pkg/validator"
)

// ErrorInfo is the classification of a handler error.
type ErrorInfo struct {
	StatusCode int
	Key        string
	Message    string
	Details    map[string][]string
	LogLevel   slog.Level
}

// ClassifyError maps err to a status code and a client safe message.
// Unknown errors become a generic 500 so internals do not leak.
func ClassifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Key:        ErrInternalServerError.Key,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	switch {
	case validator.IsValidationError(err):
		ve := validator.ExtractValidationErrors(err)
		info.StatusCode = http.StatusUnprocessableEntity
		info.Key = "validation_error"
		info.Message = "Validation failed"
		info.Details = ve.Map()

	case errors.Is(err, binder.ErrUnsupportedMediaType):
		info.StatusCode = http.StatusUnsupportedMediaType
		info.Key = "unsupported_media_type"
		info.Message = http.StatusText(info.StatusCode)

	case errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrFailedToParseQuery),
		errors.Is(err, binder.ErrFailedToParsePath):
		info.StatusCode = http.StatusBadRequest
		info.Key = ErrBadRequest.Key
		info.Message = err.Error()

	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Key = httpErr.Key
		info.Message = http.StatusText(httpErr.Code)
	}

	info.LogLevel = slog.LevelError
	if info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// WantsJSON picks JSON error bodies over plain text. Defaults to an
	// Accept header check.
	WantsJSON func(r *http.Request) bool
}

// NewErrorHandler logs every error with the request ID and answers with a
// JSON or plain text error body.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	if cfg.WantsJSON == nil {
		cfg.WantsJSON = acceptsJSON
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := ClassifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if cfg.WantsJSON(r) {
			if renderErr := JSONError(err).Render(ctx.ResponseWriter(), r); renderErr != nil {
				log.ErrorContext(r.Context(), "failed to render error response", logger.Error(renderErr))
			}
			return
		}
		http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
	}
}

func acceptsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
