package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/wikikit/handler"
	"github.com/dmitrymomot/wikikit/pkg/clientip"
	"github.com/dmitrymomot/wikikit/pkg/logger"
	"github.com/dmitrymomot/wikikit/pkg/ratelimiter"
)

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.log.LogAttrs(r.Context(), slog.LevelInfo, "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Int("bytes", ww.BytesWritten()),
			logger.Duration(time.Since(start)),
		)
	})
}

func (s *Server) rateLimit() func(http.Handler) http.Handler {
	byClient := func(r *http.Request) string { return clientip.FromContext(r.Context()) }

	return ratelimiter.Middleware(s.limiter,
		ratelimiter.Composite(byClient, ratelimiter.ByPath),
		ratelimiter.WithLimitedHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s.metrics != nil {
				s.metrics.IncrementRateLimited(r.URL.Path)
			}
			s.errors(handler.NewContext(w, r), handler.ErrTooManyRequests)
		})),
		ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			s.errors(handler.NewContext(w, r), err)
		}),
	)
}
