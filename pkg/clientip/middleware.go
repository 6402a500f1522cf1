package clientip

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/wikikit/pkg/logger"
)

// Middleware resolves the client address once and stores it in the request
// context.
func Middleware(res *Resolver) func(http.Handler) http.Handler {
	if res == nil {
		res = defaultResolver
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithIP(r.Context(), res.IP(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggerExtractor adds the client_ip attribute to records logged with a
// request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
