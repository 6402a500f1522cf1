// Package server exposes the wiki toolkit over HTTP: rendered pages with the
// table-of-contents toggle, access-key hints, portlet links and notices, plus
// a small JSON API over the URL helpers and validators.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/wikikit/handler"
	"github.com/dmitrymomot/wikikit/internal/metrics"
	"github.com/dmitrymomot/wikikit/pkg/binder"
	"github.com/dmitrymomot/wikikit/pkg/clientip"
	"github.com/dmitrymomot/wikikit/pkg/cookie"
	"github.com/dmitrymomot/wikikit/pkg/httpserver"
	"github.com/dmitrymomot/wikikit/pkg/i18n"
	"github.com/dmitrymomot/wikikit/pkg/pages"
	"github.com/dmitrymomot/wikikit/pkg/ratelimiter"
	"github.com/dmitrymomot/wikikit/pkg/requestid"
	"github.com/dmitrymomot/wikikit/pkg/wikidom"
	"github.com/dmitrymomot/wikikit/pkg/wikiurl"
)

var (
	// ErrMissingDependency is returned by New when a required collaborator is nil.
	ErrMissingDependency = errors.New("server: missing dependency")
	// ErrInvalidConfig is joined with the validation errors of Config.
	ErrInvalidConfig = errors.New("server: invalid config")
)

// Server holds the collaborators shared by all handlers.
type Server struct {
	cfg      Config
	site     *wikiurl.Site
	pages    pages.Source
	cookies  *cookie.Manager
	metrics  *metrics.Metrics
	catalog  *i18n.Catalog
	limiter  *ratelimiter.Bucket
	ips      *clientip.Resolver
	log      *slog.Logger
	messages wikidom.Messages
	links    []wikidom.PortletLink
	errors   handler.ErrorHandler
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics enables the Prometheus collectors and the /metrics endpoint.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithCatalog localizes interface messages per request. The language comes
// from ?uselang=, the language cookie or Accept-Language.
func WithCatalog(c *i18n.Catalog) Option {
	return func(s *Server) { s.catalog = c }
}

// WithRateLimiter limits the state changing endpoints per client address
// and path.
func WithRateLimiter(b *ratelimiter.Bucket) Option {
	return func(s *Server) { s.limiter = b }
}

// WithClientIP sets how client addresses are read from proxy headers.
func WithClientIP(res *clientip.Resolver) Option {
	return func(s *Server) {
		if res != nil {
			s.ips = res
		}
	}
}

// New validates cfg and wires the server.
func New(cfg Config, site *wikiurl.Site, src pages.Source, cookies *cookie.Manager, opts ...Option) (*Server, error) {
	if site == nil || src == nil || cookies == nil {
		return nil, ErrMissingDependency
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	s := &Server{
		cfg:      cfg,
		site:     site,
		pages:    src,
		cookies:  cookies,
		ips:      clientip.NewResolver(),
		log:      slog.New(slog.DiscardHandler),
		messages: cfg.Messages(),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, spec := range cfg.PortletLinks {
		s.links = append(s.links, wikidom.PortletLink(spec))
	}
	s.errors = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{WantsJSON: wantsJSON})
	return s, nil
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware())
	r.Use(clientip.Middleware(s.ips))
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	if s.catalog != nil {
		r.Use(i18n.Middleware(s.catalog.DefaultExtractor()))
	}

	r.Get("/healthz", httpserver.HealthCheckHandler(s.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(s.log, httpserver.Check{Name: "pages", Func: s.pagesReady}))
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.site.GetURL("", nil), http.StatusFound)
	})
	r.Get("/wiki/*", handler.Wrap(s.renderPage,
		handler.WithBinders(binder.Path(chi.URLParam), binder.Query()),
		handler.WithErrorHandler(s.errors),
	))
	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(s.rateLimit())
		}
		r.Post("/toc/toggle", handler.Wrap(s.toggleTOC,
			handler.WithBinders(binder.Query(), optional(binder.Form())),
			handler.WithErrorHandler(s.errors),
		))
		r.Post("/notify", handler.Wrap(s.notify,
			handler.WithBinders(binder.Form()),
			handler.WithErrorHandler(s.errors),
		))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/validate", handler.Wrap(s.validate,
			handler.WithBinders(binder.Query()),
			handler.WithErrorHandler(s.errors),
		))
		r.Get("/url", handler.Wrap(s.buildURL,
			handler.WithBinders(binder.Query()),
			handler.WithErrorHandler(s.errors),
		))
		r.Get("/script", handler.Wrap(s.script,
			handler.WithBinders(binder.Query()),
			handler.WithErrorHandler(s.errors),
		))
		r.Get("/param", handler.Wrap(s.param,
			handler.WithBinders(binder.Query()),
			handler.WithErrorHandler(s.errors),
		))
	})

	return r
}

// optional skips bind for requests without a body.
func optional(bind handler.Bind) handler.Bind {
	return func(r *http.Request, v any) error {
		if r.ContentLength == 0 && r.Header.Get("Content-Type") == "" {
			return nil
		}
		return bind(r, v)
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}
