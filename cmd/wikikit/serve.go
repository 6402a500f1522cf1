package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/wikikit/internal/metrics"
	"github.com/dmitrymomot/wikikit/internal/server"
	"github.com/dmitrymomot/wikikit/pkg/clientip"
	"github.com/dmitrymomot/wikikit/pkg/config"
	"github.com/dmitrymomot/wikikit/pkg/cookie"
	"github.com/dmitrymomot/wikikit/pkg/httpserver"
	"github.com/dmitrymomot/wikikit/pkg/i18n"
	"github.com/dmitrymomot/wikikit/pkg/logger"
	"github.com/dmitrymomot/wikikit/pkg/pages"
	"github.com/dmitrymomot/wikikit/pkg/ratelimiter"
	"github.com/dmitrymomot/wikikit/pkg/requestid"
	"github.com/dmitrymomot/wikikit/pkg/wikiurl"
)

type serveConfig struct {
	Logger  logger.Config
	Site    wikiurl.Config
	Cookie  cookie.Config
	HTTP    httpserver.Config
	Pages   pages.Config
	Server  server.Config
	Metrics bool `env:"METRICS_ENABLED" envDefault:"true"`

	RateLimit        ratelimiter.Config
	RateLimitEnabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	// ClientIPHeaders are trusted, in order, for the client address.
	ClientIPHeaders []string `env:"CLIENT_IP_HEADERS" envSeparator:"," envDefault:"X-Forwarded-For,X-Real-IP"`
	// MessagesDir holds <lang>.json and <lang>.yaml interface message files.
	MessagesDir string `env:"WIKI_MESSAGES_DIR"`
}

func newServeCmd() *cobra.Command {
	var addr, dir, messages string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve wiki pages and the helper API over HTTP",
		Long: `Serve rendered pages from PAGES_DIR (or an S3 bucket with PAGES_BACKEND=s3)
under the article path, with the table of contents toggle, access-key hints,
portlet links and notices applied. The helper API lives under /api.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg serveConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}
			if dir != "" {
				cfg.Pages.Backend, cfg.Pages.Dir = pages.BackendLocal, dir
			}
			if messages != "" {
				cfg.MessagesDir = messages
			}
			return serve(cmd.Context(), cfg, cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	cmd.Flags().StringVar(&dir, "dir", "", "local pages directory, overrides PAGES_DIR")
	cmd.Flags().StringVar(&messages, "messages", "", "interface messages directory, overrides WIKI_MESSAGES_DIR")
	return cmd
}

func serve(ctx context.Context, cfg serveConfig, out io.Writer) error {
	log, err := logger.FromConfig(cfg.Logger,
		logger.WithOutput(out),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	site, err := wikiurl.New(cfg.Site, wikiurl.WithLogger(log))
	if err != nil {
		return err
	}

	cookies, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		return err
	}

	var (
		m        *metrics.Metrics
		cacheOps []pages.CacheOption
		srvOpts  = []server.Option{
			server.WithLogger(log),
			server.WithClientIP(clientip.NewResolver(clientip.WithHeaders(cfg.ClientIPHeaders...))),
		}
	)
	if cfg.Metrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
		cacheOps = append(cacheOps, pages.WithEvictHook(func(string) { m.IncrementPageEvictions() }))
		srvOpts = append(srvOpts, server.WithMetrics(m))
	}

	if cfg.RateLimitEnabled {
		bucket, err := ratelimiter.NewMemoryBucket(cfg.RateLimit)
		if err != nil {
			return err
		}
		srvOpts = append(srvOpts, server.WithRateLimiter(bucket))
	}

	if cfg.MessagesDir != "" {
		catalog, err := i18n.LoadDir(ctx, cfg.MessagesDir, i18n.WithLogger(log))
		if err != nil {
			return err
		}
		srvOpts = append(srvOpts, server.WithCatalog(catalog))
	}

	src, err := pages.New(ctx, cfg.Pages, cacheOps...)
	if err != nil {
		return err
	}
	if closer, ok := src.(io.Closer); ok {
		defer closer.Close()
	}

	srv, err := server.New(cfg.Server, site, src, cookies, srvOpts...)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "serving pages",
		slog.String("backend", cfg.Pages.Backend),
		slog.String("article_path", cfg.Site.ArticlePath),
		slog.Bool("metrics", cfg.Metrics),
		slog.Bool("rate_limit", cfg.RateLimitEnabled),
	)
	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, srv.Router())
}
