package wikiurl

import (
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/dmitrymomot/wikikit/pkg/validator"
)

// Config describes where a wiki is mounted.
type Config struct {
	// ArticlePath is the page URL template; "$1" is replaced by the title.
	ArticlePath string `env:"WIKI_ARTICLE_PATH" envDefault:"/wiki/$1"`
	Script      string `env:"WIKI_SCRIPT" envDefault:"/w/index.php"`
	LoadScript  string `env:"WIKI_LOAD_SCRIPT" envDefault:"/w/load.php"`
	ScriptPath  string `env:"WIKI_SCRIPT_PATH" envDefault:"/w"`
	ScriptExt   string `env:"WIKI_SCRIPT_EXTENSION" envDefault:".php"`
	MainPage    string `env:"WIKI_MAIN_PAGE" envDefault:"Main_Page"`
}

// DefaultConfig matches the envDefault tags of Config.
func DefaultConfig() Config {
	return Config{
		ArticlePath: "/wiki/$1",
		Script:      "/w/index.php",
		LoadScript:  "/w/load.php",
		ScriptPath:  "/w",
		ScriptExt:   ".php",
		MainPage:    "Main_Page",
	}
}

// Site builds links for one wiki. It is immutable and safe for concurrent use.
type Site struct {
	cfg    Config
	page   string
	logger *slog.Logger
	warn   *sync.Once
}

// Option configures a Site.
type Option func(*Site)

// WithLogger sets the logger used for deprecation notices.
func WithLogger(l *slog.Logger) Option {
	return func(s *Site) {
		if l != nil {
			s.logger = l
		}
	}
}

// New validates cfg and returns a Site whose current page is cfg.MainPage.
func New(cfg Config, opts ...Option) (*Site, error) {
	if err := validator.Apply(
		validator.RequiredString("article_path", cfg.ArticlePath),
		validator.ContainsString("article_path", cfg.ArticlePath, "$1"),
		validator.RequiredString("script", cfg.Script),
		validator.RequiredString("load_script", cfg.LoadScript),
	); err != nil {
		return nil, errors.Join(ErrInvalidSite, err)
	}

	s := &Site{
		cfg:    cfg,
		page:   cfg.MainPage,
		logger: slog.Default(),
		warn:   &sync.Once{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns the configuration the site was built from.
func (s *Site) Config() Config {
	return s.cfg
}

// ForPage returns a copy of s whose default title is page. Handlers use it to
// bind the page being rendered.
func (s *Site) ForPage(page string) *Site {
	cp := *s
	cp.page = page
	return &cp
}

// PageName is the title GetURL falls back to.
func (s *Site) PageName() string {
	return s.page
}

// GetURL returns the article URL for title, or for the current page when
// title is empty. Non-empty params are appended as a query string, joined
// with '&' when the article path already carries one. The query string is
// url.Values.Encode output: keys are sorted and !'()* are escaped, which
// decodes to the same parameters as insertion-ordered encoding.
func (s *Site) GetURL(title string, params url.Values) string {
	if title == "" {
		title = s.page
	}

	u := strings.Replace(s.cfg.ArticlePath, "$1", WikiURLEncode(title), 1)
	if len(params) == 0 {
		return u
	}

	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + params.Encode()
}

// WikiGetlink is the old name of GetURL.
//
// Deprecated: use GetURL.
func (s *Site) WikiGetlink(title string, params url.Values) string {
	s.warn.Do(func() {
		s.logger.Warn("deprecated call",
			slog.String("func", "WikiGetlink"),
			slog.String("use", "GetURL"),
		)
	})
	return s.GetURL(title, params)
}

// WikiScript returns the URL of an entry-point script. An empty name means
// "index". The index and load scripts may live at configured locations; any
// other name is resolved under ScriptPath with ScriptExt appended.
func (s *Site) WikiScript(name string) string {
	switch name {
	case "", "index":
		return s.cfg.Script
	case "load":
		return s.cfg.LoadScript
	default:
		return s.cfg.ScriptPath + "/" + name + s.cfg.ScriptExt
	}
}
