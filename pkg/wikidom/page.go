package wikidom

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Content region candidates, most specific first. Skins mark the article
// container with .mw-body; the rest are legacy skin ids, and body always exists.
var contentSelectors = []string{
	".mw-body-primary",
	".mw-body",
	"#bodyContent",
	"#mw_contentholder",
	"#article",
	"#content",
	"#mw-content-text",
	"body",
}

var contentMatchers = func() []goquery.Matcher {
	m := make([]goquery.Matcher, 0, len(contentSelectors))
	for _, sel := range contentSelectors {
		m = append(m, cascadia.MustCompile(sel))
	}
	return m
}()

// Page is a parsed wiki page being prepared for delivery. A Page is not safe
// for concurrent use; build one per request.
type Page struct {
	doc      *goquery.Document
	content  *goquery.Selection
	prefix   string
	messages Messages
	logger   *slog.Logger
	warn     sync.Once
}

// Option configures a Page.
type Option func(*Page)

// WithAccessKeyPrefix sets the modifier prefix written into access-key hints.
func WithAccessKeyPrefix(prefix string) Option {
	return func(p *Page) {
		p.prefix = prefix
	}
}

// WithMessages replaces the interface messages.
func WithMessages(m Messages) Option {
	return func(p *Page) {
		if m != nil {
			p.messages = m
		}
	}
}

// WithLogger sets the logger used for deprecation notices.
func WithLogger(l *slog.Logger) Option {
	return func(p *Page) {
		if l != nil {
			p.logger = l
		}
	}
}

// Parse reads an HTML document and locates its content region.
func Parse(r io.Reader, opts ...Option) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	return New(doc, opts...), nil
}

// ParseString is Parse over an in-memory document.
func ParseString(s string, opts ...Option) (*Page, error) {
	return Parse(strings.NewReader(s), opts...)
}

// New wraps an already parsed document.
func New(doc *goquery.Document, opts ...Option) *Page {
	p := &Page{
		doc:      doc,
		prefix:   DefaultAccessKeyPrefix,
		messages: DefaultMessages(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.content = p.findContent()
	return p
}

func (p *Page) Document() *goquery.Document {
	return p.doc
}

// AccessKeyPrefix returns the prefix used for access-key hints.
func (p *Page) AccessKeyPrefix() string {
	return p.prefix
}

// Content returns the element holding the article, never nil.
func (p *Page) Content() *goquery.Selection {
	return p.content
}

// SetContent overrides the content region. A later RefreshContent keeps sel
// when no candidate element exists.
func (p *Page) SetContent(sel *goquery.Selection) {
	if sel != nil {
		p.content = sel.First()
	}
}

// RefreshContent looks the content region up again after the document changed.
func (p *Page) RefreshContent() *goquery.Selection {
	p.content = p.findContent()
	return p.content
}

func (p *Page) findContent() *goquery.Selection {
	for _, m := range contentMatchers {
		if sel := p.doc.FindMatcher(m).First(); sel.Length() > 0 {
			return sel
		}
	}
	if p.content != nil {
		return p.content
	}
	return p.doc.Selection.Slice(0, 0)
}

// Render writes the document as HTML.
func (p *Page) Render(w io.Writer) error {
	for _, n := range p.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return errors.Join(ErrRender, err)
		}
	}
	return nil
}

// HTML renders the document to a string.
func (p *Page) HTML() (string, error) {
	var b strings.Builder
	if err := p.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (p *Page) deprecated(name, use string) {
	p.warn.Do(func() {
		p.logger.Warn("deprecated call",
			slog.String("func", name),
			slog.String("use", use),
		)
	})
}
