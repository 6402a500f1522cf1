package i18n

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
)

// DefaultLanguage is the fallback language of a Catalog.
const DefaultLanguage = "en"

// docLanguage holds message documentation in MediaWiki message directories.
const docLanguage = "qqq"

// Catalog holds interface messages for several languages. It is read-only
// after Load and safe for concurrent use.
type Catalog struct {
	messages map[string]map[string]string
	fallback string
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	fallback string
	parsers  []Parser
	logger   *slog.Logger
}

// WithFallbackLanguage sets the language whose messages fill gaps in every
// other language. The default is DefaultLanguage.
func WithFallbackLanguage(lang string) Option {
	return func(o *loadOptions) {
		if lang != "" {
			o.fallback = Normalize(lang)
		}
	}
}

// WithParsers replaces DefaultParsers.
func WithParsers(parsers ...Parser) Option {
	return func(o *loadOptions) {
		if len(parsers) > 0 {
			o.parsers = parsers
		}
	}
}

// WithLogger logs skipped files and the loaded languages.
func WithLogger(l *slog.Logger) Option {
	return func(o *loadOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Load reads every "<lang>.<ext>" file at the root of fsys, e.g. en.json and
// de.yaml. Files with an unknown extension and the "qqq" documentation file
// are skipped.
func Load(ctx context.Context, fsys fs.FS, opts ...Option) (*Catalog, error) {
	o := &loadOptions{
		fallback: DefaultLanguage,
		parsers:  DefaultParsers(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("i18n: read message directory: %w", err)
	}

	c := &Catalog{messages: make(map[string]map[string]string), fallback: o.fallback}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() {
			continue
		}

		parser, base, ok := parserFor(o.parsers, e.Name())
		if !ok {
			o.logger.DebugContext(ctx, "skipping message file", slog.String("file", e.Name()))
			continue
		}
		lang := Normalize(base)
		if lang == docLanguage || !IsValidCode(lang) {
			continue
		}

		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", e.Name(), err)
		}
		msgs, err := parser.Parse(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", e.Name(), err)
		}

		if c.messages[lang] == nil {
			c.messages[lang] = msgs
		} else {
			maps.Copy(c.messages[lang], msgs)
		}
	}

	if len(c.messages) == 0 {
		return nil, ErrNoMessages
	}
	o.logger.InfoContext(ctx, "interface messages loaded", slog.Any("languages", c.Languages()))
	return c, nil
}

// LoadDir is Load over a directory on disk.
func LoadDir(ctx context.Context, dir string, opts ...Option) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("i18n: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("i18n: %s is not a directory", dir)
	}
	return Load(ctx, os.DirFS(dir), opts...)
}

// Languages lists the loaded languages in sorted order.
func (c *Catalog) Languages() []string {
	return slices.Sorted(maps.Keys(c.messages))
}

// Fallback is the language used to fill gaps.
func (c *Catalog) Fallback() string {
	return c.fallback
}

// Has reports whether lang has its own message file.
func (c *Catalog) Has(lang string) bool {
	_, ok := c.messages[Normalize(lang)]
	return ok
}

// Messages returns every message for lang. Gaps are filled from the base
// language ("de" for "de-at") and then from the fallback language. The
// returned map is a copy.
func (c *Catalog) Messages(lang string) map[string]string {
	out := make(map[string]string)
	for _, l := range c.chain(lang) {
		for k, v := range c.messages[l] {
			if _, ok := out[k]; !ok {
				out[k] = v
			}
		}
	}
	return out
}

// Lookup returns the text of key in lang, following the same chain as
// Messages.
func (c *Catalog) Lookup(lang, key string) (string, bool) {
	for _, l := range c.chain(lang) {
		if v, ok := c.messages[l][key]; ok {
			return v, true
		}
	}
	return "", false
}

func (c *Catalog) chain(lang string) []string {
	lang = Normalize(lang)
	chain := make([]string, 0, 3)
	if lang != "" {
		chain = append(chain, lang)
		if base, _, ok := strings.Cut(lang, "-"); ok {
			chain = append(chain, base)
		}
	}
	if !slices.Contains(chain, c.fallback) {
		chain = append(chain, c.fallback)
	}
	return chain
}
