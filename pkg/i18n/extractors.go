package i18n

import (
	"net/http"
	"strings"
)

// Request sources of a language choice. UseLangParam follows the wiki
// convention of ?uselang=de.
const (
	UseLangParam   = "uselang"
	LanguageCookie = "language"
)

// Extractor returns the language a request asks for, or "".
type Extractor func(r *http.Request) string

// FromQuery reads the language from query parameter name.
func FromQuery(name string) Extractor {
	return func(r *http.Request) string {
		return strings.TrimSpace(r.URL.Query().Get(name))
	}
}

// FromCookie reads the language from cookie name.
func FromCookie(name string) Extractor {
	return func(r *http.Request) string {
		if c, err := r.Cookie(name); err == nil {
			return strings.TrimSpace(c.Value)
		}
		return ""
	}
}

// Chain tries extractors in order and returns the first language that
// Match accepts against supported. Accept-Language is consulted last, and
// fallback is returned when nothing fits.
func Chain(supported []string, fallback string, extractors ...Extractor) Extractor {
	normalized := make([]string, len(supported))
	for i, s := range supported {
		normalized[i] = Normalize(s)
	}

	return func(r *http.Request) string {
		for _, ex := range extractors {
			if ex == nil {
				continue
			}
			if lang := Match(ex(r), normalized); lang != "" {
				return lang
			}
		}
		return Negotiate(r.Header.Get("Accept-Language"), normalized, fallback)
	}
}

// DefaultExtractor picks the language of c from ?uselang=, then the
// language cookie, then Accept-Language.
func (c *Catalog) DefaultExtractor() Extractor {
	return Chain(c.Languages(), c.fallback, FromQuery(UseLangParam), FromCookie(LanguageCookie))
}
