package wikiurl

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/wikikit/pkg/cache"
)

const paramPatternCacheSize = 256

var paramPatterns = cache.New[string, *regexp.Regexp](paramPatternCacheSize)

// GetParamValue returns the value of query parameter param in rawURL.
// Only the part before '#' is searched; when the parameter repeats, the last
// occurrence wins. '+' decodes to a space. The boolean is false when the
// parameter is absent.
//
// A value with a malformed escape, or one that decodes to invalid UTF-8, is
// returned with only '+' decoded. A param that is not valid UTF-8 is never
// found.
func GetParamValue(param, rawURL string) (string, bool) {
	if !utf8.ValidString(param) {
		return "", false
	}
	re, err := paramPatterns.GetOrCreate(param, func() (*regexp.Regexp, error) {
		return regexp.Compile(`^[^#]*[&?]` + regexp.QuoteMeta(param) + `=([^&#]*)`)
	})
	if err != nil || re == nil {
		return "", false
	}

	m := re.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}

	value := strings.ReplaceAll(m[1], "+", "%20")
	decoded, err := url.PathUnescape(value)
	if err != nil || !utf8.ValidString(decoded) {
		return strings.ReplaceAll(m[1], "+", " "), true
	}
	return decoded, true
}

// RequestParamValue is GetParamValue against the URL of the current request.
func RequestParamValue(r *http.Request, param string) (string, bool) {
	return GetParamValue(param, r.URL.RequestURI())
}
