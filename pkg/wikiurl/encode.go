package wikiurl

import (
	"net/url"
	"strings"
)

var (
	// url.QueryEscape keeps '~' and writes spaces as '+'. Literal '+' is
	// already escaped to %2B, so both fixups are unambiguous.
	rawFixup = strings.NewReplacer("+", "%20", "~", "%7E")

	titleFixup = strings.NewReplacer("%20", "_", "%3A", ":", "%2F", "/")
)

// RawURLEncode percent-encodes s for use in any URL component. Only ASCII
// letters, digits and "-_." are left as is; every other byte, including
// "!'()*~", becomes an upper-case %XX escape.
func RawURLEncode(s string) string {
	return rawFixup.Replace(url.QueryEscape(s))
}

// WikiURLEncode encodes a page title for an article path: like RawURLEncode
// but spaces become '_' and ':' and '/' stay literal.
func WikiURLEncode(s string) string {
	return titleFixup.Replace(RawURLEncode(s))
}
