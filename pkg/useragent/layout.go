package useragent

import (
	"regexp"
	"strconv"
)

type layoutPattern struct {
	name  string
	regex *regexp.Regexp
}

// WebKit UAs also say "KHTML, like Gecko", so order matters.
var layoutPatterns = []layoutPattern{
	{LayoutWebKit, regexp.MustCompile(`applewebkit/(\d+)`)},
	{LayoutPresto, regexp.MustCompile(`presto/(\d+)`)},
	{LayoutTrident, regexp.MustCompile(`trident/(\d+)`)},
	{LayoutKHTML, regexp.MustCompile(`khtml/(\d+)`)},
	{LayoutGecko, regexp.MustCompile(`gecko/(\d+)`)},
}

// ParseLayout returns the rendering engine of a lower-cased user agent string
// and the integer part of its build number, or 0 when it carries none.
func ParseLayout(lowerUA string) (string, int) {
	for _, p := range layoutPatterns {
		m := p.regex.FindStringSubmatch(lowerUA)
		if m == nil {
			continue
		}
		v, err := strconv.Atoi(m[1])
		if err != nil {
			v = 0
		}
		return p.name, v
	}
	return LayoutUnknown, 0
}
