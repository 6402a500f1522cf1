package useragent

import (
	"regexp"
	"strings"
)

// Browser is a browser name and its raw version string.
type Browser struct {
	Name    string
	Version string
}

// BrowserPattern detects one browser. All Keywords must be present and no
// Excludes; the first capture group of Regex is the version.
type BrowserPattern struct {
	Name      string
	Keywords  []string
	Excludes  []string
	Regex     *regexp.Regexp
	OrderHint int
}

func extractVersion(ua string, regex *regexp.Regexp) string {
	if regex == nil {
		return ""
	}
	matches := regex.FindStringSubmatch(ua)
	if len(matches) < 2 {
		return ""
	}
	version := matches[1]
	if len(version) > 20 {
		version = version[:20]
	}
	return version
}

func matchPattern(ua string, pattern BrowserPattern) bool {
	for _, keyword := range pattern.Keywords {
		if !strings.Contains(ua, keyword) {
			return false
		}
	}
	for _, exclude := range pattern.Excludes {
		if strings.Contains(ua, exclude) {
			return false
		}
	}
	return true
}

// Chromium derivatives and Iceweasel carry their parent's token too, so they
// are listed first. Sorted by OrderHint in init.
var browserPatterns = []BrowserPattern{
	{
		Name:      BrowserEdge,
		Keywords:  []string{"edg/"},
		Regex:     regexp.MustCompile(`edg/([\d.]+)`),
		OrderHint: 10,
	},
	{
		Name:      BrowserEdge,
		Keywords:  []string{"edge/"},
		Regex:     regexp.MustCompile(`edge/([\d.]+)`),
		OrderHint: 15,
	},
	{
		Name:      BrowserOpera,
		Keywords:  []string{"opr/"},
		Regex:     regexp.MustCompile(`opr/([\d.]+)`),
		OrderHint: 20,
	},
	{
		// Opera 10+ freezes "Opera/9.80" and reports the real version separately.
		Name:      BrowserOpera,
		Keywords:  []string{"opera", "version/"},
		Regex:     regexp.MustCompile(`version/([\d.]+)`),
		OrderHint: 30,
	},
	{
		Name:      BrowserOpera,
		Keywords:  []string{"opera"},
		Regex:     regexp.MustCompile(`opera[/ ]([\d.]+)`),
		OrderHint: 35,
	},
	{
		Name:      BrowserKonqueror,
		Keywords:  []string{"konqueror"},
		Regex:     regexp.MustCompile(`konqueror/([\d.]+)`),
		OrderHint: 40,
	},
	{
		Name:      BrowserChrome,
		Keywords:  []string{"chrome/"},
		Regex:     regexp.MustCompile(`chrome/([\d.]+)`),
		OrderHint: 50,
	},
	{
		Name:      BrowserChrome,
		Keywords:  []string{"crios/"},
		Regex:     regexp.MustCompile(`crios/([\d.]+)`),
		OrderHint: 55,
	},
	{
		Name:      BrowserIceweasel,
		Keywords:  []string{"iceweasel"},
		Regex:     regexp.MustCompile(`iceweasel/([\d.]+)`),
		OrderHint: 60,
	},
	{
		Name:      BrowserFirefox,
		Keywords:  []string{"firefox/"},
		Regex:     regexp.MustCompile(`firefox/([\d.]+)`),
		OrderHint: 70,
	},
	{
		Name:      BrowserSafari,
		Keywords:  []string{"safari"},
		Excludes:  []string{"chrome", "crios", "android"},
		Regex:     regexp.MustCompile(`version/([\d.]+)`),
		OrderHint: 80,
	},
	{
		Name:      BrowserMSIE,
		Keywords:  []string{"msie"},
		Regex:     regexp.MustCompile(`msie ([\d.]+)`),
		OrderHint: 90,
	},
	{
		Name:      BrowserMSIE,
		Keywords:  []string{"trident/"},
		Regex:     regexp.MustCompile(`rv:([\d.]+)`),
		OrderHint: 95,
	},
}

// ParseBrowser returns the first browser whose pattern matches lowerUA.
func ParseBrowser(lowerUA string) Browser {
	for _, pattern := range browserPatterns {
		if matchPattern(lowerUA, pattern) {
			return Browser{
				Name:    pattern.Name,
				Version: extractVersion(lowerUA, pattern.Regex),
			}
		}
	}

	return Browser{Name: BrowserUnknown}
}
