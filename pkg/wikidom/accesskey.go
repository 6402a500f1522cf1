package wikidom

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dmitrymomot/wikikit/pkg/useragent"
)

// DefaultAccessKeyPrefix is used for browsers without a more specific rule.
const DefaultAccessKeyPrefix = "alt-"

// defaultTooltipNodes are the elements that carry access keys in stock skins.
const defaultTooltipNodes = "#column-one a, #mw-head a, #mw-panel a, #p-logo a, input, label"

// tooltipAccessKey matches a trailing hint such as "[alt-shift-e]"; the key is group 6.
var tooltipAccessKey = regexp.MustCompile(`\[(ctrl-)?(option-)?(alt-)?(shift-)?(esc-)?(.)\]$`)

// AccessKeyPrefix returns the modifier prefix that activates access keys in
// the browser described by profile.
func AccessKeyPrefix(profile useragent.Profile) string {
	switch {
	case profile.Is(useragent.BrowserOpera):
		return "shift-esc-"

	case profile.Is(useragent.BrowserChrome):
		if profile.On(useragent.PlatformMac) {
			return "ctrl-option-"
		}
		// alt-shift avoids browser menu shortcuts such as alt-e and alt-f
		return "alt-shift-"

	case !profile.On(useragent.PlatformWindows) &&
		profile.Is(useragent.BrowserSafari) &&
		profile.LayoutVersion > 526:
		return "ctrl-alt-"

	case profile.On(useragent.PlatformMac) &&
		profile.Is(useragent.BrowserFirefox) &&
		profile.VersionNumber >= 14:
		return "ctrl-option-"

	case !(profile.On(useragent.PlatformWindows) && profile.Is(useragent.BrowserSafari)) &&
		(profile.Is(useragent.BrowserSafari) ||
			profile.On(useragent.PlatformMac) ||
			profile.Is(useragent.BrowserKonqueror)):
		return "ctrl-"

	case (profile.Is(useragent.BrowserFirefox) || profile.Is(useragent.BrowserIceweasel)) &&
		profile.VersionBase > "1":
		return "alt-shift-"
	}

	return DefaultAccessKeyPrefix
}

// WithProfile derives the access-key prefix from a browser profile.
func WithProfile(profile useragent.Profile) Option {
	return WithAccessKeyPrefix(AccessKeyPrefix(profile))
}

// TooltipWithPrefix rewrites a trailing access-key hint in title to use prefix.
// Titles without a hint are returned unchanged.
func TooltipWithPrefix(title, prefix string) string {
	if !tooltipAccessKey.MatchString(title) {
		return title
	}
	return tooltipAccessKey.ReplaceAllString(title, "["+strings.ReplaceAll(prefix, "$", "$$")+"${6}]")
}

// StripAccessKeyHint removes a trailing access-key hint and surrounding space.
func StripAccessKeyHint(title string) string {
	return strings.TrimSpace(tooltipAccessKey.ReplaceAllString(title, ""))
}

// UpdateTooltipAccessKeys rewrites the access-key hints in the title attribute
// of nodes to the page's prefix. With no nodes, the elements that stock skins
// give access keys are updated. It returns the number of titles changed.
func (p *Page) UpdateTooltipAccessKeys(nodes ...*goquery.Selection) int {
	if len(nodes) == 0 {
		nodes = []*goquery.Selection{p.doc.Find(defaultTooltipNodes)}
	}

	changed := 0
	for _, sel := range nodes {
		if sel == nil {
			continue
		}
		sel.Each(func(_ int, s *goquery.Selection) {
			title, ok := s.Attr("title")
			if !ok || title == "" {
				return
			}
			if updated := TooltipWithPrefix(title, p.prefix); updated != title {
				s.SetAttr("title", updated)
				changed++
			}
		})
	}
	return changed
}
