package wikidom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/wikikit/pkg/useragent"
	"github.com/dmitrymomot/wikikit/pkg/wikidom"
)

func TestAccessKeyPrefix(t *testing.T) {
	t.Parallel()

	profile := func(name, platform string, version float64, base string, layout int) useragent.Profile {
		return useragent.Profile{
			Name:          name,
			Platform:      platform,
			VersionNumber: version,
			VersionBase:   base,
			LayoutVersion: layout,
		}
	}

	tests := []struct {
		name    string
		profile useragent.Profile
		want    string
	}{
		{"opera", profile(useragent.BrowserOpera, useragent.PlatformMac, 12, "12", 2), "shift-esc-"},
		{"chrome mac", profile(useragent.BrowserChrome, useragent.PlatformMac, 120, "120", 537), "ctrl-option-"},
		{"chrome windows", profile(useragent.BrowserChrome, useragent.PlatformWindows, 120, "120", 537), "alt-shift-"},
		{"chrome linux", profile(useragent.BrowserChrome, useragent.PlatformLinux, 120, "120", 537), "alt-shift-"},
		{"new safari mac", profile(useragent.BrowserSafari, useragent.PlatformMac, 17, "17", 605), "ctrl-alt-"},
		{"old safari mac", profile(useragent.BrowserSafari, useragent.PlatformMac, 3.2, "3", 525), "ctrl-"},
		{"safari windows", profile(useragent.BrowserSafari, useragent.PlatformWindows, 5, "5", 533), "alt-"},
		{"firefox 14 mac", profile(useragent.BrowserFirefox, useragent.PlatformMac, 14, "14", 20100101), "ctrl-option-"},
		{"firefox 3.6 mac", profile(useragent.BrowserFirefox, useragent.PlatformMac, 3.6, "3", 20101203), "ctrl-"},
		{"konqueror", profile(useragent.BrowserKonqueror, useragent.PlatformLinux, 4.9, "4", 4), "ctrl-"},
		{"any mac browser", profile(useragent.BrowserUnknown, useragent.PlatformMac, 0, "", 0), "ctrl-"},
		{"firefox linux", profile(useragent.BrowserFirefox, useragent.PlatformLinux, 115, "115", 20100101), "alt-shift-"},
		{"firefox 9 windows", profile(useragent.BrowserFirefox, useragent.PlatformWindows, 9, "9", 20100101), "alt-shift-"},
		{"firefox 1.5", profile(useragent.BrowserFirefox, useragent.PlatformWindows, 1.5, "1", 20051111), "alt-"},
		{"iceweasel", profile(useragent.BrowserIceweasel, useragent.PlatformLinux, 24.5, "24", 20140429), "alt-shift-"},
		{"msie", profile(useragent.BrowserMSIE, useragent.PlatformWindows, 11, "11", 7), "alt-"},
		{"unknown", useragent.MustParse(""), "alt-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, wikidom.AccessKeyPrefix(tt.profile))
		})
	}
}

func TestTooltipWithPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title  string
		prefix string
		want   string
	}{
		{"Edit this page [e]", "alt-shift-", "Edit this page [alt-shift-e]"},
		{"Edit this page [alt-shift-e]", "ctrl-", "Edit this page [ctrl-e]"},
		{"Search [ctrl-option-f]", "alt-", "Search [alt-f]"},
		{"Opera [shift-esc-o]", "ctrl-alt-", "Opera [ctrl-alt-o]"},
		{"No hint", "alt-", "No hint"},
		{"Hint not at end [e] here", "alt-", "Hint not at end [e] here"},
		{"Two keys [ab]", "alt-", "Two keys [ab]"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, wikidom.TooltipWithPrefix(tt.title, tt.prefix), tt.title)
	}
}

func TestStripAccessKeyHint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Printable version", wikidom.StripAccessKeyHint("Printable version [alt-shift-p]"))
	assert.Equal(t, "Plain", wikidom.StripAccessKeyHint(" Plain "))
}

func TestPage_UpdateTooltipAccessKeys(t *testing.T) {
	t.Parallel()

	t.Run("default nodes", func(t *testing.T) {
		page := loadArticle(t, wikidom.WithAccessKeyPrefix("ctrl-alt-"))
		assert.Equal(t, "ctrl-alt-", page.AccessKeyPrefix())
		assert.Equal(t, 2, page.UpdateTooltipAccessKeys())

		doc := page.Document()
		assert.Equal(t, "Printable version [ctrl-alt-p]", doc.Find("#t-print a").AttrOr("title", ""))
		assert.Equal(t, "Search the wiki [ctrl-alt-f]", doc.Find("#searchInput").AttrOr("title", ""))

		assert.Equal(t, 0, page.UpdateTooltipAccessKeys(), "already prefixed")
	})

	t.Run("explicit nodes", func(t *testing.T) {
		page := loadArticle(t, wikidom.WithProfile(useragent.Profile{
			Name:     useragent.BrowserChrome,
			Platform: useragent.PlatformMac,
		}))
		doc := page.Document()
		assert.Equal(t, 1, page.UpdateTooltipAccessKeys(doc.Find("#searchInput"), nil))
		assert.Equal(t, "Search the wiki [ctrl-option-f]", doc.Find("#searchInput").AttrOr("title", ""))
		assert.Equal(t, "Printable version [p]", doc.Find("#t-print a").AttrOr("title", ""))
	})

	t.Run("default prefix", func(t *testing.T) {
		page := loadArticle(t)
		assert.Equal(t, wikidom.DefaultAccessKeyPrefix, page.AccessKeyPrefix())
	})
}
