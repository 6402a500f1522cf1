package useragent_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/wikikit/pkg/useragent"
)

func TestParseBrowser_Ordering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ua   string
		want string
	}{
		{uaEdge, useragent.BrowserEdge},
		{uaOperaBlink, useragent.BrowserOpera},
		{uaChromeWin, useragent.BrowserChrome},
		{uaIceweasel, useragent.BrowserIceweasel},
		{uaKonqueror, useragent.BrowserKonqueror},
		{uaSafariMac, useragent.BrowserSafari},
		{"", useragent.BrowserUnknown},
	}

	for _, tt := range tests {
		got := useragent.ParseBrowser(strings.ToLower(tt.ua))
		assert.Equal(t, tt.want, got.Name, tt.ua)
	}
}

func TestParsePlatform(t *testing.T) {
	t.Parallel()

	assert.Equal(t, useragent.PlatformIPad, useragent.ParsePlatform("mozilla/5.0 (ipad; cpu os 17_0 like mac os x)"))
	assert.Equal(t, useragent.PlatformLinux, useragent.ParsePlatform("mozilla/5.0 (x11; cros x86_64 14541.0.0)"))
	assert.Equal(t, useragent.PlatformUnknown, useragent.ParsePlatform(""))
}

func TestParseLayout(t *testing.T) {
	t.Parallel()

	layout, v := useragent.ParseLayout("something without an engine")
	assert.Equal(t, useragent.LayoutUnknown, layout)
	assert.Zero(t, v)
}
