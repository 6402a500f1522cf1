package wikiurl_test

import (
	"bytes"
	"log/slog"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wikikit/pkg/validator"
	"github.com/dmitrymomot/wikikit/pkg/wikiurl"
)

func newSite(t *testing.T, mutate func(*wikiurl.Config)) *wikiurl.Site {
	t.Helper()
	cfg := wikiurl.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	site, err := wikiurl.New(cfg)
	require.NoError(t, err)
	return site
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	cfg := wikiurl.DefaultConfig()
	cfg.ArticlePath = "/wiki/"
	cfg.Script = ""

	_, err := wikiurl.New(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, wikiurl.ErrInvalidSite)

	verrs := validator.ExtractValidationErrors(err)
	assert.True(t, verrs.Has("article_path"))
	assert.True(t, verrs.Has("script"))
}

func TestSite_GetURL(t *testing.T) {
	t.Parallel()

	site := newSite(t, nil)

	t.Run("defaults to current page", func(t *testing.T) {
		assert.Equal(t, "/wiki/Main_Page", site.GetURL("", nil))
		assert.Equal(t, "/wiki/Sandbox", site.ForPage("Sandbox").GetURL("", nil))
	})

	t.Run("encodes title", func(t *testing.T) {
		assert.Equal(t, "/wiki/Help:Contents/Sub_page", site.GetURL("Help:Contents/Sub page", nil))
	})

	t.Run("appends params", func(t *testing.T) {
		got := site.GetURL("Help:Contents", url.Values{"action": {"edit"}, "section": {"2"}})
		assert.Equal(t, "/wiki/Help:Contents?action=edit&section=2", got)
	})

	t.Run("encodes param values", func(t *testing.T) {
		got := site.GetURL("X", url.Values{"summary": {"a b&c"}})
		assert.Equal(t, "/wiki/X?summary=a+b%26c", got)
	})

	t.Run("params sorted and fully escaped", func(t *testing.T) {
		got := site.GetURL("X", url.Values{"z": {"1"}, "a": {"it's (1)!"}})
		assert.Equal(t, "/wiki/X?a=it%27s+%281%29%21&z=1", got)
	})

	t.Run("empty params add nothing", func(t *testing.T) {
		assert.Equal(t, "/wiki/X", site.GetURL("X", url.Values{}))
	})

	t.Run("article path with query", func(t *testing.T) {
		s := newSite(t, func(c *wikiurl.Config) { c.ArticlePath = "/w/index.php?title=$1" })
		assert.Equal(t, "/w/index.php?title=X&action=history", s.GetURL("X", url.Values{"action": {"history"}}))
	})
}

func TestSite_WikiGetlink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	site, err := wikiurl.New(wikiurl.DefaultConfig(), wikiurl.WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, site.GetURL("A b", nil), site.WikiGetlink("A b", nil))
	assert.Equal(t, site.GetURL("", nil), site.WikiGetlink("", nil))
	assert.Equal(t, 1, strings.Count(buf.String(), "deprecated call"))
}

func TestSite_WikiScript(t *testing.T) {
	t.Parallel()

	site := newSite(t, func(c *wikiurl.Config) {
		c.Script = "/index.php"
		c.LoadScript = "https://cdn.example.org/load.php"
	})

	tests := []struct {
		name string
		want string
	}{
		{"", "/index.php"},
		{"index", "/index.php"},
		{"load", "https://cdn.example.org/load.php"},
		{"api", "/w/api.php"},
		{"rest", "/w/rest.php"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, site.WikiScript(tt.name), tt.name)
	}
}
