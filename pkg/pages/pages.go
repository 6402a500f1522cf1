package pages

import (
	"context"
	"strings"

	"github.com/dmitrymomot/wikikit/pkg/wikiurl"
)

// Extension is appended to the encoded title to form a page file name.
const Extension = ".html"

// Source reads rendered page HTML by title.
type Source interface {
	// Read returns the page HTML. Missing pages wrap ErrNotFound.
	Read(ctx context.Context, title string) ([]byte, error)
	// Exists reports whether the page can be read.
	Exists(ctx context.Context, title string) bool
}

// FileName maps a title to its file name: wiki-title encoding plus
// Extension, so "Help:Contents" is stored as "Help:Contents.html" and
// "Sand box/Sub" as "Sand_box/Sub.html".
func FileName(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrInvalidTitle
	}
	name := wikiurl.WikiURLEncode(title)
	for _, seg := range strings.Split(name, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return "", ErrInvalidTitle
		}
	}
	return name + Extension, nil
}
