package wikiurl

import "errors"

// ErrInvalidSite is returned by New when the configuration cannot produce links.
var ErrInvalidSite = errors.New("wikiurl: invalid site configuration")
