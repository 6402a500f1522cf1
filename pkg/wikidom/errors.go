package wikidom

import "errors"

var (
	ErrParse  = errors.New("wikidom: failed to parse document")
	ErrRender = errors.New("wikidom: failed to render document")
)
