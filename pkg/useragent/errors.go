package useragent

import "errors"

var (
	ErrEmptyUserAgent     = errors.New("empty user agent string")
	ErrMalformedUserAgent = errors.New("malformed user agent string")
)
