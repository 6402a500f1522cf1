package i18n

import "errors"

var (
	// ErrInvalidMessages is returned when a message file does not hold a
	// mapping of keys to text.
	ErrInvalidMessages = errors.New("i18n: invalid message file")
	// ErrNoMessages is returned when a directory holds no message files.
	ErrNoMessages = errors.New("i18n: no message files found")
)
