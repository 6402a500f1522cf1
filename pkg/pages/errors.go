package pages

import "errors"

var (
	ErrNotFound      = errors.New("page not found")
	ErrInvalidTitle  = errors.New("invalid page title")
	ErrInvalidConfig = errors.New("invalid page source configuration")

	ErrFailedToRead       = errors.New("failed to read page source")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")

	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
	ErrOperationTimeout   = errors.New("operation timed out")
	ErrOperationCanceled  = errors.New("operation canceled")
)
