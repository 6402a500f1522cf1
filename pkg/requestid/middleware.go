package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header is the request and response header carrying the ID.
const Header = "X-Request-ID"

const maxIDLength = 128

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Option configures Middleware.
type Option func(*options)

type options struct {
	header   string
	generate func() string
}

// WithHeader reads and writes the ID under a different header name.
func WithHeader(name string) Option {
	return func(o *options) {
		if name != "" {
			o.header = http.CanonicalHeaderKey(name)
		}
	}
}

// WithGenerator replaces the UUID generator.
func WithGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.generate = fn
		}
	}
}

// Middleware reuses a well-formed client supplied ID or generates a new one,
// stores it in the request context and echoes it in the response header.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	o := &options{header: Header, generate: newID}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(o.header)
			if !IsValid(id) {
				id = o.generate()
			}
			w.Header().Set(o.header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// IsValid reports whether id is safe to echo back and log.
func IsValid(id string) bool {
	return id != "" && len(id) <= maxIDLength && validID.MatchString(id)
}

// newID prefers time-ordered v7 UUIDs so IDs sort with log timestamps.
func newID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
