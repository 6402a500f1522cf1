package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders are consulted in order before falling back to RemoteAddr.
var DefaultHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// Resolver finds the originating client address of a request.
type Resolver struct {
	headers []string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHeaders replaces the trusted proxy headers, highest priority first.
// With no headers only RemoteAddr is used, which is right when the service
// is not behind a proxy.
func WithHeaders(headers ...string) Option {
	return func(r *Resolver) {
		r.headers = headers
	}
}

// NewResolver creates a Resolver trusting DefaultHeaders.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{headers: DefaultHeaders}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IP returns the client address, or "" when nothing valid was found.
// Header values may list several addresses; the first valid one wins.
func (res *Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		for candidate := range strings.SplitSeq(r.Header.Get(h), ",") {
			if ip := normalize(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

// GetIP resolves the client address with the default headers.
func GetIP(r *http.Request) string {
	return defaultResolver.IP(r)
}

var defaultResolver = NewResolver()

// normalize returns the canonical form of s, or "" when s is not a single
// IPv4 or IPv6 address. Zoned addresses are rejected.
func normalize(s string) string {
	s = strings.Trim(strings.TrimSpace(s), "[]")
	if s == "" {
		return ""
	}
	addr, err := netip.ParseAddr(s)
	if err != nil || addr.Zone() != "" {
		return ""
	}
	return addr.Unmap().String()
}
