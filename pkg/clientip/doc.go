// Package clientip finds the address of the client behind a request.
//
// A Resolver walks its trusted proxy headers in order (X-Forwarded-For, then
// X-Real-IP by default) and takes the first valid address; RemoteAddr is the
// fallback. Addresses are returned in canonical form, so "::ffff:10.0.0.1"
// and "10.0.0.1" give the same rate-limit key. CIDR ranges and zoned
// addresses are not client addresses and are skipped.
//
// Only trust headers your proxy overwrites. A client can send any
// X-Forwarded-For it likes:
//
//	res := clientip.NewResolver(clientip.WithHeaders("CF-Connecting-IP"))
//	r.Use(clientip.Middleware(res))
//
// Handlers then read the address with FromContext, and LoggerExtractor adds
// it to every request log line.
package clientip
