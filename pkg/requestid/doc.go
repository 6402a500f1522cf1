// Package requestid tags every HTTP request with a correlation ID.
//
// Middleware keeps a valid X-Request-ID sent by the client (letters, digits,
// '-' and '_', at most 128 bytes) and otherwise generates a UUID. The ID is
// stored in the request context and returned in the response header:
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware())
//
// LoggerExtractor plugs the ID into the logger package, so every record
// logged with the request context carries request_id:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
