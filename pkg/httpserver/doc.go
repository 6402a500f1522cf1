// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server binds its listener eagerly so the real address is known (useful with
// ":0"), serves until the context is cancelled or the process receives
// SIGINT/SIGTERM, then drains in-flight requests within the shutdown timeout.
// Lifecycle events go to the slog.Logger passed with WithLogger.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// HealthCheckHandler answers liveness probes and, given checks, readiness
// probes. Start failures are joined with ErrStart and shutdown failures with
// ErrShutdown.
package httpserver
