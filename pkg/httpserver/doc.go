// Package httpserver wraps net/http with graceful shutdown, environment
// driven configuration, and structured logging via slog.
//
// A Server is built through New with functional options or through
// NewFromConfig with an env-tagged Config. Run starts the listener in its
// own goroutine and blocks until the context is cancelled, an interrupt or
// TERM signal arrives, or the listener fails. Shutdown then drains in-flight
// requests within the configured deadline. Failures are wrapped with the
// ErrStart and ErrShutdown sentinels so callers can branch with errors.Is.
//
// # Usage
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
