// Package httpserver provides a lightweight wrapper around net/http that
// adds graceful shutdown, configurable server timeouts and structured
// logging via slog.
//
// Run blocks until the context is cancelled, an interrupt/TERM signal is
// received or the listener fails, then shuts the server down using
// http.Server.Shutdown with a configurable deadline. Construction is done
// through New or NewFromConfig together with Option helpers such as
// WithAddr and WithLogger. Startup and shutdown errors are wrapped with the
// ErrStart and ErrShutdown sentinels so they can be inspected with
// errors.Is.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver
