// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown.
//
// Run blocks until the supplied context is cancelled or the process receives
// SIGINT or SIGTERM, then calls http.Server.Shutdown bounded by the shutdown
// timeout. Construction goes through New or NewFromConfig with functional
// options:
//
//	srv := httpserver.NewFromConfig(cfg.Server,
//	    httpserver.WithLogger(log),
//	    httpserver.OnStart(func(addr string) { log.Info("listening", "addr", addr) }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// HealthHandler serves liveness and readiness probes from a list of named
// checks.
//
// Errors returned by Run and Shutdown are joined with ErrStart or ErrShutdown
// so callers can test them with errors.Is.
package httpserver
