package track

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/uafields/pkg/httpserver"
	"github.com/dmitrymomot/uafields/pkg/logger"
)

// RouterOptions configures the endpoints mounted by Router.
type RouterOptions struct {
	Logger *slog.Logger
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
	// Checks turn /health into a readiness probe.
	Checks []httpserver.Check
	// Middleware wraps /classify and /track only.
	Middleware []func(http.Handler) http.Handler
}

// Router returns the service routes:
//
//	GET  /classify?ua=...
//	POST /track
//	GET  /health
//	GET  /metrics
//
// Middleware is left to the caller.
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	h := handlers{log: log.With(logger.Component("track"))}

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(opts.Middleware...)
		r.Get("/classify", h.classify)
		r.Post("/track", h.track)
	})
	r.Get("/health", httpserver.HealthHandler(log, opts.Checks...))
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}
	return r
}
