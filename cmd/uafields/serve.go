package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uafields/pkg/clientip"
	"github.com/dmitrymomot/uafields/pkg/config"
	"github.com/dmitrymomot/uafields/pkg/httpserver"
	"github.com/dmitrymomot/uafields/pkg/logger"
	"github.com/dmitrymomot/uafields/pkg/metrics"
	"github.com/dmitrymomot/uafields/pkg/requestid"
	"github.com/dmitrymomot/uafields/pkg/track"
	"github.com/dmitrymomot/uafields/pkg/useragent"
)

type serviceConfig struct {
	Log     logger.Config
	Server  httpserver.Config
	Metrics metrics.Config
	// ProxyHeaders are trusted for the client address, highest priority first.
	ProxyHeaders []string `env:"HTTP_PROXY_HEADERS" envDefault:"X-Forwarded-For,X-Real-IP" envSeparator:","`
}

func newServeCmd() *cobra.Command {
	var (
		envFiles []string
		addr     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Long: `Serve exposes:

  GET  /classify?ua=...   fields of a user agent
  POST /track             event with client fields merged into its properties
  GET  /health            liveness probe
  GET  /metrics           Prometheus metrics

Configuration is read from the environment and an optional .env file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(envFiles) > 0 {
				if err := config.LoadEnv(envFiles...); err != nil {
					return err
				}
			}

			var cfg serviceConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "additional .env files to load")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	return cmd
}

func serve(ctx context.Context, cfg serviceConfig) error {
	log := logger.NewFromConfig(cfg.Log,
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			useragent.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	if err := srv.Run(ctx, newHandler(log, metrics.New(cfg.Metrics), cfg.ProxyHeaders...)); err != nil {
		log.ErrorContext(ctx, "server stopped with error", logger.Error(err))
		return err
	}
	return nil
}

func newHandler(log *slog.Logger, collector *metrics.Collector, proxyHeaders ...string) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware(proxyHeaders...),
		useragent.Middleware,
		track.AccessLog(log, "/health", "/metrics"),
	)
	r.Mount("/", track.Router(track.RouterOptions{
		Logger:     log,
		Metrics:    collector.Handler(),
		Middleware: []func(http.Handler) http.Handler{collector.Middleware},
	}))
	return r
}
