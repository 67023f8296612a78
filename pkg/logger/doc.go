// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// New creates a *slog.Logger configured by Option functions:
//
//   - WithEnvironment / WithDevelopment / WithProduction: presets per environment.
//   - WithFormat / WithTextFormatter / WithJSONFormatter: output format.
//   - WithLevel / WithLevelName: minimum level.
//   - WithAttr: static attributes.
//   - WithContextExtractors / WithContextValue: attributes pulled from context
//     on every record, e.g. the request id or the classified client.
//
// NewFromConfig builds the same logger from a Config populated from
// APP_ENV, APP_NAME, LOG_LEVEL and LOG_FORMAT.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("uafields"),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        useragent.LoggerExtractor(),
//	    ),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(r.Context(), "event tracked",
//	    logger.Event(name),
//	    logger.Duration(time.Since(start)),
//	)
//
// Error and Errors produce attributes only for non-nil errors, so
//
//	log.Info("operation finished", logger.Error(err))
//
// needs no nil check.
package logger
