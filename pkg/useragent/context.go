package useragent

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithContext stores the classification result in ctx.
func WithContext(ctx context.Context, res Result) context.Context {
	return context.WithValue(ctx, contextKey{}, res)
}

// FromContext returns the classification result stored by Middleware.
func FromContext(ctx context.Context) (Result, bool) {
	if ctx == nil {
		return Result{}, false
	}
	res, ok := ctx.Value(contextKey{}).(Result)
	return res, ok
}

// LoggerExtractor returns a ContextExtractor for the logger that adds the
// classified fields of the current request under the "client" key.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		res, ok := FromContext(ctx)
		if !ok || res.IsEmpty() {
			return slog.Attr{}, false
		}
		return slog.Any("client", res), true
	}
}
