package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uafields/pkg/logger"
)

type traceKey struct{}

func traceExtractor(ctx context.Context) (slog.Attr, bool) {
	v, ok := ctx.Value(traceKey{}).(string)
	return slog.String("trace", v), ok
}

func TestNewContextHandler_NoExtractors(t *testing.T) {
	t.Parallel()

	base := slog.NewTextHandler(&bytes.Buffer{}, nil)
	assert.Same(t, base, logger.NewContextHandler(base, nil, nil))
}

func TestContextHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	empty := func(context.Context) (slog.Attr, bool) { return slog.Attr{}, true }
	h := logger.NewContextHandler(slog.NewTextHandler(&buf, nil), traceExtractor, empty)
	log := slog.New(h).With(slog.String("static", "yes"))

	ctx := context.WithValue(context.Background(), traceKey{}, "abc")
	log.InfoContext(ctx, "first")
	log.Info("second")

	out := buf.String()
	assert.Contains(t, out, `msg=first static=yes trace=abc`)
	assert.Contains(t, out, `msg=second static=yes`)
	assert.NotContains(t, out, `msg=second static=yes trace=`)
	assert.NotContains(t, out, `=<nil>`)
}

func TestContextHandler_Group(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(logger.NewContextHandler(slog.NewTextHandler(&buf, nil), traceExtractor)).WithGroup("req")

	log.InfoContext(context.WithValue(context.Background(), traceKey{}, "xyz"), "grouped", slog.Int("n", 1))
	assert.Contains(t, buf.String(), "req.n=1 req.trace=xyz")
}
