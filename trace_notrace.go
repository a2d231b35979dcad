//go:build notrace

package htmltag

import (
	"context"
	"log/slog"
	"time"
)

// No-op implementations when built with -tags notrace

type Span interface {
	End()
}

type noOpSpan struct{}

func (s *noOpSpan) End() {}

type SpanInfo struct {
	ID       string
	ParentID string
	Name     string
	Start    time.Time
}

var TracingEnabled = false

func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	return ctx
}

func WithSpan(ctx context.Context, name string) (context.Context, *SpanInfo) {
	return ctx, nil
}

func StartSpan(ctx context.Context, spanName string) (context.Context, Span) {
	return ctx, &noOpSpan{}
}

func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {}

func TraceError(ctx context.Context, err error, msg string, attrs ...slog.Attr) {}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func generateSpanID() string {
	return ""
}
