package htmltag

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newJSONLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestWithTraceLogger(t *testing.T) {
	if !TracingEnabled {
		t.Skip("Tracing disabled - skipping trace logger test")
		return
	}

	var buf, other bytes.Buffer
	ctx := WithTraceLogger(context.Background(), newJSONLogger(&buf))
	ctx = WithTraceLogger(ctx, newJSONLogger(&other))

	tlog := getTraceLogFromContext(ctx)
	require.NotNil(t, tlog)
	tlog.Debug("test message")

	require.Contains(t, buf.String(), "test message")
	require.Empty(t, other.String(), "the first logger attached wins")
}

func TestWithSpan(t *testing.T) {
	if !TracingEnabled {
		t.Skip("Tracing disabled - skipping span test")
		return
	}

	ctx, span := WithSpan(context.Background(), "test_operation")
	require.NotEmpty(t, span.ID)
	require.Equal(t, "test_operation", span.Name)
	require.Empty(t, span.ParentID)
	require.False(t, span.Start.IsZero())

	_, span2 := WithSpan(ctx, "nested_operation")
	require.Equal(t, span.ID, span2.ParentID)
	require.NotEqual(t, span.ID, span2.ID)
}

func TestStartSpan(t *testing.T) {
	if !TracingEnabled {
		t.Skip("Tracing disabled - skipping StartSpan test")
		return
	}

	var buf bytes.Buffer
	ctx := WithTraceLogger(context.Background(), newJSONLogger(&buf))
	_, span := StartSpan(ctx, "test_function")
	time.Sleep(time.Millisecond)
	span.End()

	output := buf.String()
	for _, s := range []string{"START", "END", "span_id", "span_name", "test_function", "duration"} {
		require.Contains(t, output, s)
	}
}

func TestTraceEventAndError(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithTraceLogger(context.Background(), newJSONLogger(&buf))
	ctx, _ = WithSpan(ctx, "test_span")

	TraceEvent(ctx, "scanning", slog.String("production", "tag name"), slog.Int("pos", 42))
	TraceError(ctx, errors.New("test error"), "error occurred")

	output := buf.String()
	if !TracingEnabled {
		require.Empty(t, output, "no output in notrace builds")
		return
	}
	for _, s := range []string{"scanning", "tag name", "42", "span_id", "error occurred", "test error", "ERROR"} {
		require.Contains(t, output, s)
	}
}

func TestNullLogger(t *testing.T) {
	ctx := context.Background()
	tlog := getTraceLogFromContext(ctx)
	require.NotNil(t, tlog)

	require.NotPanics(t, func() {
		tlog.Debug("this should not output anything")
		TraceEvent(ctx, "test event")
		TraceError(ctx, errors.New("test"), "test error")
		_, span := StartSpan(ctx, "no logger")
		span.End()
	})
}

func TestSpanIDGeneration(t *testing.T) {
	if !TracingEnabled {
		t.Skip("Tracing disabled - skipping span ID generation test")
		return
	}

	ids := make(map[string]bool)
	for range 100 {
		id := generateSpanID()
		require.Len(t, id, 16) // 8 bytes = 16 hex chars
		require.False(t, ids[id], "Span ID collision detected: %s", id)
		ids[id] = true
	}
}
