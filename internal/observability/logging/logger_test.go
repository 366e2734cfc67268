package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"nc-news/internal/handler/http/requestid"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"invalid", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_JSONFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", "json")

	logger.Debug("hidden")
	assert.Zero(t, buf.Len(), "debug should be filtered at info level")

	logger.Info("article fetched", slog.Int64("article_id", 1))
	entry := decodeLine(t, &buf)
	assert.Equal(t, "article fetched", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.EqualValues(t, 1, entry["article_id"])
	assert.NotContains(t, entry, "source")
}

func TestNew_SourceAtWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", "json")

	logger.Warn("slow query")
	entry := decodeLine(t, &buf)
	assert.Contains(t, entry, "source")
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "debug", "text")

	logger.Debug("hello", slog.String("topic", "mitch"))
	out := buf.String()
	assert.Contains(t, out, "msg=hello")
	assert.Contains(t, out, "topic=mitch")
}

func TestNewLogger(t *testing.T) {
	assert.NotNil(t, NewLogger("info", "json"))
	assert.NotNil(t, NewLogger("debug", "text"))
}

func TestWithRequestID(t *testing.T) {
	t.Run("adds request id", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := requestid.WithRequestID(context.Background(), "req-123")

		WithRequestID(ctx, New(&buf, "info", "json")).Info("x")
		assert.Equal(t, "req-123", decodeLine(t, &buf)["request_id"])
	})

	t.Run("adds trace id from span context", func(t *testing.T) {
		var buf bytes.Buffer
		traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
		spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
		sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
		ctx := trace.ContextWithSpanContext(context.Background(), sc)

		WithRequestID(ctx, New(&buf, "info", "json")).Info("x")
		entry := decodeLine(t, &buf)
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", entry["trace_id"])
		assert.NotContains(t, entry, "request_id")
	})

	t.Run("returns logger unchanged without ids", func(t *testing.T) {
		logger := New(&bytes.Buffer{}, "info", "json")
		assert.Same(t, logger, WithRequestID(context.Background(), logger))
	})
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := WithFields(New(&buf, "info", "json"), map[string]any{
		"topic": "cats",
		"limit": 10,
	})

	logger.Info("listing")
	entry := decodeLine(t, &buf)
	assert.Equal(t, "cats", entry["topic"])
	assert.EqualValues(t, 10, entry["limit"])
}

func TestContextLogger(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))

	var buf bytes.Buffer
	logger := New(&buf, "info", "text")
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	FromContext(ctx).Info("from context")
	assert.True(t, strings.Contains(buf.String(), "from context"))
}
