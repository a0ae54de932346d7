package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestNewWithWriter_EmitsJSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("cart", "info", &buf)

	l.Info("item added")

	m := logLine(t, &buf)
	assert.Equal(t, "cart", m["component"])
	assert.Equal(t, "item added", m["msg"])
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("cart", "warn", &buf)

	l.Info("should be dropped")
	assert.Zero(t, buf.Len())

	l.Warn("should be kept")
	assert.NotZero(t, buf.Len())
}

func TestNewWithWriter_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("cart", "nonsense", &buf)

	l.Debug("dropped")
	assert.Zero(t, buf.Len())

	l.Info("kept")
	assert.NotZero(t, buf.Len())
}

func TestCorrelationID_RoundTrip(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "corr-42")
	assert.Equal(t, "corr-42", CorrelationIDFromContext(ctx))
}

func TestCorrelationID_MissingIsEmpty(t *testing.T) {
	assert.Equal(t, "", CorrelationIDFromContext(context.Background()))
}

func TestUserID_RoundTrip(t *testing.T) {
	ctx := WithUserID(context.Background(), "user-7")
	assert.Equal(t, "user-7", UserIDFromContext(ctx))
}

func TestFromContext_DefaultWhenAbsent(t *testing.T) {
	assert.Equal(t, slog.Default(), FromContext(context.Background()))
}

func TestFromContext_ReturnsStoredLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("checkout", "info", &buf)
	ctx := NewContext(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
}

func TestWithContext_AddsCorrelationAndUser(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("checkout", "info", &buf)

	ctx := WithCorrelationID(context.Background(), "corr-1")
	ctx = WithUserID(ctx, "user-1")

	WithContext(ctx, l).Info("placing order")

	m := logLine(t, &buf)
	assert.Equal(t, "corr-1", m["correlation_id"])
	assert.Equal(t, "user-1", m["user_id"])
}

func TestWithContext_NoFieldsWithoutContextValues(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("checkout", "info", &buf)

	WithContext(context.Background(), l).Info("plain")

	m := logLine(t, &buf)
	_, hasCorr := m["correlation_id"]
	_, hasTrace := m["trace_id"]
	assert.False(t, hasCorr)
	assert.False(t, hasTrace)
}
