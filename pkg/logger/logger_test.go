package logger

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New("debug", "console")
	require.NoError(t, err)
	assert.NotNil(t, l.Logger)

	_, err = New("loud", "json")
	assert.Error(t, err)
}

func TestContextLoggingAddsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	ctx := WithRequestID(context.Background(), "req-1")
	l.ErrorContext(ctx, "failed", ErrorField(errors.New("boom")), StringField("stock_code", "600519"))
	l.InfoContext(context.Background(), "no id")

	entries := logs.All()
	require.Len(t, entries, 2)

	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "600519", fields["stock_code"])
	assert.Equal(t, "boom", fields["error"])

	_, ok := entries[1].ContextMap()["request_id"]
	assert.False(t, ok)
}

func TestCallerPointsAtCallSite(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core, zap.AddCaller()))

	l.Info("direct")
	l.WarnContext(context.Background(), "with context")

	entries := logs.All()
	require.Len(t, entries, 2)
	for _, entry := range entries {
		require.True(t, entry.Caller.Defined, entry.Message)
		assert.Equal(t, "logger_test.go", filepath.Base(entry.Caller.File), entry.Message)
	}
}
