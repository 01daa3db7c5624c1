package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_WritesFieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLogger(zap.New(core))
	ctx := context.Background()

	log.Debug(ctx, "request", "path", "/api/article/allArticles")
	log.With("list", "users").Warn(ctx, "fetch failed", "status", 500)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "/api/article/allArticles", entries[0].ContextMap()["path"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "fetch failed", entries[1].Message)
	assert.Equal(t, "users", entries[1].ContextMap()["list"])
	assert.EqualValues(t, 500, entries[1].ContextMap()["status"])
}

func TestNew_SelectsBackend(t *testing.T) {
	var buf bytes.Buffer

	l, err := New(BackendSlog, "info", &buf)
	require.NoError(t, err)
	_, ok := l.(*SlogLogger)
	assert.True(t, ok)

	l, err = New(BackendZap, "warn", &buf)
	require.NoError(t, err)
	_, ok = l.(*ZapLogger)
	assert.True(t, ok)

	_, err = New("zerolog", "info", &buf)
	require.Error(t, err)
}
