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

func TestZapLogger_LevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLogger(zap.New(core))
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	want := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range entries {
		assert.Equal(t, want[i], e.Level)
	}
	assert.Equal(t, "inf", entries[1].Message)
	assert.Equal(t, int64(2), entries[1].ContextMap()["b"])
}

func TestZapLogger_With(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := NewZapLogger(zap.New(core)).With("user", "bob")

	log.Info(context.Background(), "signed out")

	entries := logs.FilterMessage("signed out").AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "bob", entries[0].ContextMap()["user"])
}

func TestNew_ZapBackendWritesConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(BackendZap, "info", &buf)
	require.NoError(t, err)
	require.IsType(t, &ZapLogger{}, log)

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "stock adjusted", "item", "I002")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "stock adjusted")
	assert.Contains(t, out, "I002")
}
