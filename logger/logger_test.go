package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()
	assert.Equal(t, DefaultLevel, cfg.Level)
	assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)
}

func TestFromZapWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With(String("book", "moby.epub"))

	l.Warn("document skipped", Int("index", 3), Error(errors.New("boom")))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "document skipped", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "moby.epub", ctx["book"])
	assert.Equal(t, int64(3), ctx["index"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestNopLogger(t *testing.T) {
	l := NewNop()
	l.Info("ignored", Bool("ok", true))
	assert.Same(t, l, l.With(String("k", "v")))
	assert.NoError(t, l.Sync())
}
