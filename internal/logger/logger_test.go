package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewModes(t *testing.T) {
	prod, err := New("production")
	require.NoError(t, err)
	assert.False(t, prod.SugaredLogger.Desugar().Core().Enabled(zapcore.DebugLevel))

	dev, err := New("dev")
	require.NoError(t, err)
	assert.True(t, dev.SugaredLogger.Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestWithAddsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("template", "pairwise").Info("prompt assembled", "bytes", 42)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "prompt assembled", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "pairwise", fields["template"])
	assert.EqualValues(t, 42, fields["bytes"])
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Error("ignored", "k", "v")
	l.Sync()
}
