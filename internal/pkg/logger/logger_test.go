package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerForwardsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewWithCore(core)

	log.Debug("running", map[string]interface{}{"args": "gcc -o x"})
	log.Error("spawn failed", errors.New("boom"), map[string]interface{}{"program": "gcc"})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "running", entries[0].Message)
	assert.Equal(t, "gcc -o x", entries[0].ContextMap()["args"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestNewQuietLoggerDiscards(t *testing.T) {
	log := New(false)
	log.Info("ignored", nil)
	log.Sync()
}
