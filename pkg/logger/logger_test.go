package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "log")
	l := NewLog(Options{Dir: dir, Name: "test.log", Level: zapcore.InfoLevel})

	l.Info("stores written", zap.String("truststore", "/tmp/truststore-1.p12"))
	l.Debug("dropped")
	_ = l.Sync()

	b, err := os.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"stores written"`)
	assert.Contains(t, string(b), `"truststore":"/tmp/truststore-1.p12"`)
	assert.NotContains(t, string(b), "dropped")
}

func TestNewLogConsoleOnly(t *testing.T) {
	l := NewLog(Options{Level: zapcore.DebugLevel})
	require.NotNil(t, l)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}
