package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_InvalidLevel(t *testing.T) {
	zl, err := NewLogger(WithLogLevel("loud"))

	assert.Error(t, err)
	assert.Nil(t, zl)
}

func TestNewLogger_WritesJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.log")

	zl, err := NewLogger(WithLogLevel("debug"), WithOutputPaths(out))
	require.NoError(t, err)

	zl.Debug("hello")
	_ = zl.Sync()

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
	assert.Contains(t, string(b), `"level":"debug"`)
}

func TestNewLogger_LevelFilters(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.log")

	zl, err := NewLogger(WithLogLevel("warn"), WithOutputPaths(out))
	require.NoError(t, err)

	zl.Info("dropped")
	zl.Warn("kept")
	_ = zl.Sync()

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "dropped")
	assert.Contains(t, string(b), "kept")
}

func TestNewLogger_ConsoleEncoding(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.log")

	zl, err := NewLogger(WithConsoleEncoding(), WithOutputPaths(out))
	require.NoError(t, err)

	zl.Info("hello")
	_ = zl.Sync()

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "info")
	assert.Contains(t, string(b), "hello")
	assert.NotContains(t, string(b), `"msg"`)
}
