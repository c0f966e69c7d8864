package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "postboard.log")
	logger, err := New(Options{File: path, SessionID: "s-1"})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("fetched", zap.String("endpoint", "/posts"))
	_ = logger.Sync()

	entries := readEntries(t, path)
	require.Len(t, entries, 1, "debug is below the default level")
	e := entries[0]
	assert.Equal(t, "INFO", e["level"])
	assert.Equal(t, "fetched", e["msg"])
	assert.Equal(t, "s-1", e["session"])
	assert.Equal(t, "/posts", e["endpoint"])
	assert.Contains(t, e, "timestamp")
}

func TestNew_Levels(t *testing.T) {
	dir := t.TempDir()

	t.Run("debug flag", func(t *testing.T) {
		path := filepath.Join(dir, "debug.log")
		logger, err := New(Options{File: path, Level: "warn", Debug: true})
		require.NoError(t, err)
		logger.Debug("visible")
		_ = logger.Sync()
		assert.Len(t, readEntries(t, path), 1)
	})

	t.Run("level name", func(t *testing.T) {
		path := filepath.Join(dir, "warn.log")
		logger, err := New(Options{File: path, Level: "warn"})
		require.NoError(t, err)
		logger.Info("dropped")
		logger.Warn("kept")
		_ = logger.Sync()
		entries := readEntries(t, path)
		require.Len(t, entries, 1)
		assert.Equal(t, "WARN", entries[0]["level"])
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := New(Options{File: filepath.Join(dir, "x.log"), Level: "loud"})
		assert.Error(t, err)
	})
}

func TestNew_GeneratesSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.log")
	logger, err := New(Options{File: path})
	require.NoError(t, err)
	logger.Info("hello")
	_ = logger.Sync()

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	_, err = uuid.Parse(entries[0]["session"].(string))
	assert.NoError(t, err)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(p, filepath.Join("postboard", "postboard.log")))
}
