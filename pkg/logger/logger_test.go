package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestLoggerFieldsAndSource(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(WithOutput(&buf), WithoutFile(), WithLevel(zerolog.DebugLevel))
	require.NoError(t, err)
	defer log.Close()

	log.Debug("layout generated", "views", 4, "output", "DP-1", "dangling")
	log.Error("reload failed", errors.New("boom"), "path", "/tmp/x.toml")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, "layout generated", lines[0]["message"])
	assert.Equal(t, float64(4), lines[0]["views"])
	assert.Equal(t, "DP-1", lines[0]["output"])
	assert.Equal(t, "logger_test.go", lines[0]["file"])
	assert.NotContains(t, lines[0], "dangling")

	assert.Equal(t, "error", lines[1]["level"])
	assert.Equal(t, "boom", lines[1]["error"])
}

func TestLoggerLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(WithOutput(&buf), WithoutFile(), WithLevel(zerolog.WarnLevel))
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["message"])
	assert.Equal(t, zerolog.WarnLevel, log.Level())
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(WithOutput(&buf), WithoutFile())
	require.NoError(t, err)

	log.With("conn", "abc").Info("request")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "abc", lines[0]["conn"])
}

func TestLoggerWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "stream.log")
	log, err := NewLogger(WithFile(path))
	require.NoError(t, err)

	log.Info("written to file", "key", "value")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Contains(t, string(data), "key=value")
}

func TestLoggerFileTwice(t *testing.T) {
	dir := t.TempDir()
	_, err := NewLogger(WithFile(filepath.Join(dir, "a.log")), WithFile(filepath.Join(dir, "b.log")))
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	log := NewNop()
	log.Info("nothing", "k", 1)
	log.Error("nothing", errors.New("x"))
	assert.NoError(t, log.Close())
}
