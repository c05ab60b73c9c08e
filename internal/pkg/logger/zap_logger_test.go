package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLogger_GetLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l := NewZapLogger(path, true)

	l.Info("ANALYSIS", "first", map[string]interface{}{"analysis_id": "a1"})
	l.Debug("ANALYSIS", "debug lines stay on the console", nil)
	l.Warn("RATELIMIT", "second", nil)
	l.Error("REPORT", "third", map[string]interface{}{"error": "smtp down"})
	_ = l.Sync()

	all, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Message)
	assert.Equal(t, "REPORT", all[0].Module)
	assert.Equal(t, "first", all[2].Message)
	assert.Equal(t, "a1", all[2].Details["analysis_id"])
	assert.NotEmpty(t, all[2].Id)

	warns, err := l.GetLogs("WARN", 10, 0)
	require.NoError(t, err)
	require.Len(t, warns, 1)
	assert.Equal(t, "second", warns[0].Message)

	page, err := l.GetLogs("", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "second", page[0].Message)

	empty, err := l.GetLogs("", 10, 50)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestNop(t *testing.T) {
	l := NewNop()
	l.Info("X", "ignored", nil)

	logs, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
