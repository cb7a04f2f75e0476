package obslog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(" info "))
	assert.Equal(t, zapcore.WarnLevel, parseLevel(""))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("nonsense"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
}

func TestValidFormat(t *testing.T) {
	for _, f := range []string{"", "legacy", "JSON", "console"} {
		assert.True(t, ValidFormat(f), f)
	}
	assert.False(t, ValidFormat("xml"))
}

func TestInit_JSONToWriter(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	var buf bytes.Buffer
	logger, err := Init(Options{Level: "info", Format: "json", Console: &buf})
	require.NoError(t, err)

	logger.Debug("hidden")
	L().Info("verify_ok", zap.Int("applied", 4))
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "verify_ok", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 4, entry["applied"])
}

func TestInit_File(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	path := filepath.Join(t.TempDir(), "logs", "verifier.log")
	var console bytes.Buffer
	logger, err := Init(Options{Level: "warn", Format: "legacy", File: path, Console: &console})
	require.NoError(t, err)

	logger.Warn("scan_dir_not_found", zap.String("dir", "/nope"))
	require.NoError(t, logger.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "WARN | ")
	assert.Contains(t, string(raw), "scan_dir_not_found")
	assert.Contains(t, console.String(), "scan_dir_not_found")
}

func TestSet_NilRestoresNop(t *testing.T) {
	Set(nil)
	assert.NotNil(t, L())
}

func TestClose_ClosesLogFile(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	path := filepath.Join(t.TempDir(), "verifier.log")
	logger, err := Init(Options{Level: "info", Format: "json", File: path, Console: &bytes.Buffer{}})
	require.NoError(t, err)
	require.NotNil(t, logFile)
	f := logFile

	logger.Info("verify_ok")
	require.NoError(t, Close())
	assert.Nil(t, logFile)
	assert.Error(t, f.Close(), "file must already be closed")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "verify_ok")

	require.NoError(t, Close())
}

func TestInit_ReplacesPreviousLogFile(t *testing.T) {
	t.Cleanup(func() { _ = Close(); Set(nil) })

	dir := t.TempDir()
	_, err := Init(Options{File: filepath.Join(dir, "a.log"), Console: &bytes.Buffer{}})
	require.NoError(t, err)
	first := logFile

	_, err = Init(Options{File: filepath.Join(dir, "b.log"), Console: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Error(t, first.Close(), "previous file must be closed by Init")
	assert.NotSame(t, first, logFile)
}
