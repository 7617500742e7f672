package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/chronoprefix/internal/config"
)

func TestNewLoggerTo_SplitsErrorsToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := config.DefaultConfig()
	l, err := NewLoggerTo(&cfg, &out, &errOut)
	require.NoError(t, err)
	defer l.Close()

	l.Info("found %d media file(s)", 3)
	l.Warn("fallback for %s", "a.jpg")
	l.Error("rename failed: %s", "b.mp4")

	assert.Contains(t, out.String(), "[INFO] found 3 media file(s)")
	assert.Contains(t, out.String(), "[WARN] fallback for a.jpg")
	assert.NotContains(t, out.String(), "rename failed")
	assert.Contains(t, errOut.String(), "[ERROR] rename failed: b.mp4")
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	var out bytes.Buffer
	cfg := config.DefaultConfig()
	l, err := NewLoggerTo(&cfg, &out, &out)
	require.NoError(t, err)

	l.Debug(false, "hidden")
	assert.Empty(t, out.String())

	l.Debug(true, "shown %s", "now")
	assert.Contains(t, out.String(), "[DEBUG] shown now")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "logs", "chronoprefix.log")

	var out, errOut bytes.Buffer
	l, err := NewLoggerTo(&cfg, &out, &errOut)
	require.NoError(t, err)
	l.Info("to file")
	l.Error("also to file")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[INFO] to file")
	assert.Contains(t, string(b), "[ERROR] also to file")
	assert.NotContains(t, string(b), "\033[", "file sink must stay uncolored")
}

func TestClose_Idempotent(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "x.log")
	l, err := NewLoggerTo(&cfg, &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)
	require.NoError(t, l.Close())
	assert.NoError(t, l.Close())
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("nothing")
	l.Error("nothing")
	assert.NoError(t, l.Close())
}
