package internal

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logBuffer bytes.Buffer

func TestMain(m *testing.M) {
	SetLogOutput(&logBuffer)
	os.Exit(m.Run())
}

func lastRecord(t *testing.T) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(logBuffer.String()), "\n")
	require.NotEmpty(t, lines)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &rec))
	return rec
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "%q", in)
	}
}

func TestInternalLoggerDefaultsToWarn(t *testing.T) {
	logBuffer.Reset()
	log := GetInternalLogger()

	log.Info("quiet")
	assert.Empty(t, logBuffer.String())

	log.Warn("loud", "page", "Default")
	rec := lastRecord(t)
	assert.Equal(t, "loud", rec["msg"])
	assert.Equal(t, "sicle", rec["component"])
	assert.Equal(t, "Default", rec["page"])
}

func TestSetInternalLogLevel(t *testing.T) {
	logBuffer.Reset()
	SetInternalLogLevel(slog.LevelDebug)
	defer SetInternalLogLevel(slog.LevelWarn)

	GetInternalLogger().Debug("traced")
	assert.Equal(t, "traced", lastRecord(t)["msg"])
}

func TestApplicationLoggerLevel(t *testing.T) {
	logBuffer.Reset()
	SetRawLogLevel("error")
	defer SetLogLevel(slog.LevelInfo)

	GetLogger().Warn("dropped")
	assert.Empty(t, logBuffer.String())

	GetLogger().Error("kept")
	rec := lastRecord(t)
	assert.Equal(t, "kept", rec["msg"])
	assert.NotContains(t, rec, "component")
}
