package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFilePath_Override(t *testing.T) {
	override := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, os.Setenv("SIGNALS_LOG_FILE", override))
	t.Cleanup(func() {
		_ = os.Unsetenv("SIGNALS_LOG_FILE")
	})
	assert.Equal(t, override, logFilePath())
}

func TestSetup_WritesLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nested", "test.log")
	require.NoError(t, os.Setenv("SIGNALS_LOG_FILE", logFile))
	prev := log.Logger
	t.Cleanup(func() {
		_ = os.Unsetenv("SIGNALS_LOG_FILE")
		log.Logger = prev
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	})

	Setup(2)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	logger := Logger("test")
	logger.Info().Msg("hello from the test")
	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"component":"test"`)
	assert.Contains(t, string(content), "hello from the test")
}

func TestLogger_ComponentField(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() {
		log.Logger = prev
	})

	logger := Logger("dispatch")
	logger.Warn().Msg("component check")
	assert.Contains(t, buf.String(), `"component":"dispatch"`)
}
