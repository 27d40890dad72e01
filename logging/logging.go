// Package logging configures zerolog for this module and hands out component loggers.
//
// Library packages log through [Logger] and stay quiet below warn level until the hosting program decides otherwise.
// Binaries should call [Setup] once at startup, typically from a root command, to pick the verbosity and wire console plus file output.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/saylorsolutions/signals/env"
	"golang.org/x/term"
)

// Setup configures the global logger based on verbosity: 0 warn, 1 info, 2 debug, 3 and up trace.
// Output goes to the console, and to a state-directory log file when one can be created.
// The log file location honors the SIGNALS_LOG_FILE environment variable, and console color is dropped when stderr isn't a terminal or SIGNALS_NO_COLOR is truthy.
func Setup(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    noColor(),
	}

	writers := []io.Writer{consoleWriter}
	logFile := logFilePath()
	logFileHandle, err := openLogFile(logFile)
	if err == nil {
		writers = append(writers, logFileHandle)
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	// Now that the new logger is in place, report a file failure through it.
	if err != nil {
		log.Warn().Err(err).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}

	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// Logger returns a contextualized logger with the given component name.
func Logger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func noColor() bool {
	if env.Bool("SIGNALS_NO_COLOR", false) {
		return true
	}
	return !term.IsTerminal(int(os.Stderr.Fd()))
}

func logFilePath() string {
	return env.Val("SIGNALS_LOG_FILE", filepath.Join(xdg.StateHome, "signals", "signals.log"))
}

func openLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}
