// Package logger provides structured logging on top of zerolog.
// JSON output is used in production and pretty console output in development.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

// Config controls logger initialisation.
type Config struct {
	// Level is one of "trace", "debug", "info", "warn", "error". Defaults to "info".
	Level string

	// Pretty switches to a human readable console writer.
	Pretty bool

	// Output defaults to os.Stderr so console prompts on stdout stay clean.
	Output io.Writer
}

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	Init(Config{
		Level:  level,
		Pretty: strings.ToLower(os.Getenv("LOG_PRETTY")) == "true",
	})
}

// Init replaces the global logger.
func Init(cfg Config) {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	level := ParseLevel(cfg.Level)

	log = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	zerolog.TimeFieldFormat = time.RFC3339
}

// ParseLevel maps a level name to a zerolog.Level, falling back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func Debug() *zerolog.Event { return log.Debug() }

func Info() *zerolog.Event { return log.Info() }

func Warn() *zerolog.Event { return log.Warn() }

func Error() *zerolog.Event { return log.Error() }

// Fatal logs and exits the process with status 1 once Msg is called.
func Fatal() *zerolog.Event { return log.Fatal() }

// With starts a child logger carrying extra fields.
//
//	cardLog := logger.With().Str("method", "card").Logger()
func With() zerolog.Context {
	return log.With()
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	return log
}

// SetGlobalLogger swaps the global logger, mainly for tests.
func SetGlobalLogger(l zerolog.Logger) {
	log = l
}
