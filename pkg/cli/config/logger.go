package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/focuspoint-lab/focuspoint/pkg/utils/logging"
)

// Logger holds CLI flags for logging configuration
type Logger struct {
	level  string
	format string
	output string
}

// Flags returns CLI flags for logger configuration
func (x *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Category:    "Logging",
			Value:       "info",
			Sources:     cli.EnvVars("FOCUSPOINT_LOG_LEVEL"),
			Destination: &x.level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console or json)",
			Category:    "Logging",
			Value:       "console",
			Sources:     cli.EnvVars("FOCUSPOINT_LOG_FORMAT"),
			Destination: &x.format,
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output destination (stdout, stderr or file path)",
			Category:    "Logging",
			Value:       "stdout",
			Sources:     cli.EnvVars("FOCUSPOINT_LOG_OUTPUT"),
			Destination: &x.output,
		},
	}
}

func (x Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", x.level),
		slog.String("format", x.format),
		slog.String("output", x.output),
	)
}

// Configure builds the default logger from the flags and installs it.
// The returned closer releases the log file when one is used.
func (x *Logger) Configure() (func(), error) {
	var level slog.Level
	switch strings.ToLower(x.level) {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, goerr.Wrap(ErrInvalidConfig, "unknown log level", goerr.V("level", x.level))
	}

	var format logging.Format
	switch strings.ToLower(x.format) {
	case "console", "":
		format = logging.FormatConsole
	case "json":
		format = logging.FormatJSON
	default:
		return nil, goerr.Wrap(ErrInvalidConfig, "unknown log format", goerr.V("format", x.format))
	}

	closer := func() {}
	var w *os.File
	switch x.output {
	case "stdout", "":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	default:
		f, err := os.OpenFile(x.output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", x.output))
		}
		w = f
		closer = func() {
			_ = f.Close()
		}
	}

	logging.SetDefault(logging.New(w, level, format))
	return closer, nil
}
