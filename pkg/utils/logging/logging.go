package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/masq"
)

// Format selects the log output encoding
type Format int

const (
	FormatConsole Format = iota
	FormatJSON
)

type ctxLoggerKey struct{}

var defaultLogger *slog.Logger

func init() {
	defaultLogger = New(os.Stdout, slog.LevelInfo, FormatConsole)
}

// New creates a logger writing to w. Config values tagged `masq:"secret"`
// are redacted before they reach the output.
func New(w io.Writer, level slog.Level, format Format) *slog.Logger {
	filter := masq.New(masq.WithTag("secret"))

	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   true,
			Level:       level,
			ReplaceAttr: filter,
		})
	default:
		handler = clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithSource(true),
			clog.WithReplaceAttr(filter),
		)
	}

	return slog.New(handler)
}

// Default returns the process-wide logger.
func Default() *slog.Logger {
	return defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
}

// With embeds a logger into the context.
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From extracts the logger from the context, falling back to the default.
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return defaultLogger
}
