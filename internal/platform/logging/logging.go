// Package logging builds the service's slog logger and carries request-scoped
// loggers through context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).WarnContext(ctx, "release lookup failed", ...)
//
// Error entries name the operation, the TeamForge identifiers involved
// (issue_id, tracker_id, release_id) and the full chain under "error".
// Credentials never need call-site care: every handler built by New redacts
// them, see redact.go.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New returns a logger writing to w. level is any slog level name ("debug",
// "INFO", "warn+2"); unparsable values mean info. format "text" selects the
// text handler, anything else JSON. Debug loggers also record the source
// position.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactAttr(),
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
