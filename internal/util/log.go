package util

import (
	"context"
	"log/slog"
)

type contextKeyLogger struct{}

// ContextWithLogger returns a copy of ctx carrying logger, retrievable
// with LoggerFromContext.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKeyLogger{}, logger)
}

// LoggerFromContext returns the logger stashed in ctx by ContextWithLogger,
// or slog.Default() if none was set.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKeyLogger{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
