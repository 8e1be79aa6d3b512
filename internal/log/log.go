package log

import (
	"context"

	"go.uber.org/zap"
)

type ctxkey string

const (
	loggerContextKey ctxkey = "logger"
)

func createGlobalLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment(zap.AddCallerSkip(1))
	}
	return zap.NewProduction(zap.AddCallerSkip(1))
}

// DefaultGlobals replaces global zap logger with the development configuration.
func DefaultGlobals() func() {
	return Globals(true)
}

// Globals replaces global zap logger, returns a func restoring the previous one.
func Globals(debug bool) func() {
	return zap.ReplaceGlobals(zap.Must(createGlobalLogger(debug)))
}

// FromContext returns logger from context if set. Otherwise returns global logger.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.L()
	}
	if logger, ok := ctx.Value(loggerContextKey).(*zap.Logger); ok {
		return logger
	}
	return zap.L()
}

// With appends fields to logger in context.
func With(ctx context.Context, args ...zap.Field) context.Context {
	var logger *zap.Logger = FromContext(ctx).With(args...)
	return context.WithValue(ctx, loggerContextKey, logger)
}

// Into adds a name segment to the logger in context.
func Into(ctx context.Context, name string) context.Context {
	logger := FromContext(ctx).Named(name)
	return context.WithValue(ctx, loggerContextKey, logger)
}

func Debug(ctx context.Context, msg string, args ...zap.Field) {
	FromContext(ctx).Debug(msg, args...)
}

func Info(ctx context.Context, msg string, args ...zap.Field) {
	FromContext(ctx).Info(msg, args...)
}

func Warn(ctx context.Context, msg string, args ...zap.Field) {
	FromContext(ctx).Warn(msg, args...)
}

func Error(ctx context.Context, msg string, args ...zap.Field) {
	FromContext(ctx).Error(msg, args...)
}

func Fatal(ctx context.Context, msg string, args ...zap.Field) {
	FromContext(ctx).Fatal(msg, args...)
}
