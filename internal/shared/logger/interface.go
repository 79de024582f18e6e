package logger

import (
	"context"
	"log/slog"
)

// Interface is the logger handed to use cases, handlers and repositories.
// The *w variants take alternating key/value pairs.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Fatalw(msg string, keysAndValues ...interface{})
}

type slogLogger struct {
	logger *slog.Logger
}

func NewLogger() Interface {
	return &slogLogger{logger: Get()}
}

func NewLoggerWithSlog(l *slog.Logger) Interface {
	return &slogLogger{logger: l}
}

func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *slogLogger) Fatal(msg string, args ...any) {
	l.logger.Error(msg, args...)
	panic("fatal error: " + msg)
}

func (l *slogLogger) With(args ...any) Interface {
	return &slogLogger{logger: l.logger.With(args...)}
}

func (l *slogLogger) Named(name string) Interface {
	return &slogLogger{logger: l.logger.With("logger", name)}
}

func (l *slogLogger) Debugw(msg string, kv ...interface{}) { l.logger.Debug(msg, kv...) }
func (l *slogLogger) Infow(msg string, kv ...interface{})  { l.logger.Info(msg, kv...) }
func (l *slogLogger) Warnw(msg string, kv ...interface{})  { l.logger.Warn(msg, kv...) }
func (l *slogLogger) Errorw(msg string, kv ...interface{}) { l.logger.Error(msg, kv...) }

func (l *slogLogger) Fatalw(msg string, kv ...interface{}) {
	l.logger.Error(msg, kv...)
	panic("fatal error: " + msg)
}

type requestIDKey struct{}

// ContextWithRequestID stores the request correlation id for later log calls.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the correlation id set by the HTTP layer, if any.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// FromContext decorates log with the request id carried by ctx.
func FromContext(ctx context.Context, log Interface) Interface {
	if id := RequestIDFromContext(ctx); id != "" {
		return log.With("request_id", id)
	}
	return log
}
