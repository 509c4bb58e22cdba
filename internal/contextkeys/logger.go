package contextkeys

import (
	"context"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/port"
)

type contextKey string

const (
	loggerKey  contextKey = "logger"
	traceIDKey contextKey = "trace_id"
)

// ContextWithLogger puts a request-scoped logger into the context.
func ContextWithLogger(ctx context.Context, logger port.LoggerPort) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the request logger, falling back to a no-op
// logger so core code never has to nil-check.
func LoggerFromContext(ctx context.Context) port.LoggerPort {
	if logger, ok := ctx.Value(loggerKey).(port.LoggerPort); ok {
		return logger
	}
	return noopLogger{}
}

// ContextWithTraceID stores the request trace id for outgoing calls.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext returns the trace id or "".
func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey).(string); ok {
		return id
	}
	return ""
}

type noopLogger struct{}

func (noopLogger) Info(string, port.Fields)         {}
func (noopLogger) Warn(string, port.Fields)         {}
func (noopLogger) Error(string, error, port.Fields) {}
func (noopLogger) Debug(string, port.Fields)        {}
func (noopLogger) WithFields(port.Fields) port.LoggerPort {
	return noopLogger{}
}
