package port

// Fields carries structured context attached to a log entry.
type Fields map[string]interface{}

// LoggerPort is the logging abstraction used across the core. Adapters fan
// out to stdout (slog/tint) and optionally Fluent Bit.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)
	WithFields(fields Fields) LoggerPort
}
