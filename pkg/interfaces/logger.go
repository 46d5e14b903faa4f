package interfaces

import "context"

// Logger defines the leveled logging contract used across the site runtime.
// It mirrors the interface exposed by github.com/goliatone/go-logger so the
// glog provider plugs in without additional adapters.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider exposes named loggers, usually one per module.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension for attaching persistent structured
// fields to a logger.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
