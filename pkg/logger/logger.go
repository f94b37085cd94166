// Package logger provides structured logging for hookguard.
//
// Hooks must keep stdout and stderr free for the host protocol, so all
// diagnostic logging goes to a file.
package logger

import (
	"io"
	"log/slog"
)

// Logger provides the structured logging interface used across hookguard.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs info-level messages with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Error logs error-level messages with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// With returns a new logger with additional key-value pairs.
	With(keysAndValues ...any) Logger
}

// SlogAdapter adapts a slog.Logger to the Logger interface.
type SlogAdapter struct {
	s *slog.Logger
}

// NewFileLogger creates a logger that appends to the log file at path.
// The debug and trace flags select the minimum level (see LevelFromFlags).
func NewFileLogger(path string, debug, trace bool) (*SlogAdapter, error) {
	handler, err := NewFileHandler(path, LevelFromFlags(debug, trace))
	if err != nil {
		return nil, err
	}

	return &SlogAdapter{s: slog.New(handler)}, nil
}

// NewFileLoggerWithWriter creates a logger that writes to w (for testing).
func NewFileLoggerWithWriter(w io.Writer, debug, trace bool) *SlogAdapter {
	handler := NewWriterHandler(w, LevelFromFlags(debug, trace))

	return &SlogAdapter{s: slog.New(handler)}
}

// Debug logs debug-level messages.
func (l *SlogAdapter) Debug(msg string, keysAndValues ...any) {
	l.s.Debug(msg, keysAndValues...)
}

// Info logs info-level messages.
func (l *SlogAdapter) Info(msg string, keysAndValues ...any) {
	l.s.Info(msg, keysAndValues...)
}

// Error logs error-level messages.
func (l *SlogAdapter) Error(msg string, keysAndValues ...any) {
	l.s.Error(msg, keysAndValues...)
}

// With returns a new logger with additional base key-value pairs.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (l *SlogAdapter) With(keysAndValues ...any) Logger {
	return &SlogAdapter{s: l.s.With(keysAndValues...)}
}

// NoOpLogger is a logger that does nothing.
type NoOpLogger struct{}

// NewNoOpLogger creates a new NoOpLogger.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debug does nothing.
func (*NoOpLogger) Debug(string, ...any) {}

// Info does nothing.
func (*NoOpLogger) Info(string, ...any) {}

// Error does nothing.
func (*NoOpLogger) Error(string, ...any) {}

// With returns the same NoOpLogger.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (n *NoOpLogger) With(...any) Logger {
	return n
}
