package logging

import "github.com/vvka-141/treewalk/pkg/treewalk"

// NullLogger is a no-op logger that discards all log messages.
// Safe for concurrent use by multiple goroutines.
// Listers and walkers fall back to it when no logger is configured.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

// Verbose is a no-op.
func (l *NullLogger) Verbose(format string, args ...interface{}) {}

// Info is a no-op.
func (l *NullLogger) Info(format string, args ...interface{}) {}

// Error is a no-op.
func (l *NullLogger) Error(format string, args ...interface{}) {}

// OrNull returns l, or a NullLogger when l is nil.
func OrNull(l treewalk.Logger) treewalk.Logger {
	if l == nil {
		return NewNullLogger()
	}
	return l
}

var _ treewalk.Logger = (*NullLogger)(nil)
