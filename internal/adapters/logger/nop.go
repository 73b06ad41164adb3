package logger

import "github.com/Niteshdeva/GeneTrust/internal/ports"

// NopLogger discards all log output. Useful in tests and benchmarks.
type NopLogger struct{}

// NewNopLogger creates a logger that discards everything.
func NewNopLogger() ports.Logger {
	return &NopLogger{}
}

func (n *NopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (n *NopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (n *NopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (n *NopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (n *NopLogger) Close() error                                   { return nil }
