// Package logger provides structured logging for adoclint.
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Logger provides the structured logging interface used across the engine.
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

// Level represents the log level.
type Level string

const (
	// LevelDebug represents debug-level logging.
	LevelDebug Level = "DEBUG"

	// LevelInfo represents info-level logging.
	LevelInfo Level = "INFO"

	// LevelError represents error-level logging.
	LevelError Level = "ERROR"
)

// WriterLogger writes key=value formatted log lines to a writer, usually
// stderr. Debug output is gated behind debug mode so normal runs stay quiet.
type WriterLogger struct {
	out       io.Writer
	baseKVs   []any
	debugMode bool
}

// NewWriterLogger creates a WriterLogger.
func NewWriterLogger(out io.Writer, debugMode bool) *WriterLogger {
	return &WriterLogger{out: out, debugMode: debugMode}
}

// Debug logs debug-level messages when debug mode is on.
func (l *WriterLogger) Debug(msg string, keysAndValues ...any) {
	if !l.debugMode {
		return
	}

	l.log(LevelDebug, msg, keysAndValues...)
}

// Info logs info-level messages when debug mode is on.
func (l *WriterLogger) Info(msg string, keysAndValues ...any) {
	if !l.debugMode {
		return
	}

	l.log(LevelInfo, msg, keysAndValues...)
}

// Error logs error-level messages.
func (l *WriterLogger) Error(msg string, keysAndValues ...any) {
	l.log(LevelError, msg, keysAndValues...)
}

// With returns a new logger with additional base key-value pairs.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (l *WriterLogger) With(keysAndValues ...any) Logger {
	newKVs := make([]any, len(l.baseKVs)+len(keysAndValues))
	copy(newKVs, l.baseKVs)
	copy(newKVs[len(l.baseKVs):], keysAndValues)

	return &WriterLogger{
		out:       l.out,
		baseKVs:   newKVs,
		debugMode: l.debugMode,
	}
}

func (l *WriterLogger) log(level Level, msg string, keysAndValues ...any) {
	var builder strings.Builder

	builder.WriteString(time.Now().UTC().Format("2006-01-02T15:04:05Z"))
	builder.WriteString(" ")
	builder.WriteString(string(level))
	builder.WriteString(" ")
	builder.WriteString(msg)

	writeKeyValues(&builder, l.baseKVs)
	writeKeyValues(&builder, keysAndValues)

	builder.WriteString("\n")

	if l.out != nil {
		_, _ = io.WriteString(l.out, builder.String())
	}
}

func writeKeyValues(builder *strings.Builder, kvs []any) {
	for i := 0; i+1 < len(kvs); i += 2 {
		key := fmt.Sprintf("%v", kvs[i])
		value := fmt.Sprintf("%v", kvs[i+1])

		builder.WriteString(" ")
		builder.WriteString(key)
		builder.WriteString("=")

		if strings.ContainsAny(value, " \t\n\"") {
			builder.WriteString(quote(value))
		} else {
			builder.WriteString(value)
		}
	}
}

func quote(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\t", "\\t")

	return "\"" + s + "\""
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
