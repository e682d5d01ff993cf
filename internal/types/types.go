// Package types provides internal types shared across reportdsl packages.
package types

import (
	"context"
	"log/slog"
)

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-item iteration logging (ranges, spans, header scans).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// ctx is a package-level context for logging.
var ctx = context.Background()

// Logger wraps slog.Logger with nil-safe helpers.
type Logger struct {
	L *slog.Logger
}

// Enabled returns true if logging is enabled at the given level.
func (l *Logger) Enabled(level slog.Level) bool {
	return l.L != nil && l.L.Enabled(ctx, level)
}

// Log emits a log message if logging is enabled.
func (l *Logger) Log(level slog.Level, msg string, attrs ...slog.Attr) {
	if l.L != nil && l.L.Enabled(ctx, level) {
		l.L.LogAttrs(ctx, level, msg, attrs...)
	}
}

// TraceEnabled returns true if trace-level logging is enabled.
func (l *Logger) TraceEnabled() bool {
	return l.Enabled(LevelTrace)
}

// Trace emits a trace-level log.
func (l *Logger) Trace(msg string, attrs ...slog.Attr) {
	l.Log(LevelTrace, msg, attrs...)
}

// ParseError is a tagged grammar violation plus the cursor offset at the
// moment it was raised. It travels up the recursion untouched; only the
// top-level parse entry converts it into a rendered diagnostic.
type ParseError struct {
	Code   string
	Offset int
}

// NewParseError creates a ParseError with the given code and offset.
func NewParseError(code string, offset int) *ParseError {
	return &ParseError{Code: code, Offset: offset}
}

// Message returns the human-readable message for the error's code.
func (e *ParseError) Message() string {
	return DiagMessage(e.Code)
}
