// Package logger provides leveled logging for file-checker commands.
//
// Diagnostics such as unreadable directories found during a search are
// logged here rather than printed as user-facing output. ConsoleLogger
// writes to a terminal (usually stderr), FileLogger writes a per-session log
// file, and Fanout sends each message to several loggers. All
// implementations are safe for concurrent use.
package logger

import (
	"fmt"
	"strings"
	"time"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// Logger is the leveled logging interface used across the commands.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
}

// ValidLevel reports whether level names a known log level.
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if ValidLevel(normalized) {
		return normalized
	}
	return "info"
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// allows reports whether a message at messageLevel passes the configured level.
func allows(configured, messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(configured)
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// FormatDuration converts a time.Duration to a short human-readable string.
// Examples: "350ms", "5s", "1m30s", "2h15m"
func FormatDuration(d time.Duration) string {
	switch {
	case d >= time.Hour:
		hours := d / time.Hour
		remainder := d % time.Hour
		if remainder == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		minutes := remainder / time.Minute
		remainder = remainder % time.Minute
		if remainder == 0 {
			return fmt.Sprintf("%dh%dm", hours, minutes)
		}
		seconds := remainder / time.Second
		return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
	case d >= time.Minute:
		minutes := d / time.Minute
		remainder := d % time.Minute
		if remainder == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		seconds := remainder / time.Second
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case d >= time.Second:
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}

// Fanout forwards every message to each of its loggers.
type Fanout []Logger

// LogTrace forwards a trace-level message.
func (f Fanout) LogTrace(message string) {
	for _, l := range f {
		l.LogTrace(message)
	}
}

// LogDebug forwards a debug-level message.
func (f Fanout) LogDebug(message string) {
	for _, l := range f {
		l.LogDebug(message)
	}
}

// LogInfo forwards an info-level message.
func (f Fanout) LogInfo(message string) {
	for _, l := range f {
		l.LogInfo(message)
	}
}

// LogWarn forwards a warning-level message.
func (f Fanout) LogWarn(message string) {
	for _, l := range f {
		l.LogWarn(message)
	}
}

// LogError forwards an error-level message.
func (f Fanout) LogError(message string) {
	for _, l := range f {
		l.LogError(message)
	}
}

// NoOpLogger is a Logger implementation that discards all log messages.
// Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) LogTrace(message string) {}
func (n *NoOpLogger) LogDebug(message string) {}
func (n *NoOpLogger) LogInfo(message string)  {}
func (n *NoOpLogger) LogWarn(message string)  {}
func (n *NoOpLogger) LogError(message string) {}
