// Package logging provides the structured logger used by the vault core and
// the ironvault CLI. Callers pass a *Logger into pkg/vault so that open,
// create, and add-record operations can report their outcome without
// ever writing a passphrase, derived key, or wrapped key to the log stream.
//
// That last guarantee is not left to caller discipline: log, the entry point
// every level method funnels through, redacts any field whose key names a
// known-sensitive concept (passphrase, password, key material) before it
// ever reaches an output writer, text or JSON. A caller that accidentally
// logs Fields{"passphrase": p} gets "[REDACTED]" on disk, not the secret.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents a logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelSilent // Disables all logging
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelSilent:
		return "SILENT"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level string, defaulting to LevelInfo for an
// unrecognized value (e.g. a typo in --log-level).
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "SILENT", "OFF", "NONE":
		return LevelSilent
	default:
		return LevelInfo
	}
}

// Logger provides level-gated, field-based structured logging for vault
// operations.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	level  Level
	format Format
	name   string
}

// Fields represents structured log fields attached to a single entry.
type Fields map[string]interface{}

// Format specifies the log output format.
type Format int

const (
	FormatText Format = iota // Human-readable text format
	FormatJSON               // JSON format for log aggregation
)

// LoggerOption configures a logger.
type LoggerOption func(*Logger)

// WithOutput sets the output writer.
func WithOutput(w io.Writer) LoggerOption {
	return func(l *Logger) {
		l.out = w
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level Level) LoggerOption {
	return func(l *Logger) {
		l.level = level
	}
}

// WithFormat sets the output format.
func WithFormat(format Format) LoggerOption {
	return func(l *Logger) {
		l.format = format
	}
}

// WithName sets the logger name, recorded as the "logger" field (JSON) or a
// bracketed prefix (text).
func WithName(name string) LoggerOption {
	return func(l *Logger) {
		l.name = name
	}
}

// NewLogger creates a new logger with the given options.
func NewLogger(opts ...LoggerOption) *Logger {
	l := &Logger{
		out:    os.Stdout,
		level:  LevelInfo,
		format: FormatText,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Debug logs at debug level. Use for path resolution and per-operation
// timing detail not needed outside development.
func (l *Logger) Debug(msg string, fields ...Fields) {
	l.log(LevelDebug, msg, fields...)
}

// Info logs at info level: vault created/opened, record added.
func (l *Logger) Info(msg string, fields ...Fields) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs at warn level: a key-unwrap or storage-open failure, reported
// with the file path only, never with a passphrase or key.
func (l *Logger) Warn(msg string, fields ...Fields) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs at error level.
func (l *Logger) Error(msg string, fields ...Fields) {
	l.log(LevelError, msg, fields...)
}

// log merges fields, redacts anything sensitive, and writes the entry if the
// level passes the logger's threshold.
func (l *Logger) log(level Level, msg string, extraFields ...Fields) {
	if level < l.level {
		return
	}

	merged := make(Fields)
	for _, f := range extraFields {
		for k, v := range f {
			merged[k] = v
		}
	}
	redacted := redactFields(merged)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.format == FormatJSON {
		l.writeJSON(level, msg, redacted)
	} else {
		l.writeText(level, msg, redacted)
	}
}

// redactedPlaceholder replaces the value of any sensitive field.
const redactedPlaceholder = "[REDACTED]"

// sensitiveFieldNames names the field keys that must never reach a log
// sink with their real value: passphrases, derived/wrapped keys, and
// anything named generically enough to plausibly hold one.
var sensitiveFieldNames = map[string]bool{
	"passphrase": true,
	"password":   true,
	"key":        true,
	"datakey":    true,
	"data_key":   true,
	"kek":        true,
	"dek":        true,
	"secret":     true,
	"token":      true,
}

func redactFields(fields Fields) Fields {
	out := make(Fields, len(fields))
	for k, v := range fields {
		if sensitiveFieldNames[strings.ToLower(k)] {
			out[k] = redactedPlaceholder
		} else {
			out[k] = v
		}
	}
	return out
}

// writeJSON writes a log entry in JSON format.
func (l *Logger) writeJSON(level Level, msg string, fields Fields) {
	entry := make(map[string]interface{}, len(fields)+4)
	entry["time"] = time.Now().Format(time.RFC3339Nano)
	entry["level"] = level.String()
	entry["msg"] = msg
	if l.name != "" {
		entry["logger"] = l.name
	}
	for k, v := range fields {
		entry[k] = v
	}

	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(l.out, "LOG_ERROR: %v\n", err)
		return
	}
	l.out.Write(data)
	l.out.Write([]byte{'\n'})
}

// writeText writes a log entry in human-readable text format.
func (l *Logger) writeText(level Level, msg string, fields Fields) {
	var b strings.Builder

	b.WriteString(time.Now().Format("15:04:05.000"))
	b.WriteString(" ")

	b.WriteString(levelColor(level))
	b.WriteString(fmt.Sprintf("%-5s", level.String()))
	b.WriteString(colorReset)
	b.WriteString(" ")

	if l.name != "" {
		b.WriteString("[")
		b.WriteString(l.name)
		b.WriteString("] ")
	}

	b.WriteString(msg)

	if len(fields) > 0 {
		b.WriteString(" ")
		b.WriteString(formatFields(fields))
	}

	b.WriteString("\n")
	l.out.Write([]byte(b.String()))
}

// formatFields formats fields as key=value pairs, sorted by key for
// deterministic output.
func formatFields(fields Fields) string {
	if len(fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}

	return strings.Join(parts, " ")
}

// ANSI color codes for log levels.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

func levelColor(level Level) string {
	switch level {
	case LevelDebug:
		return colorGray
	case LevelInfo:
		return colorBlue
	case LevelWarn:
		return colorYellow
	case LevelError:
		return colorRed
	default:
		return ""
	}
}

// NullLogger returns a logger that discards all output. The default for
// Create/Open when no WithLogger option is supplied.
func NullLogger() *Logger {
	return NewLogger(WithLevel(LevelSilent))
}
