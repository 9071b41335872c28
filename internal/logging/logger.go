// Package logging provides a structured logging wrapper around log/slog with
// optional file output and rotation.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/kyleking/cutecosmic/internal/config"
)

// Logger wraps slog.Logger.
type Logger struct {
	logger *slog.Logger
	closer io.Closer
}

// LogFormat represents the output format for logs.
type LogFormat string

const (
	// FormatText outputs human-readable text logs.
	FormatText LogFormat = "text"
	// FormatJSON outputs structured JSON logs.
	FormatJSON LogFormat = "json"
)

// Config holds configuration for logger initialization.
type Config struct {
	// FilePath is the path to the log file (empty = no logging)
	FilePath string
	// Level is the minimum log level
	Level slog.Level
	// Format is the output format (text or json)
	Format LogFormat
	// MaxSizeMB is the maximum size in MB before rotation
	MaxSizeMB int
	// MaxBackups is the maximum number of old log files to keep
	MaxBackups int
}

var (
	mu           sync.RWMutex
	globalLogger *Logger
	noopLogger   = &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
)

// New builds a logger from config. An empty FilePath yields the noop logger.
func New(config Config) *Logger {
	if config.FilePath == "" {
		return noopLogger
	}

	writer := &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		Compress:   true,
	}

	return NewWithWriter(writer, config)
}

// NewWithWriter builds a logger that writes to w. If w is an io.Closer it is
// closed by Shutdown when installed globally.
func NewWithWriter(w io.Writer, config Config) *Logger {
	opts := &slog.HandlerOptions{Level: config.Level}

	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	l := &Logger{logger: slog.New(handler)}
	if c, ok := w.(io.Closer); ok {
		l.closer = c
	}

	return l
}

// Init installs the global logger built from config.
func Init(config Config) {
	Set(New(config))
}

// Set installs l as the global logger. A nil l restores the noop logger.
func Set(l *Logger) {
	if l == nil {
		l = noopLogger
	}

	mu.Lock()
	globalLogger = l
	mu.Unlock()
}

// Get returns the global logger, or the noop logger if none is installed.
func Get() *Logger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger == nil {
		return noopLogger
	}

	return globalLogger
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// With returns a new Logger with the given key-value pairs added as context.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...), closer: l.closer}
}

// IsEnabled returns true if logging is enabled (not noop)
func (l *Logger) IsEnabled() bool {
	return l != noopLogger
}

// Debug logs a debug message using the global logger
func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

// Info logs an info message using the global logger
func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

// Error logs an error message using the global logger
func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

// ParseLevel converts a string to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseFormat converts a string to LogFormat, defaulting to text.
func ParseFormat(format string) LogFormat {
	switch strings.ToLower(format) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// FromSettings converts the log section of the runtime settings.
func FromSettings(s config.LogSettings) Config {
	return Config{
		FilePath:   s.File,
		Level:      ParseLevel(s.Level),
		Format:     ParseFormat(s.Format),
		MaxSizeMB:  s.MaxSizeMB,
		MaxBackups: s.MaxBackups,
	}
}

// Shutdown closes the global logger's output and restores the noop logger.
func Shutdown() error {
	mu.Lock()
	l := globalLogger
	globalLogger = noopLogger
	mu.Unlock()

	if l != nil && l.closer != nil {
		return l.closer.Close()
	}

	return nil
}
