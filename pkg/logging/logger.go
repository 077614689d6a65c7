// Package logging wraps log/slog behind a small Logger interface with a
// process-wide logger that components derive tagged loggers from.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	// DebugFileEnv names the file the full-screen terminal logs to.
	DebugFileEnv = "WEBCLI_DEBUG_FILE"
	// DebugLevelEnv selects the level of that file.
	DebugLevelEnv = "WEBCLI_DEBUG_LEVEL"
)

// Logger interface for dependency injection and testing
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// Format represents the output format
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// ParseFormat maps "json" to FormatJSON; anything else is text.
func ParseFormat(name string) Format {
	if strings.EqualFold(strings.TrimSpace(name), "json") {
		return FormatJSON
	}
	return FormatText
}

// Config holds logger configuration. Output defaults to stderr. Timestamps
// are left out unless AddTime is set, so terminal output stays readable.
type Config struct {
	Level   slog.Level
	Format  Format
	Output  io.Writer
	AddTime bool
}

type slogLogger struct {
	*slog.Logger
}

func (l slogLogger) With(args ...any) Logger {
	return slogLogger{l.Logger.With(args...)}
}

// NewLogger creates a logger with the given configuration.
func NewLogger(config Config) Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: config.Level}
	if !config.AddTime {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		}
	}

	var handler slog.Handler = slog.NewTextHandler(out, opts)
	if config.Format == FormatJSON {
		handler = slog.NewJSONHandler(out, opts)
	}
	return slogLogger{slog.New(handler)}
}

// NewDisabledLogger discards everything.
func NewDisabledLogger() Logger {
	return NewLogger(Config{Level: slog.Level(1000), Output: io.Discard})
}

// ParseLevel maps a level name to a slog level. Unknown names map to error.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// DebugFilePath returns $WEBCLI_DEBUG_FILE, or name inside the temp dir.
func DebugFilePath(name string) string {
	if path := os.Getenv(DebugFileEnv); path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), name)
}

// NewFileLoggerFromEnv logs to DebugFilePath(name) at $WEBCLI_DEBUG_LEVEL
// (errors by default). It is used while the screen owns stderr. When the
// file cannot be opened, records are dropped. The returned func closes the
// file.
func NewFileLoggerFromEnv(name string) (Logger, func() error) {
	config := Config{
		Level:   ParseLevel(os.Getenv(DebugLevelEnv)),
		Output:  io.Discard,
		AddTime: true,
	}
	file, err := os.OpenFile(DebugFilePath(name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return NewLogger(config), func() error { return nil }
	}
	config.Output = file
	return NewLogger(config), file.Close
}

var (
	globalMu     sync.RWMutex
	globalLogger = NewLogger(Config{Level: slog.LevelWarn})
)

// SetGlobalLogger replaces the process-wide logger. Loggers derived before
// the call keep writing to the old one.
func SetGlobalLogger(logger Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the process-wide logger.
func GetGlobalLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

func Debug(msg string, args ...any) { GetGlobalLogger().Debug(msg, args...) }
func Info(msg string, args ...any)  { GetGlobalLogger().Info(msg, args...) }
func Warn(msg string, args ...any)  { GetGlobalLogger().Warn(msg, args...) }
func Error(msg string, args ...any) { GetGlobalLogger().Error(msg, args...) }

// NewComponentLogger tags every record with the owning component.
func NewComponentLogger(component string) Logger {
	return GetGlobalLogger().With("component", component)
}

// NewSessionLogger tags records with the terminal session they belong to.
func NewSessionLogger(component, sessionID string) Logger {
	return GetGlobalLogger().With("component", component, "session", sessionID)
}
