package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/baditaflorin/go_text_normalization/internal/ports"
	"github.com/baditaflorin/l"
)

// Level is the minimum severity a StdLogger forwards.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converts "debug", "info", "warn" or "error" into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// StdLogger adapts the l.Logger to the ports.Logger interface.
type StdLogger struct {
	logger l.Logger
	level  Level
}

// Options controls how NewFromOptions builds the underlying logger.
type Options struct {
	Output io.Writer
	JSON   bool
	Level  Level
}

// NewStdLogger creates a new standard logger adapter with default configuration.
func NewStdLogger() (ports.Logger, error) {
	return NewFromOptions(Options{Output: os.Stderr, Level: LevelInfo})
}

// NewFromOptions creates a logger writing to opts.Output.
func NewFromOptions(opts Options) (ports.Logger, error) {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      opts.Output,
		JsonFormat:  opts.JSON,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}

	return &StdLogger{logger: logger, level: opts.Level}, nil
}

// NewCustomStdLogger creates a new standard logger with custom configuration.
func NewCustomStdLogger(config l.Config) (ports.Logger, error) {
	logger, err := l.NewStandardFactory().CreateLogger(config)
	if err != nil {
		return nil, err
	}

	return &StdLogger{logger: logger}, nil
}

// Debug logs a debug message.
func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	if s.level > LevelDebug {
		return
	}
	s.logger.Debug(msg, keysAndValues...)
}

// Info logs an info message.
func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	if s.level > LevelInfo {
		return
	}
	s.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	if s.level > LevelWarn {
		return
	}
	s.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.logger.Error(msg, keysAndValues...)
}

// Close flushes and closes the logger.
func (s *StdLogger) Close() error {
	return s.logger.Close()
}

// FromExisting creates a new StdLogger from an existing l.Logger.
func FromExisting(logger l.Logger) ports.Logger {
	return &StdLogger{logger: logger}
}

// Nop returns a logger that discards everything.
func Nop() ports.Logger {
	return ports.NopLogger{}
}
