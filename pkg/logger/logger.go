package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultLogDir  = "~/.local/share/river-stream/logs"
	DefaultLogFile = "debug.log"
)

type Logger struct {
	zlog    zerolog.Logger
	file    *os.File
	writers []io.Writer
	level   zerolog.Level
	noFile  bool
	mu      sync.Mutex
}

type Option func(*Logger) error

// WithConsole enables console logging on stderr. stdout is left alone so
// commands can print layouts there.
func WithConsole() Option {
	return WithOutput(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}

// WithOutput adds a raw writer
func WithOutput(w io.Writer) Option {
	return func(l *Logger) error {
		l.writers = append(l.writers, w)
		return nil
	}
}

// WithLevel sets the logging level
func WithLevel(level zerolog.Level) Option {
	return func(l *Logger) error {
		l.level = level
		return nil
	}
}

// WithFile sets up file logging with an explicit path
func WithFile(path string) Option {
	return func(l *Logger) error {
		if l.file != nil {
			return fmt.Errorf("log file already set")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = f
		l.writers = append(l.writers, zerolog.ConsoleWriter{
			Out:        f,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
		return nil
	}
}

// WithoutFile skips the default log file
func WithoutFile() Option {
	return func(l *Logger) error {
		l.noFile = true
		return nil
	}
}

// DefaultLogPath returns the expanded default log path
func DefaultLogPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	logDir := strings.Replace(DefaultLogDir, "~", homeDir, 1)
	return filepath.Join(logDir, DefaultLogFile), nil
}

// NewLogger creates a new logger with the given options. Unless WithFile or
// WithoutFile is given, it also logs to DefaultLogPath.
func NewLogger(opts ...Option) (*Logger, error) {
	logger := &Logger{level: zerolog.InfoLevel}

	for _, opt := range opts {
		if err := opt(logger); err != nil {
			logger.Close()
			return nil, fmt.Errorf("failed to apply logger option: %w", err)
		}
	}

	if logger.file == nil && !logger.noFile {
		defaultPath, err := DefaultLogPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get default log path: %w", err)
		}
		if err := WithFile(defaultPath)(logger); err != nil {
			return nil, fmt.Errorf("failed to apply logger option: %w", err)
		}
	}

	var out io.Writer
	switch len(logger.writers) {
	case 0:
		out = io.Discard
	case 1:
		out = logger.writers[0]
	default:
		out = zerolog.MultiLevelWriter(logger.writers...)
	}

	logger.zlog = zerolog.New(out).Level(logger.level).With().Timestamp().Logger()
	return logger, nil
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return &Logger{zlog: zerolog.Nop(), level: zerolog.Disabled}
}

// Close closes the logger and any open files
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Level returns the configured minimum level
func (l *Logger) Level() zerolog.Level {
	return l.level
}

// With returns a child logger that adds the given fields to every event
func (l *Logger) With(fields ...interface{}) *Logger {
	ctx := l.zlog.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		ctx = ctx.Interface(key, fields[i+1])
	}
	return &Logger{zlog: ctx.Logger(), level: l.level}
}

// addSourceContext adds file and line information to the event
func addSourceContext(e *zerolog.Event) *zerolog.Event {
	_, file, line, ok := runtime.Caller(2)
	if ok {
		return e.Str("file", filepath.Base(file)).Int("line", line)
	}
	return e
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...interface{}) {
	event := addSourceContext(l.zlog.Debug())
	logFields(event, fields...)
	event.Msg(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...interface{}) {
	event := addSourceContext(l.zlog.Info())
	logFields(event, fields...)
	event.Msg(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...interface{}) {
	event := addSourceContext(l.zlog.Warn())
	logFields(event, fields...)
	event.Msg(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, err error, fields ...interface{}) {
	event := addSourceContext(l.zlog.Error())
	if err != nil {
		event = event.Err(err)
	}
	logFields(event, fields...)
	event.Msg(msg)
}

// logFields adds fields to the log event
func logFields(event *zerolog.Event, fields ...interface{}) {
	if event == nil {
		return
	}
	for i := 0; i < len(fields); i += 2 {
		if i+1 >= len(fields) {
			break
		}
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		event.Interface(key, fields[i+1])
	}
}
