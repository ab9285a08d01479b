package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level определяет уровни логирования
type Level int

const (
	TRACE Level = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String возвращает строковое представление уровня логирования
func (l Level) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config string ("debug", "WARN", ...) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TRACE, nil
	case "DEBUG":
		return DEBUG, nil
	case "", "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Logger is a leveled wrapper around the standard logger.
type Logger struct {
	mu    sync.RWMutex
	out   *log.Logger
	level Level
}

// New creates a logger writing to w with the given minimum level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{
		out:   log.New(w, "", log.LstdFlags|log.Lmicroseconds),
		level: level,
	}
}

// Глобальный экземпляр логгера
var std = New(os.Stderr, INFO)

// Default returns the process-wide logger.
func Default() *Logger { return std }

// SetOutput redirects the global logger (tests use io.Discard or a buffer).
func SetOutput(w io.Writer) {
	std.mu.Lock()
	std.out.SetOutput(w)
	std.mu.Unlock()
}

// SetLevel changes the global minimum level.
func SetLevel(level Level) {
	std.SetLevel(level)
}

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

func (l *Logger) Enabled(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level >= l.level
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.out.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

func (l *Logger) Tracef(format string, args ...interface{}) { l.logf(TRACE, format, args...) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.logf(DEBUG, format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.logf(INFO, format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.logf(WARN, format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.logf(ERROR, format, args...) }

// Tracef логирует сообщение уровня TRACE
func Tracef(format string, args ...interface{}) { std.logf(TRACE, format, args...) }

// Debugf логирует сообщение уровня DEBUG
func Debugf(format string, args ...interface{}) { std.logf(DEBUG, format, args...) }

// Infof логирует сообщение уровня INFO
func Infof(format string, args ...interface{}) { std.logf(INFO, format, args...) }

// Warnf логирует сообщение уровня WARN
func Warnf(format string, args ...interface{}) { std.logf(WARN, format, args...) }

// Errorf логирует сообщение уровня ERROR
func Errorf(format string, args ...interface{}) { std.logf(ERROR, format, args...) }
