// Package logging is a small leveled logger over the standard log package with colored
// level tags.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
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

var levelColors = map[Level]*color.Color{
	DEBUG: color.New(color.FgHiBlack),
	INFO:  color.New(color.FgGreen),
	WARN:  color.New(color.FgYellow),
	ERROR: color.New(color.FgRed, color.Bold),
}

// ParseLevel accepts level names case-insensitively. An empty string means INFO.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
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

type Logger struct {
	mu    sync.Mutex
	out   *log.Logger
	level Level
}

func New(w io.Writer, level Level) *Logger {
	return &Logger{
		out:   log.New(w, "", log.LstdFlags),
		level: level,
	}
}

var defaultLogger = New(os.Stderr, INFO)

// Default returns the process-wide logger. Its level is set once at startup.
func Default() *Logger {
	return defaultLogger
}

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

func (l *Logger) Enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level
}

func (l *Logger) logf(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	tag := levelColors[level].Sprintf("[%s]", level)
	l.out.Printf("%s %s", tag, fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(DEBUG, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(INFO, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(WARN, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(ERROR, format, args...) }
