// Package logger records the viewer's run log. Every line carries a timestamp
// and a level; lines are kept for the session and appended to a file.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is where the viewer log goes when no other path is configured,
// relative to the working directory.
const DefaultPath = "logs/flythrough.txt"

// Level tags a line with its severity.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (lv Level) String() string {
	switch lv {
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Logger is safe for concurrent use. The log file is opened once by New;
// if it cannot be opened, lines are still kept in memory and the render loop
// carries on.
type Logger struct {
	mu    sync.Mutex
	path  string
	file  *os.File
	lines []string
	now   func() time.Time
}

// New opens path for appending (DefaultPath if empty), creating its directory.
func New(path string) *Logger {
	if path == "" {
		path = DefaultPath
	}
	l := &Logger{path: path, now: time.Now}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
		l.file, _ = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	}
	return l
}

// Path returns the file the logger appends to.
func (l *Logger) Path() string {
	return l.path
}

// Infof logs at LevelInfo.
func (l *Logger) Infof(format string, args ...any) {
	l.write(LevelInfo, fmt.Sprintf(format, args...))
}

// Warnf logs at LevelWarn.
func (l *Logger) Warnf(format string, args ...any) {
	l.write(LevelWarn, fmt.Sprintf(format, args...))
}

// Errorf logs at LevelError.
func (l *Logger) Errorf(format string, args ...any) {
	l.write(LevelError, fmt.Sprintf(format, args...))
}

func (l *Logger) write(lv Level, msg string) {
	line := fmt.Sprintf("%s %-5s %s", l.now().Format(time.DateTime), lv, msg)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
	if l.file != nil {
		_, _ = l.file.WriteString(line + "\n")
	}
}

// Lines returns a copy of every line logged so far.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Close closes the log file. Later lines are kept in memory only.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
