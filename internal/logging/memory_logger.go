package logging

import (
	"fmt"
	"strings"
	"sync"
)

// Level identifies the severity of a recorded message.
type Level string

const (
	LevelVerbose Level = "verbose"
	LevelInfo    Level = "info"
	LevelWarn    Level = "warn"
	LevelError   Level = "error"
)

// Entry is one message captured by a MemoryLogger.
type Entry struct {
	Level   Level
	Message string
}

// MemoryLogger keeps every message in memory so tests can assert on them.
// Safe for concurrent use by multiple goroutines.
type MemoryLogger struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryLogger creates an empty MemoryLogger.
func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Verbose(format string, args ...interface{}) {
	l.add(LevelVerbose, format, args)
}

func (l *MemoryLogger) Info(format string, args ...interface{}) { l.add(LevelInfo, format, args) }
func (l *MemoryLogger) Warn(format string, args ...interface{}) { l.add(LevelWarn, format, args) }

func (l *MemoryLogger) Error(format string, args ...interface{}) {
	l.add(LevelError, format, args)
}

func (l *MemoryLogger) add(level Level, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

// Entries returns the messages logged at level, in order.
func (l *MemoryLogger) Entries(level Level) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range l.entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Contains reports whether any message at level contains substr.
func (l *MemoryLogger) Contains(level Level, substr string) bool {
	for _, msg := range l.Entries(level) {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}
