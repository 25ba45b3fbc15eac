// internal/logbook/logbook.go
//
// The logbook records walkthrough progress to an append-only text file under
// .glossa/logs/ and keeps a small in-memory window of recent entries for the
// TUI's log panel, so rendering never rereads the file.

package logbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level is the severity of a log entry.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

const recentWindow = 64

// Logbook appends entries to a text file. The mutex guards against bubbletea
// commands firing while a view renders.
type Logbook struct {
	mu     sync.Mutex
	path   string
	recent []string
	total  int
}

// New creates a logbook writing to path, creating parent directories as
// needed.
func New(path string) (*Logbook, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logbook: ensure log dir: %w", err)
	}
	return &Logbook{path: path}, nil
}

// Path returns the file backing this logbook.
func (l *Logbook) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Append writes one entry. Failures to persist are swallowed: losing a log
// line must never interrupt the walkthrough.
func (l *Logbook) Append(level Level, message string) {
	if l == nil {
		return
	}
	message = strings.TrimSpace(message)
	line := fmt.Sprintf("%s %-5s %s",
		time.Now().UTC().Format(time.RFC3339), string(level), message)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.total++
	l.recent = append(l.recent, line)
	if len(l.recent) > recentWindow {
		l.recent = l.recent[len(l.recent)-recentWindow:]
	}
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer file.Close()
	_, _ = file.WriteString(line + "\n")
}

// Tail returns up to maxLines of the most recent entries from this session.
func (l *Logbook) Tail(maxLines int) []string {
	if l == nil || maxLines <= 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.recent) == 0 {
		return nil
	}
	start := 0
	if len(l.recent) > maxLines {
		start = len(l.recent) - maxLines
	}
	return append([]string{}, l.recent[start:]...)
}

// Len returns how many entries this session has appended.
func (l *Logbook) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

// Info appends an informational entry.
func (l *Logbook) Info(format string, args ...any) {
	l.Append(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn appends a warning entry.
func (l *Logbook) Warn(format string, args ...any) {
	l.Append(LevelWarn, fmt.Sprintf(format, args...))
}

// Error appends an error entry.
func (l *Logbook) Error(format string, args ...any) {
	l.Append(LevelError, fmt.Sprintf(format, args...))
}
