package logbook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTailReturnsRecentLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journey.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	for i := 0; i < 5; i++ {
		book.Info("entry-%d", i)
	}
	if book.Len() != 5 {
		t.Fatalf("Len = %d, want 5", book.Len())
	}
	lines := book.Tail(3)
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	for idx, want := range []string{"entry-2", "entry-3", "entry-4"} {
		if !strings.Contains(lines[idx], want) {
			t.Fatalf("line %d = %q, missing %s", idx, lines[idx], want)
		}
	}
}

func TestAppendPersistsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "journey.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	book.Warn("inventory %s is empty", "vowel")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "WARN") || !strings.Contains(string(data), "inventory vowel is empty") {
		t.Fatalf("unexpected log contents: %q", string(data))
	}
}

func TestNilLogbookIsSafe(t *testing.T) {
	var book *Logbook
	book.Info("ignored")
	if got := book.Tail(4); got != nil {
		t.Fatalf("nil Tail = %v, want nil", got)
	}
	if book.Len() != 0 {
		t.Fatalf("nil Len = %d, want 0", book.Len())
	}
}
