package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestNew_CreatesLogFile(t *testing.T) {
	tmpDir := t.TempDir()

	l, err := New(&Config{
		Level:  LevelDebug,
		LogDir: tmpDir,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	if !strings.HasPrefix(filepath.Base(l.LogPath()), "todo_") {
		t.Errorf("log file %q should have todo_ prefix", l.LogPath())
	}

	l.Info("hello", "key", "value")
	l.Close()

	data, err := os.ReadFile(l.LogPath())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing message: %s", data)
	}
	if !strings.Contains(string(data), "key=value") {
		t.Errorf("log file missing attribute: %s", data)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	tmpDir := t.TempDir()

	l, err := New(&Config{
		Level:  LevelWarn,
		LogDir: tmpDir,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.Debug("too quiet")
	l.Warn("loud enough")
	l.Close()

	data, _ := os.ReadFile(l.LogPath())
	if strings.Contains(string(data), "too quiet") {
		t.Error("debug message should be filtered at warn level")
	}
	if !strings.Contains(string(data), "loud enough") {
		t.Error("warn message should be logged")
	}
}

func TestNewNoop(t *testing.T) {
	l := NewNoop()
	// Should not panic or write anywhere.
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
	if err := l.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestCleanup_RemovesOldFiles(t *testing.T) {
	tmpDir := t.TempDir()

	// Seed stale log files
	old := filepath.Join(tmpDir, "todo_20200101_000000.log")
	if err := os.WriteFile(old, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-30 * 24 * time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}
	// A non-log file must survive
	other := filepath.Join(tmpDir, "notes.txt")
	if err := os.WriteFile(other, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	l, err := New(&Config{
		Level:       LevelInfo,
		LogDir:      tmpDir,
		MaxLogFiles: 1,
		MaxLogAge:   7 * 24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	if err := l.Cleanup(); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("stale log file should be removed")
	}
	if _, err := os.Stat(other); err != nil {
		t.Error("non-log file should survive cleanup")
	}
	if _, err := os.Stat(l.LogPath()); err != nil {
		t.Error("current log file should survive cleanup")
	}
}

func TestGlobal_DefaultsToNoop(t *testing.T) {
	SetGlobal(nil)
	l := Global()
	if l == nil {
		t.Fatal("Global() should never return nil")
	}
	// Package-level helpers go through the noop without error.
	Debug("a")
	Info("b")
	Warn("c")
	Error("d")
}

func TestInitGlobalAndClose(t *testing.T) {
	tmpDir := t.TempDir()

	if err := InitGlobal(&Config{Level: LevelInfo, LogDir: tmpDir}); err != nil {
		t.Fatalf("InitGlobal: %v", err)
	}
	path := Global().LogPath()

	Info("global message")
	if err := CloseGlobal(); err != nil {
		t.Fatalf("CloseGlobal: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "global message") {
		t.Errorf("log file missing message: %s", data)
	}
}

func TestWith(t *testing.T) {
	tmpDir := t.TempDir()

	l, err := New(&Config{Level: LevelInfo, LogDir: tmpDir})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.With("component", "store").Info("attached")
	l.Close()

	data, _ := os.ReadFile(l.LogPath())
	if !strings.Contains(string(data), "component=store") {
		t.Errorf("With attribute missing: %s", data)
	}
}
