package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGetWeekKey(t *testing.T) {
	// January 1st 2025 falls in ISO week 1
	key := getWeekKey(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	if key != "2025-W01" {
		t.Errorf("Expected 2025-W01, got %q", key)
	}
}

func TestWriteCreatesWeeklyFile(t *testing.T) {
	dir := t.TempDir()
	rl := NewRotatingLogger(dir, 4, 0)
	defer closeQuietly(t, rl)

	if _, err := rl.Write([]byte("hello\n")); err != nil {
		t.Fatalf("Expected write to succeed, got %v", err)
	}

	expected := filepath.Join(dir, fmt.Sprintf("%s%s.log", logFilePrefix, getWeekKey(time.Now())))
	content, err := os.ReadFile(expected)
	if err != nil {
		t.Fatalf("Expected weekly log file %s, got %v", expected, err)
	}
	if !strings.Contains(string(content), "hello") {
		t.Errorf("Expected log content, got %q", string(content))
	}
}

func TestSizeRotationCreatesNumberedFile(t *testing.T) {
	dir := t.TempDir()
	rl := NewRotatingLogger(dir, 4, 32)
	defer closeQuietly(t, rl)

	line := []byte("0123456789012345678901234567\n") // 29 bytes
	if _, err := rl.Write(line); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	if _, err := rl.Write(line); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	numbered := filepath.Join(dir, fmt.Sprintf("%s%s_01.log", logFilePrefix, getWeekKey(time.Now())))
	if _, err := os.Stat(numbered); err != nil {
		t.Errorf("Expected size rotation to create %s, got %v", numbered, err)
	}
}

func TestParseNumberedFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, logFilePrefix+"2025-W10_03.log")
	if err := os.WriteFile(name, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	num, size := parseNumberedFile(name)
	if num != 3 {
		t.Errorf("Expected sequence number 3, got %d", num)
	}
	if size != 1 {
		t.Errorf("Expected size 1, got %d", size)
	}

	if num, _ := parseNumberedFile(filepath.Join(dir, "unrelated.log")); num != 0 {
		t.Errorf("Expected 0 for an unrelated file, got %d", num)
	}
}

func TestCleanupOldLogs(t *testing.T) {
	dir := t.TempDir()
	rl := NewRotatingLogger(dir, 1, 0)
	defer closeQuietly(t, rl)

	old := filepath.Join(dir, logFilePrefix+"2020-W01.log")
	if err := os.WriteFile(old, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-30 * 24 * time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}

	if err := rl.cleanupOldLogs(); err != nil {
		t.Fatalf("Expected cleanup to succeed, got %v", err)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("Expected old log file to be removed")
	}
}

// closeQuietly closes without waiting out the cleanup goroutine timeout,
// which only matters for loggers started through SetupLogger
func closeQuietly(t *testing.T, rl *RotatingLogger) {
	t.Helper()
	close(rl.cleanupDone)
	if err := rl.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
