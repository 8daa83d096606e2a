package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTuningWatcherReportsTargetOnly(t *testing.T) {
	dir := t.TempDir()
	path := writeTuning(t, dir, "difficulty: newbro\n")
	w, err := NewTuningWatcher(path)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(path, []byte("difficulty: triglavian\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if filepath.Clean(name) != filepath.Clean(path) {
			t.Fatalf("expected event for %s, got %s", path, name)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("expected a change event for the tuning file")
	}
}

func TestTuningWatcherCloseTwice(t *testing.T) {
	path := writeTuning(t, t.TempDir(), "")
	w, err := NewTuningWatcher(path)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatalf("expected events channel closed")
	}
}

func TestNewTuningWatcherMissingDir(t *testing.T) {
	if _, err := NewTuningWatcher(filepath.Join(t.TempDir(), "nope", "tuning.yaml")); err == nil {
		t.Fatalf("expected error for a missing directory")
	}
}
