package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/watchfire-io/abacus/internal/config"
	"github.com/watchfire-io/abacus/internal/models"
)

func TestWatcherReloadsSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.SettingsFileName)
	if err := os.WriteFile(path, []byte("version: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Stop()
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	content := "version: 1\nappearance:\n  theme: blue\n  animation: false\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events():
		if ev.Err != nil {
			t.Fatalf("reload error: %v", ev.Err)
		}
		if ev.Settings.Appearance.Theme != models.ThemeBlue {
			t.Errorf("Theme = %q, want %q", ev.Settings.Appearance.Theme, models.ThemeBlue)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for settings reload")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.SettingsFileName)

	w, err := New(path, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Stop()
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestStopTwice(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), config.SettingsFileName), nil)
	if err != nil {
		t.Fatal(err)
	}
	w.Stop()
	w.Stop()
}
