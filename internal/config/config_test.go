package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/watchfire-io/abacus/internal/models"
)

func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	memFs := afero.NewMemMapFs()
	prev := UseFs(memFs)
	t.Cleanup(func() { UseFs(prev) })
	return memFs
}

func TestLoadSettingsDefaultsWhenMissing(t *testing.T) {
	useMemFs(t)

	s, err := LoadSettingsFrom("/nowhere/settings.yaml")
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}
	if s.Appearance.Theme != models.ThemeDefault || !s.Appearance.Animation {
		t.Errorf("defaults not applied: %+v", s.Appearance)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	useMemFs(t)
	path := "/home/user/.abacus/settings.yaml"

	want := models.NewSettings()
	want.Appearance.Theme = models.ThemeYellow
	want.Appearance.Animation = false
	want.Appearance.Banner = "/tmp/banner.txt"
	want.Limits.MaxFactorial = 42

	if err := SaveYAML(path, want); err != nil {
		t.Fatalf("SaveYAML: %v", err)
	}
	got, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadSettingsPartialFileKeepsDefaults(t *testing.T) {
	memFs := useMemFs(t)
	path := "/cfg/settings.yaml"
	if err := afero.WriteFile(memFs, path, []byte("appearance:\n  theme: green\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}
	if s.Appearance.Theme != models.ThemeGreen {
		t.Errorf("Theme = %q", s.Appearance.Theme)
	}
	if !s.Appearance.Animation || s.Limits.MaxFactorial != 5000 {
		t.Errorf("defaults lost: %+v", s)
	}
}

func TestLoadSettingsInvalidYAML(t *testing.T) {
	memFs := useMemFs(t)
	path := "/cfg/settings.yaml"
	if err := afero.WriteFile(memFs, path, []byte("appearance: [oops"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadSettingsFrom(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("error = %v, want parse failure", err)
	}
}

func TestReadText(t *testing.T) {
	memFs := useMemFs(t)
	if err := afero.WriteFile(memFs, "/banner.txt", []byte("ABACUS\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadText("/banner.txt")
	if err != nil || got != "ABACUS\n" {
		t.Errorf("ReadText = %q, %v", got, err)
	}
	if _, err := ReadText("/missing.txt"); err == nil {
		t.Error("ReadText on missing file should fail")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	quiet := NewLogger(&buf, false)
	quiet.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug line written at warn level: %q", buf.String())
	}

	loud := NewLogger(&buf, true)
	loud.WithField("session", "s1").Debug("shown")
	if !strings.Contains(buf.String(), "shown") || !strings.Contains(buf.String(), "session=s1") {
		t.Errorf("log output = %q", buf.String())
	}
}
