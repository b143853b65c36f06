package models

import "testing"

func TestNormalize(t *testing.T) {
	s := &Settings{Appearance: AppearanceConfig{Theme: "purple"}}
	s.Normalize()

	if s.Version != 1 {
		t.Errorf("Version = %d, want 1", s.Version)
	}
	if s.Appearance.Theme != ThemeDefault {
		t.Errorf("Theme = %q, want %q", s.Appearance.Theme, ThemeDefault)
	}
	if s.Limits.MaxFactorial != 5000 {
		t.Errorf("MaxFactorial = %d, want 5000", s.Limits.MaxFactorial)
	}
	if s.Appearance.Animation {
		t.Error("Normalize should not turn on animation")
	}
}

func TestValidTheme(t *testing.T) {
	for _, name := range Themes {
		if !ValidTheme(name) {
			t.Errorf("ValidTheme(%q) = false", name)
		}
	}
	if ValidTheme("") {
		t.Error("ValidTheme(\"\") = true")
	}
}
