package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsDefaults(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("USERPROFILE", tmp)

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings(): %v", err)
	}
	if s.Match != `.*\.jpeg$` {
		t.Fatalf("unexpected default match: %q", s.Match)
	}
	if s.Rename != `(jpeg)` || s.Replace != "jpg" {
		t.Fatalf("unexpected default rename/replace: %q %q", s.Rename, s.Replace)
	}
	if !s.ShowUnchanged {
		t.Fatalf("expected show_unchanged default true")
	}
	if s.PreviewLimit != 10 {
		t.Fatalf("expected preview_limit 10, got %d", s.PreviewLimit)
	}
}

func TestLoadSettingsFromFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("USERPROFILE", tmp)

	d, err := EnsureDataDir()
	if err != nil {
		t.Fatalf("EnsureDataDir(): %v", err)
	}
	cfg := "match: .*\\.png$\nreplace: webp\nshow_unchanged: false\npreview_limit: 25\n"
	if err := os.WriteFile(filepath.Join(d, "config.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings(): %v", err)
	}
	if s.Match != `.*\.png$` {
		t.Fatalf("file match not applied: %q", s.Match)
	}
	if s.Replace != "webp" {
		t.Fatalf("file replace not applied: %q", s.Replace)
	}
	if s.ShowUnchanged {
		t.Fatalf("file show_unchanged not applied")
	}
	if s.PreviewLimit != 25 {
		t.Fatalf("file preview_limit not applied: %d", s.PreviewLimit)
	}
	// rename untouched by the file keeps its default
	if s.Rename != `(jpeg)` {
		t.Fatalf("default rename lost: %q", s.Rename)
	}
}

func TestLoadSettingsEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("USERPROFILE", tmp)
	t.Setenv("RENAMR_REPLACE", "avif")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings(): %v", err)
	}
	if s.Replace != "avif" {
		t.Fatalf("env override not applied: %q", s.Replace)
	}
}
