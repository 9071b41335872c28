package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kyleking/cutecosmic/internal/config"
)

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s, err := config.LoadSettings(config.NewViper())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.ConfigDir != "" {
		t.Errorf("ConfigDir: got %q, want empty", s.ConfigDir)
	}

	if s.Mode != "system" {
		t.Errorf("Mode: got %q, want system", s.Mode)
	}

	if s.Log.Level != "info" || s.Log.Format != "text" {
		t.Errorf("unexpected log defaults: %+v", s.Log)
	}

	if s.Log.MaxSizeMB != 10 || s.Log.MaxBackups != 3 {
		t.Errorf("unexpected rotation defaults: %+v", s.Log)
	}
}

func TestLoadSettings_File(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "cutecosmic")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create settings dir: %v", err)
	}

	content := `config_dir: /srv/cosmic
log:
  file: /tmp/cutecosmic.log
  level: debug
`
	if err := os.WriteFile(filepath.Join(dir, "cutecosmic.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	s, err := config.LoadSettings(config.NewViper())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.ConfigDir != "/srv/cosmic" {
		t.Errorf("ConfigDir: got %q", s.ConfigDir)
	}

	if s.Log.File != "/tmp/cutecosmic.log" || s.Log.Level != "debug" {
		t.Errorf("unexpected log settings: %+v", s.Log)
	}

	if s.Log.Format != "text" {
		t.Errorf("Format should keep its default, got %q", s.Log.Format)
	}
}

func TestLoadSettings_EnvOverridesFile(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("CUTECOSMIC_LOG_LEVEL", "warn")
	t.Setenv("CUTECOSMIC_CONFIG_DIR", "/env/cosmic")

	dir := filepath.Join(xdg, "cutecosmic")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create settings dir: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "cutecosmic.yaml"), []byte("log:\n  level: debug\n"), 0644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	s, err := config.LoadSettings(config.NewViper())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Log.Level != "warn" {
		t.Errorf("Level: got %q, want env override", s.Log.Level)
	}

	if s.ConfigDir != "/env/cosmic" {
		t.Errorf("ConfigDir: got %q, want env override", s.ConfigDir)
	}
}

func TestLoadSettings_InvalidFile(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "cutecosmic")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create settings dir: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "cutecosmic.yaml"), []byte("log: [broken"), 0644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	if _, err := config.LoadSettings(config.NewViper()); err == nil {
		t.Error("expected error for invalid settings file")
	}
}

func TestSettingsStore(t *testing.T) {
	s := config.Settings{ConfigDir: "/srv/cosmic", SystemDirs: []string{"/opt/cosmic"}}

	store := s.Store()
	if store.UserDir() != "/srv/cosmic" {
		t.Errorf("UserDir: got %q", store.UserDir())
	}
}
