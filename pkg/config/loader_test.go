package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "dashboard.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoaderLoadsFile(t *testing.T) {
	path := writeConfigFile(t, `
sections:
  - name: Media
    items:
      - name: Jellyfin
        url: https://jellyfin.local
`)

	loader := NewLoader(path)
	if err := loader.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cfg := loader.Config()
	if len(cfg.Sections) != 1 || cfg.Sections[0].Name != "Media" {
		t.Errorf("unexpected config: %#v", cfg.Sections)
	}
	if loader.UsingFallback() {
		t.Error("loader should not report fallback for a valid file")
	}
}

func TestLoaderFallsBackOnMissingFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "nope.yaml"))
	if err := loader.Load(); err != nil {
		t.Fatalf("Load should not fail for a missing file, got: %v", err)
	}

	cfg := loader.Config()
	if cfg == nil {
		t.Fatal("Config returned nil")
	}
	if !loader.UsingFallback() {
		t.Error("loader should report fallback")
	}
	if len(cfg.Sections) == 0 {
		t.Error("fallback config should have the starter section")
	}
}

func TestLoaderFallsBackOnInvalidConfig(t *testing.T) {
	path := writeConfigFile(t, "display:\n  columns: 99\n")

	loader := NewLoader(path)
	if err := loader.Load(); err != nil {
		t.Fatalf("Load should not fail for an invalid file, got: %v", err)
	}
	if !loader.UsingFallback() {
		t.Error("loader should fall back when validation fails")
	}
}

func TestLoaderReloadKeepsPreviousOnFailure(t *testing.T) {
	path := writeConfigFile(t, `
sections:
  - name: Media
    items: []
`)

	loader := NewLoader(path)
	if err := loader.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("display:\n  columns: 99\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	if err := loader.Reload(); err == nil {
		t.Fatal("Reload should fail for an invalid document")
	}

	cfg := loader.Config()
	if len(cfg.Sections) != 1 || cfg.Sections[0].Name != "Media" {
		t.Errorf("previous config should survive a failed reload, got %#v", cfg.Sections)
	}
}

func TestLoaderReloadAppliesNewConfig(t *testing.T) {
	path := writeConfigFile(t, "display:\n  columns: 2\n")

	loader := NewLoader(path)
	if err := loader.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("display:\n  columns: 5\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	if err := loader.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if got := loader.Config().Display.Columns; got != 5 {
		t.Errorf("Columns = %d, want 5", got)
	}
}

func TestNewLoaderPathPrecedence(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/tmp/from-env.yaml")

	if got := NewLoader("/tmp/explicit.yaml").Path(); got != "/tmp/explicit.yaml" {
		t.Errorf("explicit path ignored, got %q", got)
	}
	if got := NewLoader("").Path(); got != "/tmp/from-env.yaml" {
		t.Errorf("CONFIG_PATH ignored, got %q", got)
	}

	t.Setenv("CONFIG_PATH", "")
	if got := NewLoader("").Path(); got != DefaultConfigPath {
		t.Errorf("default path = %q, want %q", got, DefaultConfigPath)
	}
}
