package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"blackbeard/internal/config"
)

func TestRunFailsOnInvalidConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".config", "blackbeard")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	contents := "[paths]\napi_bind = \"not-a-bind\"\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := run(context.Background()); err == nil {
		t.Fatal("expected run to fail on invalid config")
	}
}

func TestBuildSocketPath(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")

	expected := filepath.Join(cfg.Paths.LogDir, "blackbeard.sock")
	if got := buildSocketPath(&cfg); got != expected {
		t.Fatalf("expected socket path %q, got %q", expected, got)
	}

	if got := buildSocketPath(nil); got != filepath.Join("", "blackbeard.sock") {
		t.Fatalf("expected default socket path, got %q", got)
	}
}
