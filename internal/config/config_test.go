// ABOUTME: Tests for config defaults, path expansion, and load/save.
// ABOUTME: XDG_CONFIG_HOME is redirected to a temp dir to avoid real files.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "badger" {
		t.Errorf("GetBackend() = %q, want badger", got)
	}

	cfg.Backend = "sqlite"
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want sqlite", got)
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetDataDir(); got == "" {
		t.Error("expected a default data directory")
	}

	cfg.DataDir = "/tmp/fittrack-test"
	if got := cfg.GetDataDir(); got != "/tmp/fittrack-test" {
		t.Errorf("GetDataDir() = %q", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadMissingConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Backend != "" || cfg.DataDir != "" {
		t.Errorf("missing config should load as zero value: %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{Backend: "sqlite", DataDir: "~/fitness"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Backend != "sqlite" || loaded.DataDir != "~/fitness" {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestLoadCorruptConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "fittrack", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected an error for corrupt config")
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "redis"}
	if _, err := cfg.OpenStore(); err == nil {
		t.Error("expected an error for an unknown backend")
	}
}

func TestOpenStoreBadger(t *testing.T) {
	cfg := &Config{Backend: "badger", DataDir: t.TempDir()}
	gw, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() error: %v", err)
	}
	defer gw.Close()

	state, err := gw.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if state != nil {
		t.Error("fresh store should load nil")
	}
}
