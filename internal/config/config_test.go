// Package config tests configuration loading.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME at an empty directory so a developer's real
// ~/.tick/tick.toml cannot leak into tests.
func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldWd) })
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.StoreFile != DefaultStoreFile {
		t.Errorf("StoreFile: got %q, want %q", cfg.StoreFile, DefaultStoreFile)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("LogFormat: got %q, want %q", cfg.LogFormat, DefaultLogFormat)
	}
	if cfg.LogTimestamps {
		t.Error("LogTimestamps: got true, want false")
	}
}

func TestLoadResolvesStorePath(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := Load(nil, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !filepath.IsAbs(cfg.StoreFile) {
		t.Errorf("StoreFile not absolute: %q", cfg.StoreFile)
	}
	if filepath.Base(cfg.StoreFile) != DefaultStoreFile {
		t.Errorf("StoreFile: got %q, want base %q", cfg.StoreFile, DefaultStoreFile)
	}
}

func TestLoadFromProjectFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	chdir(t, dir)

	content := "store_file = \"work.json\"\nlog_level = \"debug\"\n"
	if err := os.WriteFile(filepath.Join(dir, "tick.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(nil, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if filepath.Base(cfg.StoreFile) != "work.json" {
		t.Errorf("StoreFile: got %q, want base work.json", cfg.StoreFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
}

func TestLoadFromUserFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	chdir(t, dir)

	home := os.Getenv("HOME")
	if err := os.MkdirAll(filepath.Join(home, ".tick"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "log_format = \"json\"\n"
	if err := os.WriteFile(filepath.Join(home, ".tick", "tick.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(nil, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat: got %q, want json", cfg.LogFormat)
	}
}

func TestLoadFromEnv(t *testing.T) {
	isolate(t)
	chdir(t, t.TempDir())
	t.Setenv("TICK_FILE", "env.json")
	t.Setenv("TICK_LOG_LEVEL", "info")
	t.Setenv("TICK_LOG_TIMESTAMPS", "true")

	cfg, err := Load(nil, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if filepath.Base(cfg.StoreFile) != "env.json" {
		t.Errorf("StoreFile: got %q, want base env.json", cfg.StoreFile)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %q, want info", cfg.LogLevel)
	}
	if !cfg.LogTimestamps {
		t.Error("LogTimestamps: got false, want true")
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	isolate(t)
	chdir(t, t.TempDir())
	t.Setenv("TICK_FILE", "env.json")

	cfg, err := Load(nil, []string{"-file", "flag.json", "-log-level", "error"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if filepath.Base(cfg.StoreFile) != "flag.json" {
		t.Errorf("StoreFile: got %q, want base flag.json", cfg.StoreFile)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel: got %q, want error", cfg.LogLevel)
	}
}

func TestLoadWithSources(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	chdir(t, dir)

	content := "log_level = \"debug\"\n"
	if err := os.WriteFile(filepath.Join(dir, "tick.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TICK_LOG_FORMAT", "logfmt")

	cws, err := LoadWithSources(nil, []string{"-file", "flag.json"})
	if err != nil {
		t.Fatalf("LoadWithSources failed: %v", err)
	}

	wantSources := map[string]ConfigSource{
		"store_file":     SourceFlag,
		"log_level":      SourceProjFile,
		"log_format":     SourceEnv,
		"log_timestamps": SourceDefault,
	}
	for field, want := range wantSources {
		if got := cws.Sources[field]; got != want {
			t.Errorf("source of %s: got %q, want %q", field, got, want)
		}
	}
}

func TestBoolFromString(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"", false},
		{"nope", false},
	}

	for _, tt := range tests {
		if got := boolFromString(tt.in); got != tt.want {
			t.Errorf("boolFromString(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}
