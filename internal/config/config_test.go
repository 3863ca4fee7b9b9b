// config_test.go tests configuration loading, defaults, and save/load
// round trips.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.CommandTimeoutMS != 10000 {
		t.Errorf("CommandTimeoutMS = %d, want 10000", cfg.CommandTimeoutMS)
	}
	if cfg.HostLibName != "libRime" {
		t.Errorf("HostLibName = %q, want %q", cfg.HostLibName, "libRime")
	}
	if cfg.HostLibVersion != "unknown" {
		t.Errorf("HostLibVersion = %q, want %q", cfg.HostLibVersion, "unknown")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := strings.Join([]string{
		"log_level: debug",
		"command_timeout_ms: 500",
		"host_lib_name: libFoo",
		"host_lib_version: 2.1.0",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.CommandTimeoutMS != 500 {
		t.Errorf("CommandTimeoutMS = %d, want 500", cfg.CommandTimeoutMS)
	}
	if cfg.HostLibName != "libFoo" {
		t.Errorf("HostLibName = %q, want %q", cfg.HostLibName, "libFoo")
	}
	if cfg.HostLibVersion != "2.1.0" {
		t.Errorf("HostLibVersion = %q, want %q", cfg.HostLibVersion, "2.1.0")
	}
}

func TestLoad_PartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: warn\n"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.CommandTimeoutMS != 10000 {
		t.Errorf("CommandTimeoutMS = %d, want default 10000", cfg.CommandTimeoutMS)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: [unclosed"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := &Config{
		LogLevel:         "debug",
		CommandTimeoutMS: 2500,
		HostLibName:      "libBar",
		HostLibVersion:   "0.9.1",
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}
