// Package config provides configuration management for scripthost.
// It uses koanf v2 to load configuration from YAML files and supports
// writing the effective configuration back to disk.
//
// Configuration is loaded from /etc/scripthost/config.yaml by default; a
// missing file is not an error, the defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	goyaml "gopkg.in/yaml.v3"
)

// DefaultConfigPath is the default location for the configuration file.
const DefaultConfigPath = "/etc/scripthost/config.yaml"

// Config holds the scripthost configuration loaded from the YAML file.
// Fields are tagged for both koanf (loading) and yaml (saving).
type Config struct {
	// LogLevel controls logging verbosity.
	// Valid values: "debug", "info", "warn", "error".
	// Default: "info".
	LogLevel string `koanf:"log_level" yaml:"log_level"`

	// CommandTimeoutMS is the default timeout in milliseconds applied to
	// commands run from the CLI when -timeout is not given.
	// Default: 10000 (10 seconds). Zero means fire-and-forget to the
	// runner, which is never the right CLI default, so zero is replaced.
	CommandTimeoutMS int `koanf:"command_timeout_ms" yaml:"command_timeout_ms"`

	// HostLibName is the display name of the host library the plugin is
	// embedded in, used in the diagnostics line.
	// Default: "libRime".
	HostLibName string `koanf:"host_lib_name" yaml:"host_lib_name"`

	// HostLibVersion is the host library version reported in the
	// diagnostics line when running standalone, where there is no live
	// host library to ask.
	// Default: "unknown".
	HostLibVersion string `koanf:"host_lib_version" yaml:"host_lib_version"`
}

// Load reads configuration from the YAML file at path. A missing file
// yields the default configuration; a malformed file is an error.
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg.applyDefaults()
		return &cfg, nil
	}

	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults sets default values for unset configuration fields.
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.CommandTimeoutMS <= 0 {
		c.CommandTimeoutMS = 10000
	}
	if c.HostLibName == "" {
		c.HostLibName = "libRime"
	}
	if c.HostLibVersion == "" {
		c.HostLibVersion = "unknown"
	}
}

// Save writes the configuration to the specified YAML file path,
// creating parent directories as needed.
func Save(path string, cfg *Config) error {
	data, err := goyaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to %s: %w", path, err)
	}

	return nil
}
