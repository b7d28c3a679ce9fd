// Package config loads the client configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tellerhq/teller"
	"gopkg.in/yaml.v3"
)

// Config represents the teller config file.
type Config struct {
	// BaseURL is the banking assistant API endpoint.
	BaseURL string `yaml:"base_url"`
	// StatePath is where the session state file lives.
	StatePath string `yaml:"state_path"`
	// LogPath enables structured debug logging to a file when non-empty.
	LogPath string `yaml:"log_path,omitempty"`
	// Colors overrides individual theme colors (ANSI indices 0-15).
	Colors *Colors `yaml:"colors,omitempty"`
}

// Colors holds per-role ANSI color overrides. Nil fields keep the default.
type Colors struct {
	UserMsg *int `yaml:"user_msg,omitempty"`
	Error   *int `yaml:"error,omitempty"`
	Success *int `yaml:"success,omitempty"`
	Warning *int `yaml:"warning,omitempty"`
	Muted   *int `yaml:"muted,omitempty"`
	Accent  *int `yaml:"accent,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:   "http://localhost:5000",
		StatePath: filepath.Join(stateDir(), "session.json"),
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(stateDir(), "config.yaml")
}

func stateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".teller")
}

// Load reads a config file, filling unset fields from Default(). A missing
// file at the default path is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = Default().BaseURL
	}
	if cfg.StatePath == "" {
		cfg.StatePath = Default().StatePath
	}
	return cfg, nil
}

// Theme builds the terminal theme, applying any color overrides.
func (c Config) Theme() teller.Theme {
	t := teller.DefaultTheme()
	if c.Colors == nil {
		return t
	}
	apply := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&t.UserMsg, c.Colors.UserMsg)
	apply(&t.Error, c.Colors.Error)
	apply(&t.Success, c.Colors.Success)
	apply(&t.Warning, c.Colors.Warning)
	apply(&t.Muted, c.Colors.Muted)
	apply(&t.Accent, c.Colors.Accent)
	return t
}
