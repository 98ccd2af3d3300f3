package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable the tool reads, e.g.
// OTSCH_VERBOSE.
const EnvPrefix = "OTSCH"

// Output formats understood by the run command.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config stores the tool settings. Values come from the defaults, then the
// config file, then the environment.
type Config struct {
	Verbose   bool   `json:"verbose"`
	LogBuffer int    `json:"log_buffer" split_words:"true"`
	Output    string `json:"output"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogBuffer: 1000,
		Output:    OutputText,
	}
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if c.LogBuffer < 0 {
		return fmt.Errorf("log buffer size %d must not be negative", c.LogBuffer)
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	return nil
}

// DefaultPath returns the platform config file location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("APPDATA"); dir != "" {
		// Windows: %APPDATA%\OpenTraceSch
		return filepath.Join(dir, "OpenTraceSch", "config.json"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	// Linux/macOS: ~/.config/opentracesch
	return filepath.Join(homeDir, ".config", "opentracesch", "config.json"), nil
}

// Load reads the config file at path, if present, and applies environment
// overrides. An empty path selects DefaultPath.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults stand
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
