// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	DatabasePath string `json:"database_path,omitempty"` // SQLite database location
	LatexBinary  string `json:"latex_binary,omitempty"`  // LaTeX compiler binary (default pdflatex)

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// AI
	Provider string `json:"provider,omitempty"` // LLM provider: anthropic or gemini
	Model    string `json:"model,omitempty"`    // Model override for the tailoring tier
	APIKey   string `json:"api_key,omitempty"`  // Plaintext key; prefer the encrypted keystore

	// Behavior
	DebounceMs int  `json:"debounce_ms,omitempty"` // Compile debounce window in milliseconds
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA job boards
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.DebounceMs < 0 {
		return fmt.Errorf("config error: 'debounce_ms' must be non-negative")
	}
	if c.Provider != "" && c.Provider != "anthropic" && c.Provider != "gemini" {
		return fmt.Errorf("config error: unknown provider: %s", c.Provider)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DatabasePath == "" {
		result.DatabasePath = defaults.DatabasePath
	}
	if result.LatexBinary == "" {
		result.LatexBinary = defaults.LatexBinary
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DebounceMs == 0 {
		result.DebounceMs = defaults.DebounceMs
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Defaults returns the built-in configuration defaults
func Defaults() Config {
	home, err := os.UserHomeDir()
	dbPath := "resume-studio.db"
	if err == nil {
		dbPath = filepath.Join(home, ".resume-studio", "resume-studio.db")
	}
	return Config{
		DatabasePath: dbPath,
		LatexBinary:  "pdflatex",
		Port:         8080,
		Provider:     "anthropic",
		DebounceMs:   600,
	}
}

// Debounce returns the configured debounce window as a duration
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}
