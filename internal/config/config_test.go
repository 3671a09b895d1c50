package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"database_path": "/tmp/studio.db",
		"provider": "anthropic",
		"port": 9090,
		"debounce_ms": 250,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/tmp/studio.db", cfg.DatabasePath)
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 250, cfg.DebounceMs)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_PortOutOfRange(t *testing.T) {
	cfg := &Config{Port: 70000}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_NegativeDebounce(t *testing.T) {
	cfg := &Config{DebounceMs: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "debounce_ms")
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := &Config{Provider: "openai"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Provider:   "gemini",
		Port:       8080,
		DebounceMs: 600,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		DatabasePath: "default.db",
		LatexBinary:  "pdflatex",
		Provider:     "anthropic",
		Port:         8080,
		DebounceMs:   600,
	}

	partial := Config{
		Provider: "gemini",
		Port:     9090,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "gemini", merged.Provider)
	assert.Equal(t, 9090, merged.Port)

	// Default values should fill in empty fields
	assert.Equal(t, "default.db", merged.DatabasePath)
	assert.Equal(t, "pdflatex", merged.LatexBinary)
	assert.Equal(t, 600, merged.DebounceMs)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Provider: "anthropic",
		Model:    "claude-opus-4-20250514",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "anthropic", merged.Provider)
	assert.Equal(t, "claude-opus-4-20250514", merged.Model)
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, "pdflatex", d.LatexBinary)
	assert.Equal(t, "anthropic", d.Provider)
	assert.Equal(t, 8080, d.Port)
	assert.Equal(t, 600, d.DebounceMs)
	assert.NoError(t, d.Validate())
}

func TestDebounceDuration(t *testing.T) {
	cfg := &Config{DebounceMs: 250}
	assert.Equal(t, 250*time.Millisecond, cfg.Debounce())
}
