package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Helper to create a temp config file.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

const validConfigYAML = `
remote:
  base_url: "http://localhost:8080/v2"
  timeout_sec: 5
  cache_ttl_min: 30
  window_years: 5
  page_size: 10
narrator:
  base_url: "http://localhost:9090/v1/"
  model: "mistral-small"
  api_key_env: "TEST_NARRATOR_KEY"
  timeout_sec: 30
  max_tokens: 500
  temperature: 0.5
charts:
  palette: "Ocean"
  radar_max_metrics: 5
logging:
  level: "debug"
`

func TestLoadConfig_Valid(t *testing.T) {
	configPath := createTempConfigFile(t, validConfigYAML)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Remote.BaseURL != "http://localhost:8080/v2" {
		t.Errorf("Expected base URL from file, got '%s'", cfg.Remote.BaseURL)
	}

	if cfg.Remote.Timeout() != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", cfg.Remote.Timeout())
	}

	if cfg.Remote.CacheTTL() != 30*time.Minute {
		t.Errorf("Expected 30m cache TTL, got %v", cfg.Remote.CacheTTL())
	}

	if cfg.Charts.Palette != "Ocean" {
		t.Errorf("Expected palette Ocean, got '%s'", cfg.Charts.Palette)
	}
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	configPath := createTempConfigFile(t, "logging:\n  level: warn\n")

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected level warn, got '%s'", cfg.Logging.Level)
	}

	if cfg.Remote.BaseURL != Default().Remote.BaseURL {
		t.Errorf("Expected default base URL, got '%s'", cfg.Remote.BaseURL)
	}

	if cfg.Narrator.Timeout() != 30*time.Second {
		t.Errorf("Expected default narrator timeout, got %v", cfg.Narrator.Timeout())
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("Expected error for nonexistent file, got nil")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	configPath := createTempConfigFile(t, "invalid: yaml: content: [}")

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid YAML, got nil")
	}
}

func TestLoadOrDefault_Empty(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config does not validate: %v", err)
	}
}

func TestConfig_Validate_Errors(t *testing.T) {
	tests := []struct {
		mutate  func(*Config)
		wantErr error
		name    string
	}{
		{name: "missing base url", mutate: func(c *Config) { c.Remote.BaseURL = "" }, wantErr: ErrMissingBaseURL},
		{name: "relative base url", mutate: func(c *Config) { c.Remote.BaseURL = "/v2" }, wantErr: ErrInvalidBaseURL},
		{name: "zero timeout", mutate: func(c *Config) { c.Remote.TimeoutSec = 0 }, wantErr: ErrInvalidTimeout},
		{name: "negative ttl", mutate: func(c *Config) { c.Remote.CacheTTLMin = -1 }, wantErr: ErrInvalidCacheTTL},
		{name: "zero window", mutate: func(c *Config) { c.Remote.WindowYears = 0 }, wantErr: ErrInvalidWindow},
		{name: "zero page size", mutate: func(c *Config) { c.Remote.PageSize = 0 }, wantErr: ErrInvalidPageSize},
		{name: "missing model", mutate: func(c *Config) { c.Narrator.Model = "" }, wantErr: ErrMissingModel},
		{name: "bad narrator url", mutate: func(c *Config) { c.Narrator.BaseURL = "mistral" }, wantErr: ErrInvalidNarratorURL},
		{name: "zero narrator timeout", mutate: func(c *Config) { c.Narrator.TimeoutSec = 0 }, wantErr: ErrInvalidNarratorTime},
		{name: "zero max tokens", mutate: func(c *Config) { c.Narrator.MaxTokens = 0 }, wantErr: ErrInvalidMaxTokens},
		{name: "hot temperature", mutate: func(c *Config) { c.Narrator.Temperature = 3 }, wantErr: ErrInvalidTemperature},
		{name: "missing key env", mutate: func(c *Config) { c.Narrator.APIKeyEnv = "" }, wantErr: ErrMissingAPIKeyEnv},
		{name: "small radar", mutate: func(c *Config) { c.Charts.RadarMaxMetrics = 2 }, wantErr: ErrInvalidRadarMetrics},
		{name: "unknown palette", mutate: func(c *Config) { c.Charts.Palette = "Neon" }, wantErr: ErrUnknownPalette},
		{name: "zero temperature", mutate: func(c *Config) { c.Narrator.Temperature = 0 }},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "verbose" }, wantErr: ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	cfg := Default()
	cfg.Charts.Palette = "Sunset"

	path := filepath.Join(t.TempDir(), "saved.yaml")
	if err := cfg.SaveConfig(path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.Charts.Palette != "Sunset" {
		t.Errorf("Expected palette Sunset, got '%s'", loaded.Charts.Palette)
	}
}

func TestLoadCredential_FromEnv(t *testing.T) {
	t.Setenv("INDICOMP_TEST_KEY", "  from-env  ")

	key, err := LoadCredential("INDICOMP_TEST_KEY", "")
	if err != nil {
		t.Fatalf("LoadCredential failed: %v", err)
	}

	if key != "from-env" {
		t.Errorf("Expected 'from-env', got '%s'", key)
	}
}

func TestLoadCredential_FromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("INDICOMP_FILE_KEY=from-file\n"), 0600); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	key, err := LoadCredential("INDICOMP_FILE_KEY", envFile)
	if err != nil {
		t.Fatalf("LoadCredential failed: %v", err)
	}

	if key != "from-file" {
		t.Errorf("Expected 'from-file', got '%s'", key)
	}
}

func TestLoadCredential_MissingFile(t *testing.T) {
	key, err := LoadCredential("INDICOMP_ABSENT_KEY", filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadCredential failed: %v", err)
	}

	if key != "" {
		t.Errorf("Expected empty key, got '%s'", key)
	}
}
