// Package config provides configuration management for the comparison tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"indicomp/internal/charts"
	"indicomp/pkg/utils"
)

// Configuration validation errors.
var (
	ErrMissingBaseURL      = errors.New("remote.base_url is required")
	ErrInvalidBaseURL      = errors.New("remote.base_url must be an absolute http(s) URL")
	ErrInvalidTimeout      = errors.New("remote.timeout_sec must be at least 1")
	ErrInvalidCacheTTL     = errors.New("remote.cache_ttl_min must be non-negative")
	ErrInvalidWindow       = errors.New("remote.window_years must be at least 1")
	ErrInvalidPageSize     = errors.New("remote.page_size must be at least 1")
	ErrMissingModel        = errors.New("narrator.model is required")
	ErrInvalidNarratorURL  = errors.New("narrator.base_url must be an absolute http(s) URL")
	ErrInvalidNarratorTime = errors.New("narrator.timeout_sec must be at least 1")
	ErrInvalidMaxTokens    = errors.New("narrator.max_tokens must be at least 1")
	ErrInvalidTemperature  = errors.New("narrator.temperature must be between 0 and 2")
	ErrMissingAPIKeyEnv    = errors.New("narrator.api_key_env is required")
	ErrInvalidRadarMetrics = errors.New("charts.radar_max_metrics must be at least 3")
	ErrUnknownPalette      = errors.New("charts.palette is not a known palette")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete tool configuration.
type Config struct {
	Remote   RemoteConfig   `yaml:"remote"`
	Narrator NarratorConfig `yaml:"narrator"`
	Charts   ChartsConfig   `yaml:"charts"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// RemoteConfig holds the statistics API settings.
type RemoteConfig struct {
	BaseURL     string `yaml:"base_url"`
	UserAgent   string `yaml:"user_agent"`
	TimeoutSec  int    `yaml:"timeout_sec"`
	CacheTTLMin int    `yaml:"cache_ttl_min"`
	WindowYears int    `yaml:"window_years"`
	PageSize    int    `yaml:"page_size"`
}

// NarratorConfig holds the chat completion settings. The credential itself
// is never stored here, only the name of the variable holding it.
type NarratorConfig struct {
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	APIKeyEnv   string  `yaml:"api_key_env"`
	TimeoutSec  int     `yaml:"timeout_sec"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// ChartsConfig holds presentation settings for chart data.
type ChartsConfig struct {
	Palette         string `yaml:"palette"`
	RadarMaxMetrics int    `yaml:"radar_max_metrics"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Remote: RemoteConfig{
			BaseURL:     "https://api.worldbank.org/v2",
			UserAgent:   "Country-Comparison-Tool/1.0",
			TimeoutSec:  10,
			CacheTTLMin: 60,
			WindowYears: 5,
			PageSize:    10,
		},
		Narrator: NarratorConfig{
			BaseURL:     "https://api.mistral.ai/v1/",
			Model:       "mistral-medium",
			APIKeyEnv:   "MISTRAL_API_KEY",
			TimeoutSec:  30,
			MaxTokens:   1000,
			Temperature: 0.7,
		},
		Charts: ChartsConfig{
			Palette:         charts.DefaultPalette,
			RadarMaxMetrics: 5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads filepath when non-empty and returns Default otherwise.
func LoadOrDefault(filepath string) (*Config, error) {
	if filepath == "" {
		return Default(), nil
	}

	return LoadConfig(filepath)
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	urls := utils.NewHTTPHelper(c.Remote.UserAgent)

	if c.Remote.BaseURL == "" {
		return ErrMissingBaseURL
	}

	if !urls.IsValidURL(c.Remote.BaseURL) {
		return ErrInvalidBaseURL
	}

	if c.Remote.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Remote.CacheTTLMin < 0 {
		return ErrInvalidCacheTTL
	}

	if c.Remote.WindowYears < 1 {
		return ErrInvalidWindow
	}

	if c.Remote.PageSize < 1 {
		return ErrInvalidPageSize
	}

	if c.Narrator.Model == "" {
		return ErrMissingModel
	}

	if !urls.IsValidURL(c.Narrator.BaseURL) {
		return ErrInvalidNarratorURL
	}

	if c.Narrator.TimeoutSec < 1 {
		return ErrInvalidNarratorTime
	}

	if c.Narrator.MaxTokens < 1 {
		return ErrInvalidMaxTokens
	}

	if c.Narrator.Temperature < 0 || c.Narrator.Temperature > 2 {
		return ErrInvalidTemperature
	}

	if c.Narrator.APIKeyEnv == "" {
		return ErrMissingAPIKeyEnv
	}

	if c.Charts.RadarMaxMetrics < 3 {
		return ErrInvalidRadarMetrics
	}

	if !charts.IsPalette(c.Charts.Palette) {
		return ErrUnknownPalette
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// Timeout returns the per-call data timeout.
func (rc *RemoteConfig) Timeout() time.Duration {
	return time.Duration(rc.TimeoutSec) * time.Second
}

// CacheTTL returns how long the entity list stays cached.
func (rc *RemoteConfig) CacheTTL() time.Duration {
	return time.Duration(rc.CacheTTLMin) * time.Minute
}

// Timeout returns the narration call timeout.
func (nc *NarratorConfig) Timeout() time.Duration {
	return time.Duration(nc.TimeoutSec) * time.Second
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Remote: %s, Timeout: %ds, Narrator: %s, Palette: %s}",
		c.Remote.BaseURL,
		c.Remote.TimeoutSec,
		c.Narrator.Model,
		c.Charts.Palette,
	)
}
