// Package config provides unified configuration loading for the image analyzer.
// Supports YAML files, environment variables, and programmatic overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the image analyzer.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Anthropic     AnthropicConfig     `yaml:"anthropic"`
	Storage       StorageConfig       `yaml:"storage"`
	Analysis      AnalysisConfig      `yaml:"analysis"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host             string        `yaml:"host"`
	Port             int           `yaml:"port"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"`
	GracefulShutdown time.Duration `yaml:"graceful_shutdown"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// StorageConfig holds working directory settings.
type StorageConfig struct {
	TempDir    string `yaml:"temp_dir"`
	ReportsDir string `yaml:"reports_dir"`
}

// AnalysisConfig holds model call settings.
type AnalysisConfig struct {
	ClassifyMaxTokens int `yaml:"classify_max_tokens"`
	AnalyzeMaxTokens  int `yaml:"analyze_max_tokens"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"` // json or console
	ServiceName string `yaml:"service_name"`
}

// Load reads configuration from a YAML file and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults for development.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             8080,
			ReadTimeout:      30 * time.Second,
			WriteTimeout:     0, // analysis responses block on model calls
			IdleTimeout:      120 * time.Second,
			GracefulShutdown: 10 * time.Second,
		},
		Anthropic: AnthropicConfig{
			Model: "claude-3-sonnet-20240229",
		},
		Storage: StorageConfig{
			TempDir:    "temp",
			ReportsDir: "reports",
		},
		Analysis: AnalysisConfig{
			ClassifyMaxTokens: 50,
			AnalyzeMaxTokens:  1500,
		},
		Observability: ObservabilityConfig{
			LogLevel:    "debug",
			LogFormat:   "json",
			ServiceName: "image-analyzer",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Observability.LogFormat != "json" && c.Observability.LogFormat != "console" {
		return fmt.Errorf("invalid log format: %s", c.Observability.LogFormat)
	}

	if c.Anthropic.Model == "" {
		return fmt.Errorf("anthropic model must not be empty")
	}

	if c.Storage.TempDir == "" || c.Storage.ReportsDir == "" {
		return fmt.Errorf("storage directories must not be empty")
	}

	if c.Analysis.ClassifyMaxTokens < 1 || c.Analysis.AnalyzeMaxTokens < 1 {
		return fmt.Errorf("max token limits must be positive")
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil {
			cfg.Server.Port = port
		}
	}

	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}

	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.Anthropic.APIKey = v
	}

	if v := os.Getenv("ANTHROPIC_MODEL"); v != "" {
		cfg.Anthropic.Model = v
	}

	if v := os.Getenv("ANTHROPIC_BASE_URL"); v != "" {
		cfg.Anthropic.BaseURL = v
	}

	if v := os.Getenv("TEMP_DIR"); v != "" {
		cfg.Storage.TempDir = v
	}

	if v := os.Getenv("REPORTS_DIR"); v != "" {
		cfg.Storage.ReportsDir = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
}
