package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Paths  PathConfig   `yaml:"paths"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string `yaml:"port"`
	APIPort string `yaml:"api_port"`
}

// PathConfig holds the data source and chart output directories
type PathConfig struct {
	DataDir   string `yaml:"data_dir"`
	OutputDir string `yaml:"output_dir"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file (DATALENS_CONFIG)
// with environment variables taking precedence.
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{Port: "8080", APIPort: "8081"},
		Paths:  PathConfig{DataDir: "data", OutputDir: "outputs"},
		Log:    LogConfig{Level: "info"},
	}

	if path := os.Getenv("DATALENS_CONFIG"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	config.Server.Port = getEnvOrDefault("PORT", config.Server.Port)
	config.Server.APIPort = getEnvOrDefault("API_PORT", config.Server.APIPort)
	config.Paths.DataDir = getEnvOrDefault("DATA_DIR", config.Paths.DataDir)
	config.Paths.OutputDir = getEnvOrDefault("OUTPUT_DIR", config.Paths.OutputDir)
	config.Log.Level = getEnvOrDefault("LOG_LEVEL", config.Log.Level)

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// EnsureDirs creates the data and output directories if absent. This is the
// explicit bootstrap step hosts run before constructing any Analyzer.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

func validateConfig(config *Config) error {
	if config.Paths.DataDir == "" {
		return fmt.Errorf("data directory is required")
	}
	if config.Paths.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return fmt.Errorf("invalid server port %q", config.Server.Port)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
