// Package config loads service configuration from a YAML file with
// environment variable overrides. A .env file, if present, is loaded
// first so local development does not need exported variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full service configuration.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Storage  StorageConfig  `yaml:"storage"`
	Export   ExportConfig   `yaml:"export"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServiceConfig identifies the service and its listen port.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `yaml:"port"`
	Debug   bool   `yaml:"debug"`
}

// PipelineConfig tunes extraction and quality filtering.
type PipelineConfig struct {
	MinQualityScore float64 `yaml:"min_quality_score"`
	Concurrency     int     `yaml:"concurrency"`
	MaxBatchItems   int     `yaml:"max_batch_items"`
}

// StorageConfig controls the optional SQLite record store.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// ExportConfig controls where batch exports are written.
type ExportConfig struct {
	OutputDir  string `yaml:"output_dir"`
	FilePrefix string `yaml:"file_prefix"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads configuration from the YAML file at path (skipped when
// path is empty), then applies environment overrides on top of the
// defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	cfg := &Config{}
	cfg.setDefaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	c.Service.Name = "extractor"
	c.Service.Version = "dev"
	c.Service.Port = 8080
	c.Pipeline.MinQualityScore = 0.5
	c.Pipeline.Concurrency = 10
	c.Pipeline.MaxBatchItems = 1000
	c.Export.OutputDir = "output"
	c.Export.FilePrefix = "jalsetu"
	c.Logging.Level = "info"
	c.Logging.Format = "json"
}

func (c *Config) applyEnv() {
	if v := os.Getenv("EXTRACTOR_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Service.Port = port
		}
	}
	if v := os.Getenv("EXTRACTOR_DEBUG"); v != "" {
		c.Service.Debug = v == "true" || v == "1"
	}
	if v := os.Getenv("EXTRACTOR_MIN_QUALITY"); v != "" {
		if score, err := strconv.ParseFloat(v, 64); err == nil {
			c.Pipeline.MinQualityScore = score
		}
	}
	if v := os.Getenv("EXTRACTOR_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Pipeline.Concurrency = n
		}
	}
	if v := os.Getenv("EXTRACTOR_STORAGE_PATH"); v != "" {
		c.Storage.Enabled = true
		c.Storage.Path = v
	}
	if v := os.Getenv("EXTRACTOR_OUTPUT_DIR"); v != "" {
		c.Export.OutputDir = v
	}
	if v := os.Getenv("EXTRACTOR_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("EXTRACTOR_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
}

func (c *Config) validate() error {
	if c.Service.Port <= 0 || c.Service.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Service.Port)
	}
	if c.Pipeline.MinQualityScore < 0 || c.Pipeline.MinQualityScore > 1 {
		return fmt.Errorf("min_quality_score must be within [0, 1], got %v", c.Pipeline.MinQualityScore)
	}
	if c.Pipeline.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Pipeline.Concurrency)
	}
	if c.Pipeline.MaxBatchItems <= 0 {
		return fmt.Errorf("max_batch_items must be positive, got %d", c.Pipeline.MaxBatchItems)
	}
	if c.Storage.Enabled && c.Storage.Path == "" {
		return fmt.Errorf("storage enabled but no path configured")
	}
	return nil
}
