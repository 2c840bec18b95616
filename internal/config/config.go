package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file looked up in the working directory.
const FileName = "salescope.yaml"

// Config represents the top-level salescope.yaml configuration.
type Config struct {
	Dataset  DatasetConfig  `yaml:"dataset"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Charts   ChartsConfig   `yaml:"charts"`
	Log      LogConfig      `yaml:"log"`
}

// DatasetConfig locates and describes the sales CSV.
type DatasetConfig struct {
	Path        string   `yaml:"path"`
	DateLayouts []string `yaml:"date_layouts,omitempty"` // Go time layouts, tried in order
}

// AnalysisConfig controls ranking views.
type AnalysisConfig struct {
	TopN                 int      `yaml:"top_n"`
	ExcludedDescriptions []string `yaml:"excluded_descriptions"`
}

// ChartsConfig controls PNG chart output.
type ChartsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // pretty, json
	File   string `yaml:"file,omitempty"`
}

// Load reads a salescope.yaml file from disk. Fields missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks values that would make the analyses meaningless.
func (c *Config) Validate() error {
	if c.Dataset.Path == "" {
		return errors.New("invalid config: dataset.path is empty")
	}
	if c.Analysis.TopN < 1 {
		return fmt.Errorf("invalid config: analysis.top_n must be positive, got %d", c.Analysis.TopN)
	}
	switch c.Log.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("invalid config: log.format %q (want pretty or json)", c.Log.Format)
	}
	return nil
}

// Default returns a Config with sensible defaults for the Online Retail II dataset.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path: "online_retail_II.csv",
		},
		Analysis: AnalysisConfig{
			TopN:                 10,
			ExcludedDescriptions: []string{"manual", "amazon fee", "adjust bad debt", "postage"},
		},
		Charts: ChartsConfig{
			Enabled: true,
			Dir:     "charts",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "pretty",
		},
	}
}
