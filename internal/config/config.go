package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/wavsplit"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultOutputDir is where extract writes when nothing else is set.
	DefaultOutputDir = "extracted"
	// DefaultOwner is the owner column of generated name lists.
	DefaultOwner = wavsplit.DefaultOwner
)

// Config represents the complete tool configuration
type Config struct {
	Extract ExtractConfig `yaml:"extract"`
	Listing ListingConfig `yaml:"listing"`
	Logging LoggingConfig `yaml:"logging"`
}

// ExtractConfig controls chunk detection and output
type ExtractConfig struct {
	OutputDir string `yaml:"output_dir"`
	// Strict validates the RIFF size field before accepting a header.
	Strict bool `yaml:"strict"`
}

// ListingConfig controls the name lists written by describe and repack
type ListingConfig struct {
	Owner string `yaml:"owner"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Extract: ExtractConfig{
			OutputDir: DefaultOutputDir,
		},
		Listing: ListingConfig{
			Owner: DefaultOwner,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads the configuration file at path on top of Default.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate checks every section
func (c *Config) Validate() error {
	if err := c.Extract.Validate(); err != nil {
		return fmt.Errorf("extract config: %w", err)
	}

	if err := c.Listing.Validate(); err != nil {
		return fmt.Errorf("listing config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate validates extract configuration
func (e *ExtractConfig) Validate() error {
	if e.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}

	return nil
}

// Validate validates listing configuration
func (l *ListingConfig) Validate() error {
	if l.Owner == "" {
		return fmt.Errorf("owner cannot be empty")
	}

	// the owner shares a line with the file name; keep it a single token
	if strings.ContainsAny(l.Owner, " \t\r\n") {
		return fmt.Errorf("owner must not contain whitespace, got %q", l.Owner)
	}

	return nil
}

// Validate validates logging configuration
func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("level must be one of [debug, info, warn, error], got '%s'", l.Level)
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("format must be 'json' or 'text', got '%s'", l.Format)
	}

	return nil
}
