package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/fme/internal/util"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config contains runtime configuration values for an emulator run.
type Config struct {
	LogLvl       util.LogLevel // Internal log level (Default info)
	EchoCommands bool          // Log each command read from a batch file before executing it (Default true)
	Format       string        // Final tree rendering, "text" or "json" (Default text)
	NoColor      bool          // Disable ANSI colors in console logs (Default false)
	TreeHeader   string        // Line printed before the text tree; empty disables it
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	// LogLvl is the CLI verbosity between 1 (error) and 5 (trace), not a [util.LogLevel]
	LogLvl       *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	EchoCommands *bool   `yaml:"echo_commands,omitempty" json:"echo_commands,omitempty"`
	Format       *string `yaml:"format,omitempty" json:"format,omitempty"`
	NoColor      *bool   `yaml:"no_color,omitempty" json:"no_color,omitempty"`
	TreeHeader   *string `yaml:"tree_header,omitempty" json:"tree_header,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:       DefaultLogLvl,
		EchoCommands: DefaultEchoCommands,
		Format:       DefaultFormat,
		NoColor:      DefaultNoColor,
		TreeHeader:   DefaultTreeHeader,
	}
}

// NewConfig creates a Config from defaults with override applied on top.
// A nil override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = util.LevelFromVerbose(*override.LogLvl)
	}
	if override.EchoCommands != nil {
		c.EchoCommands = *override.EchoCommands
	}
	if override.Format != nil {
		c.Format = *override.Format
	}
	if override.NoColor != nil {
		c.NoColor = *override.NoColor
	}
	if override.TreeHeader != nil {
		c.TreeHeader = *override.TreeHeader
	}
}

// Validate reports configuration values that cannot be used for a run.
func (c *Config) Validate() error {
	switch c.Format {
	case TextFormat, JSONFormat:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %q or %q)", c.Format, TextFormat, JSONFormat)
	}
}

// LoadConfigOverrideFile loads configuration overrides from a file on afs without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(afs afero.Fs, path string) (*ConfigOverride, error) {
	data, err := afero.ReadFile(afs, path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(afs afero.Fs, path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(afs, path)
	if err != nil {
		return nil, err
	}
	return NewConfig(override), nil
}
