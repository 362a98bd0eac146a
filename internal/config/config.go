package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/jsontree/internal/errors"
	"github.com/mcncl/jsontree/internal/formatter"
)

// Output formats
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

const maxIndent = 16

// Config represents the complete configuration for jsontree
type Config struct {
	Format FormatConfig `yaml:"format"`
	Output OutputConfig `yaml:"output"`
	Dev    DevConfig    `yaml:"dev"`
}

// FormatConfig controls how documents are printed
type FormatConfig struct {
	Indent  int    `yaml:"indent"`
	KeyCase string `yaml:"key_case"`
	Compact bool   `yaml:"compact"`
}

// OutputConfig selects the rendering of printed documents
type OutputConfig struct {
	Format string `yaml:"format"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// Overrides carries command line values. Zero values leave the loaded
// configuration untouched; Indent uses -1 for "not set" since 0 is valid.
type Overrides struct {
	Indent  int
	KeyCase string
	Compact bool
	YAML    bool
	Debug   bool
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Format: FormatConfig{
			Indent:  2,
			KeyCase: formatter.KeyCaseNone,
			Compact: false,
		},
		Output: OutputConfig{
			Format: OutputJSON,
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsontree.yml", ".jsontree.yaml", "jsontree.yml", "jsontree.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Load resolves the configuration for a run: the explicit path if given,
// otherwise a discovered file, otherwise defaults. It also returns the path
// it read, which is empty when the defaults were used.
func Load(path string) (*Config, string, error) {
	if path == "" {
		path = FindConfigFile()
	}
	if path == "" {
		return NewConfig(), "", nil
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// Validate checks that every option has a usable value
func (c *Config) Validate() error {
	if c.Format.Indent < 0 || c.Format.Indent > maxIndent {
		return errors.NewConfigError(
			fmt.Sprintf("format.indent must be between 0 and %d, got %d", maxIndent, c.Format.Indent),
			errors.ErrInvalidConfig,
		)
	}
	if _, err := formatter.NewFormatter(c.FormatterOptions()); err != nil {
		return errors.NewConfigError(err.Error(), errors.ErrInvalidConfig)
	}
	switch c.Output.Format {
	case OutputJSON, OutputYAML:
	default:
		return errors.NewConfigError(
			fmt.Sprintf("output.format must be %q or %q, got %q", OutputJSON, OutputYAML, c.Output.Format),
			errors.ErrInvalidConfig,
		)
	}
	return nil
}

// ApplyOverrides returns a copy of c with command line values applied and
// validates the result.
func (c *Config) ApplyOverrides(o Overrides) (*Config, error) {
	merged := *c

	if o.Indent >= 0 {
		merged.Format.Indent = o.Indent
	}
	if o.KeyCase == "none" {
		merged.Format.KeyCase = formatter.KeyCaseNone
	} else if o.KeyCase != "" {
		merged.Format.KeyCase = o.KeyCase
	}
	if o.Compact {
		merged.Format.Compact = true
	}
	if o.YAML {
		merged.Output.Format = OutputYAML
	}
	if o.Debug {
		merged.Dev.Debug = true
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// FormatterOptions translates the format section for the formatter
func (c *Config) FormatterOptions() formatter.Options {
	indent := c.Format.Indent
	if c.Format.Compact {
		indent = 0
	}
	return formatter.Options{Indent: indent, KeyCase: c.Format.KeyCase}
}
