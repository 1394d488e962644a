// Package config loads and validates the CLI's YAML configuration.
//
// Configuration is read once at startup and injected where needed;
// nothing in this package is mutated afterwards.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/enejokabir/carbonpath/internal/logging"
)

// Output formats accepted by the rendering layer.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
)

// Defaults applied when the config file is absent or partial.
const (
	DefaultOutputFormat = OutputFormatTable
	DefaultLogLevel     = "info"
	DefaultLogFormat    = logging.FormatConsole

	// configDirName is the directory under the user home that holds the
	// config file.
	configDirName  = ".carbonpath"
	configFileName = "config.yaml"
)

// Validation errors.
var (
	ErrInvalidOutputFormat = errors.New("output format must be 'table' or 'json'")
	ErrInvalidLogFormat    = errors.New("log format must be 'console' or 'json'")
)

// OutputConfig controls default rendering.
type OutputConfig struct {
	// Format is the default output format; commands may override it with
	// the --output flag.
	Format string `yaml:"format" json:"format"`
}

// DatasetConfig points at optional reference-data overrides. Empty
// fields mean the embedded datasets are used.
type DatasetConfig struct {
	FactorsFile    string `yaml:"factors_file,omitempty"    json:"factors_file,omitempty"`
	BenchmarksFile string `yaml:"benchmarks_file,omitempty" json:"benchmarks_file,omitempty"`
	CatalogFile    string `yaml:"catalog_file,omitempty"    json:"catalog_file,omitempty"`
}

// Config is the full CLI configuration.
type Config struct {
	Output   OutputConfig   `yaml:"output"             json:"output"`
	Logging  logging.Config `yaml:"logging"            json:"logging"`
	Datasets DatasetConfig  `yaml:"datasets,omitempty" json:"datasets,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Output: OutputConfig{Format: DefaultOutputFormat},
		Logging: logging.Config{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// DefaultPath returns the conventional config file location. Falls back
// to the relative file name if the home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configFileName
	}
	return filepath.Join(home, configDirName, configFileName)
}

// Load reads the config file at path, layering it over defaults. A
// missing file is not an error: defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := New()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field values against the accepted sets.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case OutputFormatTable, OutputFormatJSON:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, c.Output.Format)
	}

	switch c.Logging.Format {
	case logging.FormatConsole, logging.FormatJSON, "":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}
