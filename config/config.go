package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360/graphfilter/errors"
)

// Output format constants
const (
	OutputText = "text" // Sorted id lists, one section per set
	OutputJSON = "json" // Single JSON object with node/edge id arrays
)

// DefaultCacheSize bounds the per-filter-text result cache.
const DefaultCacheSize = 128

// Config is the complete run configuration.
type Config struct {
	// Graph is the path to the graph document (JSON or YAML)
	Graph string `json:"graph" yaml:"graph"`

	// Filter is the filter expression to evaluate
	Filter string `json:"filter" yaml:"filter"`

	// Output selects the result rendering: "text" or "json"
	Output string `json:"output" yaml:"output"`

	// CacheSize bounds the evaluation result cache (entries). Zero
	// disables caching.
	CacheSize int `json:"cache_size" yaml:"cache_size"`
}

// Default returns a configuration with sensible defaults applied.
func Default() *Config {
	return &Config{
		Output:    OutputText,
		CacheSize: DefaultCacheSize,
	}
}

// Load reads configuration from a JSON or YAML file, chosen by extension,
// on top of defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config", "Load", "reading config file")
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.WrapInvalid(err, "config", "Load", "decoding config file")
	}

	return cfg, nil
}

// Validate checks the configuration for use. It reports the first
// problem found, wrapped as invalid.
func (c *Config) Validate() error {
	if c.Graph == "" {
		return errors.WrapInvalid(
			fmt.Errorf("%w: graph path", errors.ErrMissingConfig),
			"config", "Validate", "graph path check")
	}
	if c.Filter == "" {
		return errors.WrapInvalid(
			fmt.Errorf("%w: filter expression", errors.ErrMissingConfig),
			"config", "Validate", "filter expression check")
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return errors.WrapInvalid(
			fmt.Errorf("%w: output must be %q or %q, got %q",
				errors.ErrInvalidConfig, OutputText, OutputJSON, c.Output),
			"config", "Validate", "output format check")
	}
	if c.CacheSize < 0 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: cache_size must not be negative", errors.ErrInvalidConfig),
			"config", "Validate", "cache size check")
	}
	return nil
}
