package parse

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls file discovery and extraction behavior. It is usually
// loaded from a .strut.yaml next to the project being parsed.
type Config struct {
	Name                string   `yaml:"name"`
	Extensions          []string `yaml:"extensions"`
	MaxWorkers          int      `yaml:"max_workers"`
	ExpandSupportRanges *bool    `yaml:"expand_support_ranges"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	expand := true
	return Config{
		Extensions:          []string{".std", ".txt"},
		ExpandSupportRanges: &expand,
	}
}

// LoadConfig parses a YAML configuration file. Fields left unset fall back
// to the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return config, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if len(config.Extensions) == 0 {
		config.Extensions = DefaultConfig().Extensions
	}
	if config.ExpandSupportRanges == nil {
		config.ExpandSupportRanges = DefaultConfig().ExpandSupportRanges
	}
	return config, nil
}
