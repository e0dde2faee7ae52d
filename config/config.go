// Package config loads the settings of the cpt command.
//
// Settings come, by increasing priority, from the built-in defaults, an optional YAML file
// named by CPT_CONFIG, and CPT_* environment variables. Command line flags override them all.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Prefix of the environment variables.
const Prefix = "CPT"

// Config represents the complete application configuration.
type Config struct {
	DataFile string `yaml:"data_file" envconfig:"DATA_FILE"`
	RawFile  string `yaml:"raw_file" envconfig:"RAW_FILE"`
	Currency string `yaml:"currency" envconfig:"CURRENCY"`
	Addr     string `yaml:"addr" envconfig:"ADDR"`
	Verbose  bool   `yaml:"verbose" envconfig:"VERBOSE"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataFile: "data/processed/data.csv",
		RawFile:  "data/raw/retail_prices.xlsx",
		Addr:     "localhost:8501",
	}
}

// Load returns the configuration from the defaults, the config file and the environment.
func Load() (*Config, error) {
	cfg := Default()

	if filename := os.Getenv(Prefix + "_CONFIG"); filename != "" {
		if err := loadFromFile(filename, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Without default tags, envconfig leaves the fields whose variable is unset untouched.
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	return &cfg, nil
}

// loadFromFile overlays the values found in the YAML file onto cfg.
func loadFromFile(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return fmt.Errorf("%q: %w", filename, err)
	}
	return nil
}
