package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// AppConfig is the global app config for the audit ledger.
type AppConfig struct {
	// How many leading hex '0's a block hash must carry.
	Difficulty int `yaml:"difficulty"`
	// Path of the bbolt file the chain snapshot persists to. Empty
	// disables persistence.
	DataFile string `yaml:"data_file"`
	// Minimum log level: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the config used when no file overrides it.
func Default() AppConfig {
	return AppConfig{
		Difficulty: 3,
		DataFile:   "auditchain.db",
		LogLevel:   "info",
	}
}

// Load reads an AppConfig from a yaml file. Fields absent from the file
// keep their defaults.
func Load(path string) (AppConfig, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, err
	}
	if c.Difficulty < 0 {
		return c, fmt.Errorf("difficulty must be non-negative, got %d", c.Difficulty)
	}
	return c, nil
}
