// Package api exposes the evolution engine over an HTTP endpoint, mapping
// JSON run requests onto engine configurations and publishing run metrics.
package api

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the HTTP server settings.
type Config struct {
	Host                  string `yaml:"host"`
	Port                  int    `yaml:"port"`
	DefaultPopulationSize int    `yaml:"default_population_size"`
	DefaultTarget         string `yaml:"default_target"`
	MaxGenerations        uint64 `yaml:"max_generations"`
}

// DefaultConfig returns the server defaults applied underneath any loaded
// configuration file.
func DefaultConfig() Config {
	return Config{
		Host:                  "0.0.0.0",
		Port:                  8080,
		DefaultPopulationSize: 128,
		DefaultTarget:         "florent",
		MaxGenerations:        100000,
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read server config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unable to parse server config: %w", err)
	}
	return cfg, nil
}

// Addr is the host:port listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
