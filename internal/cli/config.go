package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds defaults read from the environment. Command-line flags
// take precedence over every field.
type Config struct {
	Dataset   string   `env:"FRONTIER_DATASET"`
	OutputDir string   `env:"FRONTIER_OUTPUT_DIR" envDefault:"."`
	Formats   []string `env:"FRONTIER_FORMATS" envSeparator:","`
	Charts    []string `env:"FRONTIER_CHARTS" envSeparator:","`
	Width     float64  `env:"FRONTIER_WIDTH"`
	Height    float64  `env:"FRONTIER_HEIGHT"`
}

// loadConfig parses the FRONTIER_* environment variables.
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
