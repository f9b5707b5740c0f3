// Package config loads the aoc configuration from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the aoc settings.
type Config struct {
	// InputDir contains the puzzle inputs as <year>/<day>.input.
	InputDir string `yaml:"input_dir" env:"AOC_INPUT_DIR"`
	// Workers limits the number of solvers running at once.
	Workers int `yaml:"workers" env:"AOC_WORKERS"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"AOC_LOG_LEVEL"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		InputDir: "inputs",
		Workers:  runtime.NumCPU(),
		LogLevel: "info",
	}
}

// Load returns the configuration read from path with environment overrides
// applied. A missing file is not an error; an empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(b, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("invalid number of workers %d", cfg.Workers)
	}
	return cfg, nil
}

// InputPath returns the default input file of a puzzle.
func (c *Config) InputPath(year, day int) string {
	return filepath.Join(c.InputDir, strconv.Itoa(year), strconv.Itoa(day)+".input")
}
