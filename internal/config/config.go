// Package config loads the application configuration from a TOML file.
//
// The default location is ~/.rubik/config.toml. A missing file is not an
// error; defaults apply and flags override whatever was loaded.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user-tunable settings.
type Config struct {
	Cube     CubeConfig     `toml:"cube"`
	Database DatabaseConfig `toml:"database"`
}

// CubeConfig controls cube and scramble defaults.
type CubeConfig struct {
	Size           int   `toml:"size"`
	ScrambleLength int   `toml:"scramble_length"`
	Seed           int64 `toml:"seed"` // 0 means time-seeded
}

// DatabaseConfig controls solve persistence.
type DatabaseConfig struct {
	Path string `toml:"path"` // empty means the default under ~/.rubik
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Cube: CubeConfig{
			Size:           3,
			ScrambleLength: 25,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".rubik", "config.toml"), nil
}

// Load reads the config file at path, merged over the defaults.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault reads the config from the default location.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), err
	}
	return Load(path)
}

func (c Config) validate() error {
	if c.Cube.Size < 2 {
		return fmt.Errorf("cube.size must be at least 2, got %d", c.Cube.Size)
	}
	if c.Cube.ScrambleLength < 1 {
		return fmt.Errorf("cube.scramble_length must be positive, got %d", c.Cube.ScrambleLength)
	}
	return nil
}
