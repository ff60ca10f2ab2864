// Package config loads the server settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Listen              string        `yaml:"listen"`
	AllowedOrigins      []string      `yaml:"allowedOrigins"`
	InitialClock        time.Duration `yaml:"initialClock"`
	Increment           time.Duration `yaml:"increment"`
	MatchmakingInterval time.Duration `yaml:"matchmakingInterval"`
}

func Default() Config {
	return Config{
		Listen:              ":3000",
		AllowedOrigins:      []string{"http://localhost:5173"},
		InitialClock:        600 * time.Second,
		Increment:           0,
		MatchmakingInterval: time.Second,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("%w: listen address is empty", ErrInvalid)
	}
	if c.InitialClock <= 0 {
		return fmt.Errorf("%w: initialClock must be positive", ErrInvalid)
	}
	if c.Increment < 0 {
		return fmt.Errorf("%w: increment must not be negative", ErrInvalid)
	}
	if c.MatchmakingInterval <= 0 {
		return fmt.Errorf("%w: matchmakingInterval must be positive", ErrInvalid)
	}
	return nil
}
