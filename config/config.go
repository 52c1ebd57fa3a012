// Package config loads coffee shop settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds process settings.
type Config struct {
	ShopName       string `env:"COFFEESHOP_NAME" envDefault:"Coffee Heaven"`
	LogLevel       string `env:"COFFEESHOP_LOG_LEVEL" envDefault:"warn"`
	LogDevelopment bool   `env:"COFFEESHOP_LOG_DEVELOPMENT" envDefault:"false"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
