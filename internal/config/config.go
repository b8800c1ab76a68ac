// Package config loads satlearn configuration from an optional file and
// SATLEARN_* environment variables on top of built-in defaults.
package config

import (
	"github.com/abhisek/satlearn/internal/scoring"
)

// Config holds all application configuration.
type Config struct {
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// DBPath overrides the default database location when set.
	DBPath string `mapstructure:"db_path"`
	// PoolPath is the default question pool file for the session command.
	PoolPath string         `mapstructure:"pool_path"`
	Session  SessionConfig  `mapstructure:"session"`
	Scoring  scoring.Config `mapstructure:"scoring"`
}

// SessionConfig bounds the number of questions in a practice session.
type SessionConfig struct {
	Length int `mapstructure:"length" validate:"gtefield=Min,ltefield=Max"`
	Min    int `mapstructure:"min" validate:"gte=1"`
	Max    int `mapstructure:"max" validate:"gtefield=Min,lte=100"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Session: SessionConfig{
			Length: 10,
			Min:    5,
			Max:    20,
		},
		Scoring: scoring.DefaultConfig(),
	}
}

// ClampSessionLength bounds n to the configured session range. Zero or
// negative n selects the default length.
func (c SessionConfig) ClampSessionLength(n int) int {
	if n <= 0 {
		return c.Length
	}
	return max(c.Min, min(n, c.Max))
}
