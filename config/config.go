package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds host tunables sourced from the environment
type Config struct {
	// CanvasScale is the logical-input to viewport coordinate ratio;
	// applied symmetrically in both projection directions
	CanvasScale float64 `env:"VEILCUTTER_CANVAS_SCALE" envDefault:"1.0"`

	// Volume is the linear audio volume (0.0 to 1.0)
	Volume float64 `env:"VEILCUTTER_VOLUME" envDefault:"0.2"`

	// Mute disables audio output entirely
	Mute bool `env:"VEILCUTTER_MUTE" envDefault:"false"`

	// LogFile receives structured logs; empty disables logging
	LogFile string `env:"VEILCUTTER_LOG_FILE" envDefault:"veilcutter.log"`

	// LogLevel is a logrus level name (debug, info, warn, error)
	LogLevel string `env:"VEILCUTTER_LOG_LEVEL" envDefault:"info"`

	// MaxAberrations overrides the live target cap when positive
	MaxAberrations int `env:"VEILCUTTER_MAX_ABERRATIONS" envDefault:"0"`

	// TickMillis is the frame interval in milliseconds
	TickMillis int `env:"VEILCUTTER_TICK_MS" envDefault:"16"`
}

// TickInterval returns the frame interval as a duration
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// Load reads an optional .env file, then the process environment
func Load() (Config, error) {
	// Missing .env is not an error; the environment still applies
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.CanvasScale <= 0 {
		return Config{}, fmt.Errorf("canvas scale must be positive, got %v", cfg.CanvasScale)
	}
	if cfg.TickMillis <= 0 {
		return Config{}, fmt.Errorf("tick interval must be positive, got %d", cfg.TickMillis)
	}

	return cfg, nil
}
