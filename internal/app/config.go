package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/vk/lifebar/internal/input"
)

// Config holds all the necessary configuration for an App instance to run.
// It is assembled once by the CLI layer and never mutated afterwards.
type Config struct {
	LogFormat string
	LogLevel  string

	// DefaultLifespan is used when the user declines a custom lifespan or
	// accepts the default with an empty answer.
	DefaultLifespan float64
	BarLength       int
	ColorEnabled    bool
	Animate         bool
	AnimateDelay    time.Duration
	OutDir          string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.BarLength <= 0 {
		return nil, errors.New("BarLength must be a positive number of glyphs")
	}
	if cfg.DefaultLifespan < input.MinLifespan {
		return nil, fmt.Errorf("DefaultLifespan must be at least %d years", input.MinLifespan)
	}
	if cfg.OutDir == "" {
		return nil, errors.New("OutDir is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
