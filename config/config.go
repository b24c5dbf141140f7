// Package config loads runtime settings from GRASPEASE_* environment variables and command-line flags
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/graspease/parameter"
)

var (
	ErrTickRate = errors.New("tick rate must be between 1 and 1000 Hz")
	ErrArea     = errors.New("game area must be positive")
	ErrVolume   = errors.New("volume must be within [0, 1]")
)

// Config holds the process settings
type Config struct {
	TickRate   int     `env:"GRASPEASE_TICK_RATE"   envDefault:"60"`
	Width      float64 `env:"GRASPEASE_WIDTH"       envDefault:"1000"`
	Height     float64 `env:"GRASPEASE_HEIGHT"      envDefault:"700"`
	PlayerName string  `env:"GRASPEASE_PLAYER_NAME" envDefault:"Rehab Player"`
	Debug      bool    `env:"GRASPEASE_DEBUG"`
	Mute       bool    `env:"GRASPEASE_MUTE"`
	Volume     float64 `env:"GRASPEASE_VOLUME"      envDefault:"0.8"`
	Landmarks  string  `env:"GRASPEASE_LANDMARKS"` // NDJSON path, "-" for stdin, empty for pointer input
	Seed       uint64  `env:"GRASPEASE_SEED"`      // 0 seeds from the clock
}

// ParseEnv loads configuration from environment variables
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Parse reads the environment, then lets flags in args override it
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.TickRate, "tick-rate", cfg.TickRate, "simulation ticks per second")
	fs.Float64Var(&cfg.Width, "width", cfg.Width, "logical game area width")
	fs.Float64Var(&cfg.Height, "height", cfg.Height, "logical game area height")
	fs.StringVar(&cfg.PlayerName, "name", cfg.PlayerName, "initial player name")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write logs to logs/ and show the metrics overlay")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable sound cues")
	fs.Float64Var(&cfg.Volume, "volume", cfg.Volume, "sound cue volume in [0, 1]")
	fs.StringVar(&cfg.Landmarks, "landmarks", cfg.Landmarks, "hand landmark NDJSON stream (file path or - for stdin)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "hazard placement seed (0 = random)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	if c.TickRate < 1 || c.TickRate > 1000 {
		return fmt.Errorf("%w: %d", ErrTickRate, c.TickRate)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrArea, c.Width, c.Height)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: %g", ErrVolume, c.Volume)
	}
	return nil
}

// Tuning derives the gameplay tuning for the configured area and tick rate
func (c Config) Tuning() parameter.Tuning {
	return parameter.DefaultTuning().WithArea(c.Width, c.Height).ForTickRate(c.TickRate)
}
