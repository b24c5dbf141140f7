package config

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/lixenwraith/graspease/parameter"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("graspease", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.TickRate != parameter.BaseTickRate {
		t.Errorf("TickRate = %d, want %d", cfg.TickRate, parameter.BaseTickRate)
	}
	if cfg.Width != parameter.GameWidth || cfg.Height != parameter.GameHeight {
		t.Errorf("Area = %gx%g, want %gx%g", cfg.Width, cfg.Height, float64(parameter.GameWidth), float64(parameter.GameHeight))
	}
	if cfg.PlayerName != parameter.DefaultPlayerName {
		t.Errorf("PlayerName = %q, want %q", cfg.PlayerName, parameter.DefaultPlayerName)
	}
	if cfg.Debug || cfg.Mute || cfg.Landmarks != "" || cfg.Seed != 0 {
		t.Errorf("Unexpected non-default values: %+v", cfg)
	}
	if cfg.Volume != 0.8 {
		t.Errorf("Volume = %g, want 0.8", cfg.Volume)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("GRASPEASE_TICK_RATE", "120")
	t.Setenv("GRASPEASE_PLAYER_NAME", "Alex")
	t.Setenv("GRASPEASE_MUTE", "true")
	t.Setenv("GRASPEASE_LANDMARKS", "-")

	cfg, err := Parse(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.TickRate != 120 || cfg.PlayerName != "Alex" || !cfg.Mute || cfg.Landmarks != "-" {
		t.Errorf("Env not applied: %+v", cfg)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("GRASPEASE_TICK_RATE", "120")
	t.Setenv("GRASPEASE_SEED", "7")

	cfg, err := Parse(newFlagSet(), []string{"-tick-rate", "30", "-seed", "42", "-debug"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.TickRate != 30 || cfg.Seed != 42 || !cfg.Debug {
		t.Errorf("Flags did not override env: %+v", cfg)
	}
}

func TestParseEnvMalformed(t *testing.T) {
	t.Setenv("GRASPEASE_TICK_RATE", "fast")

	if _, err := Parse(newFlagSet(), nil); err == nil {
		t.Fatal("Expected error for non-numeric tick rate")
	}
}

func TestValidate(t *testing.T) {
	base := Config{TickRate: 60, Width: 1000, Height: 700, Volume: 0.5}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"valid", func(*Config) {}, nil},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }, ErrTickRate},
		{"huge tick rate", func(c *Config) { c.TickRate = 5000 }, ErrTickRate},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrArea},
		{"negative height", func(c *Config) { c.Height = -1 }, ErrArea},
		{"loud", func(c *Config) { c.Volume = 1.5 }, ErrVolume},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Expected valid, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestTuningFollowsConfig(t *testing.T) {
	cfg := Config{TickRate: 120, Width: 800, Height: 600, Volume: 1}
	tuning := cfg.Tuning()

	if tuning.TickRate != 120 || tuning.Width != 800 || tuning.Height != 600 {
		t.Errorf("Unexpected tuning %+v", tuning)
	}
	if tuning.Gravity.ObstacleSpeed != 2.5 {
		t.Errorf("Expected obstacle speed halved at 120 Hz, got %g", tuning.Gravity.ObstacleSpeed)
	}
}
