// Package config loads peptrack defaults from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
)

// Defaults are the values used when a session or flag leaves them unset.
type Defaults struct {
	// Width is the pixel width given to tracks declared without one.
	Width float64 `env:"PEPTRACK_WIDTH" envDefault:"960"`
	// MinVisibleSpan is the smallest number of positions a fully zoomed
	// track shows when the session does not set it.
	MinVisibleSpan float64 `env:"PEPTRACK_MIN_VISIBLE_SPAN" envDefault:"10"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"PEPTRACK_LOG_LEVEL" envDefault:"info"`
}

// Load reads [Defaults] from the environment.
func Load() (Defaults, error) {
	var d Defaults
	if err := env.Parse(&d); err != nil {
		return Defaults{}, fmt.Errorf("parse env: %w", err)
	}
	if d.Width <= 0 {
		return Defaults{}, fmt.Errorf("PEPTRACK_WIDTH must be positive, got %v", d.Width)
	}
	return d, nil
}

// Level returns the parsed log level, falling back to info.
func (d Defaults) Level() log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(d.LogLevel))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
