// Package config provides YAML-based presentation settings for the game:
// colors, audio and logging. Board size and tick cadence are not configurable.
package config

import (
	"fmt"
	"strings"
)

// Volume bounds, as log2 gain applied to the synthesized sounds.
const (
	MinVolume = -5.0
	MaxVolume = 2.0
)

// Config is the top-level configuration document.
type Config struct {
	Theme ThemeConfig `yaml:"theme"`
	Audio AudioConfig `yaml:"audio"`
	Log   LogConfig   `yaml:"log"`
}

// ThemeConfig holds lipgloss color strings (hex or ANSI codes) per screen role.
type ThemeConfig struct {
	Title   string `yaml:"title"`
	Border  string `yaml:"border"`
	Snake   string `yaml:"snake"`
	Head    string `yaml:"head"`
	Food    string `yaml:"food"`
	Score   string `yaml:"score"`
	Overlay string `yaml:"overlay"`
}

// AudioConfig controls the sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// LogConfig controls the log file. An empty File disables logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

var validLevels = []string{"debug", "info", "warn", "error"}

// Validate checks values that cannot be clamped silently.
func (c Config) Validate() error {
	level := strings.ToLower(c.Log.Level)
	found := false
	for _, l := range validLevels {
		if level == l {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config: unknown log level %q (want one of %s)", c.Log.Level, strings.Join(validLevels, ", "))
	}

	if c.Audio.Volume < MinVolume || c.Audio.Volume > MaxVolume {
		return fmt.Errorf("config: audio volume %.1f out of range [%.0f, %.0f]", c.Audio.Volume, MinVolume, MaxVolume)
	}
	return nil
}
