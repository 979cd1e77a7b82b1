package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Theme: ThemeConfig{
			Title:   "#2B3318",
			Border:  "#2B3318",
			Snake:   "#79914D",
			Head:    "#A8C46E",
			Food:    "#E0523A",
			Score:   "#79914D",
			Overlay: "#F2F2F2",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.retrosnake/retrosnake.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultConfigYAML
}
