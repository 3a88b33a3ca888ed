package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme: ThemeConfig{
			Head:      "bright_green",
			Body:      "green",
			Food:      "bright_red",
			Text:      "bright_red",
			Border:    "gray",
			RectGlyph: "██",
			OvalGlyph: "()",
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
