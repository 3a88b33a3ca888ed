// Package config provides YAML-based configuration loading for the terminal
// front end: board theme, SSH server settings and logging.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// GlyphWidth is the number of columns one board cell occupies on screen.
const GlyphWidth = 2

// Config is the complete application configuration.
type Config struct {
	Theme  ThemeConfig  `yaml:"theme"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// ThemeConfig defines how the board is drawn.
type ThemeConfig struct {
	Head      string `yaml:"head"`       // Color of the snake head
	Body      string `yaml:"body"`       // Color of body segments
	Food      string `yaml:"food"`       // Color of the food
	Text      string `yaml:"text"`       // Score and banner color
	Border    string `yaml:"border"`     // Board frame color
	RectGlyph string `yaml:"rect_glyph"` // Two characters used for snake cells
	OvalGlyph string `yaml:"oval_glyph"` // Two characters used for food
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key"` // Empty means ~/.snake/host_key
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig defines diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty discards logs while the TUI owns the terminal
}

// Validate checks every field that cannot be corrected silently.
func (c Config) Validate() error {
	colors := map[string]string{
		"head":   c.Theme.Head,
		"body":   c.Theme.Body,
		"food":   c.Theme.Food,
		"text":   c.Theme.Text,
		"border": c.Theme.Border,
	}
	for field, name := range colors {
		if _, err := core.ParseColor(name); err != nil {
			return fmt.Errorf("config: theme.%s: %w", field, err)
		}
	}

	glyphs := map[string]string{
		"rect_glyph": c.Theme.RectGlyph,
		"oval_glyph": c.Theme.OvalGlyph,
	}
	for field, g := range glyphs {
		if utf8.RuneCountInString(g) != GlyphWidth {
			return fmt.Errorf("config: theme.%s: %q must be %d characters", field, g, GlyphWidth)
		}
	}

	if c.Server.Address == "" {
		return errors.New("config: server.address must not be empty")
	}
	if c.Server.IdleTimeoutMinutes <= 0 {
		return fmt.Errorf("config: server.idle_timeout_minutes must be positive, got %d", c.Server.IdleTimeoutMinutes)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}
