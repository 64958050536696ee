package config

import (
	"github.com/dshills/chessterm/internal/input/key"
	"github.com/dshills/chessterm/internal/renderer/core"
)

// Config is the complete application configuration.
type Config struct {
	Log   LogConfig   `toml:"log" yaml:"log"`
	Keys  KeysConfig  `toml:"keys" yaml:"keys"`
	Board BoardConfig `toml:"board" yaml:"board"`
}

// LogConfig configures the log file.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
	// File is the log destination. Empty discards log output.
	File string `toml:"file" yaml:"file"`
}

// KeysConfig configures key bindings.
type KeysConfig struct {
	// Quit is the key spec that stops the application.
	Quit string `toml:"quit" yaml:"quit"`
	// MoveEnabled binds the arrow keys to move the board window.
	MoveEnabled bool `toml:"move_enabled" yaml:"move_enabled"`
}

// BoardConfig configures the board window.
type BoardConfig struct {
	Width      int    `toml:"width" yaml:"width"`
	Height     int    `toml:"height" yaml:"height"`
	X          int    `toml:"x" yaml:"x"`
	Y          int    `toml:"y" yaml:"y"`
	Title      string `toml:"title" yaml:"title"`
	Visible    bool   `toml:"visible" yaml:"visible"`
	TitleColor string `toml:"title_color" yaml:"title_color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Keys: KeysConfig{
			Quit:        "q",
			MoveEnabled: true,
		},
		Board: BoardConfig{
			Width:   34,
			Height:  18,
			Title:   "Chess",
			Visible: true,
		},
	}
}

// QuitKey returns the parsed quit key. The config must have been validated.
func (c *Config) QuitKey() key.Event {
	ev, err := key.Parse(c.Keys.Quit)
	if err != nil {
		return key.NewRuneEvent('q', key.ModNone)
	}
	return ev
}

// TitleColor returns the parsed board title color.
func (c *Config) TitleColor() core.Color {
	color, err := core.ColorFromHex(c.Board.TitleColor)
	if err != nil {
		return core.ColorDefault
	}
	return color
}
