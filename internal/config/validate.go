package config

import (
	"github.com/dshills/chessterm/internal/input/key"
	"github.com/dshills/chessterm/internal/renderer/core"
)

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration and returns the first
// *ValidationError found.
func (c *Config) Validate() error {
	if !logLevels[c.Log.Level] {
		return &ValidationError{
			Path:    "log.level",
			Message: "must be one of debug, info, warn, error",
			Value:   c.Log.Level,
			Code:    ErrCodeInvalidEnum,
		}
	}

	quit, err := key.Parse(c.Keys.Quit)
	if err != nil {
		return &ValidationError{
			Path:    "keys.quit",
			Message: err.Error(),
			Value:   c.Keys.Quit,
			Code:    ErrCodePatternMismatch,
		}
	}
	if alias, ok := key.TerminalAlias(quit); ok {
		return &ValidationError{
			Path:    "keys.quit",
			Message: "terminals report " + quit.String() + " as " + alias.String(),
			Value:   c.Keys.Quit,
			Code:    ErrCodeInvalidEnum,
		}
	}

	if _, err := core.ColorFromHex(c.Board.TitleColor); err != nil {
		return &ValidationError{
			Path:    "board.title_color",
			Message: "must be a hex color such as #e0b050",
			Value:   c.Board.TitleColor,
			Code:    ErrCodePatternMismatch,
		}
	}

	if c.Board.X < 0 || c.Board.Y < 0 {
		return &ValidationError{
			Path:    "board.x",
			Message: "position must not be negative",
			Value:   [2]int{c.Board.X, c.Board.Y},
			Code:    ErrCodeOutOfRange,
		}
	}

	if c.Board.Height < 2 {
		return &ValidationError{
			Path:    "board.height",
			Message: "must be at least 2",
			Value:   c.Board.Height,
			Code:    ErrCodeOutOfRange,
		}
	}

	if minWidth := core.StringWidth(c.Board.Title) + 2; c.Board.Width < minWidth {
		return &ValidationError{
			Path:    "board.width",
			Message: "must leave room for the title and both corners",
			Value:   c.Board.Width,
			Code:    ErrCodeOutOfRange,
		}
	}

	return nil
}
