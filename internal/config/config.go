// Package config provides configuration types and defaults for fp.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Tab width bounds accepted by Validate.
const (
	MinTabWidth = 1
	MaxTabWidth = 16
)

// Config holds all configuration options for fp.
type Config struct {
	// Lines is the fixed number of content rows to show.
	// Zero means "use the available terminal height".
	Lines int      `mapstructure:"lines"`
	UI    UIConfig `mapstructure:"ui"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	TabWidth  int  `mapstructure:"tab_width"` // Columns per tab stop when rendering
	Scrollbar bool `mapstructure:"scrollbar"` // Draw the scrollbar in the right border
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Lines: 0,
		UI: UIConfig{
			TabWidth:  4,
			Scrollbar: true,
		},
	}
}

// Validate checks the configuration for errors.
func Validate(cfg Config) error {
	if cfg.Lines < 0 {
		return fmt.Errorf("lines must not be negative, got %d", cfg.Lines)
	}
	if cfg.UI.TabWidth < MinTabWidth || cfg.UI.TabWidth > MaxTabWidth {
		return fmt.Errorf("ui.tab_width must be between %d and %d, got %d",
			MinTabWidth, MaxTabWidth, cfg.UI.TabWidth)
	}
	return nil
}

// DefaultConfigPath returns ~/.config/fp/config.yaml, or an empty string
// if the home directory is unavailable.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "fp", "config.yaml")
}
