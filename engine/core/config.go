package core

import (
	"fmt"
	"os"

	"github.com/hubastard/powder/engine/colors"
	"github.com/pelletier/go-toml/v2"
)

// Config for the engine window and frame loop.
type Config struct {
	Title string `toml:"title"`
	// Width and Height are the initial and minimum window size.
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// X and Y position the window; negative values let the OS decide.
	X          int          `toml:"x"`
	Y          int          `toml:"y"`
	VSync      bool         `toml:"vsync"`
	Samples    int          `toml:"samples"`
	Resizable  bool         `toml:"resizable"`
	ClearColor colors.Color `toml:"clear_color"` // RGBA
	// Icon is an optional PNG path for the window icon.
	Icon string `toml:"icon"`
}

func DefaultConfig() Config {
	return Config{
		Title:      "Powder",
		Width:      800,
		Height:     600,
		X:          -1,
		Y:          -1,
		VSync:      true,
		Samples:    8,
		Resizable:  true,
		ClearColor: colors.Black,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Samples < 0 {
		return fmt.Errorf("invalid sample count %d", c.Samples)
	}
	return nil
}
