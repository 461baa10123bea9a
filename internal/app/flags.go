package app

import (
	"errors"
	"flag"
	"fmt"
)

// Config represents the command-line parameters shared by both frontends.
type Config struct {
	Width   int
	Height  int
	ScreenW int
	ScreenH int
	TPS     int
	Pattern string
	Paused  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 64, Height: 48, ScreenW: 768, ScreenH: 576, TPS: 30}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.ScreenW, "screen-w", c.ScreenW, "window width in pixels")
	fs.IntVar(&c.ScreenH, "screen-h", c.ScreenH, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second (0 steps every frame)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in circuit to load at start")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with the simulation paused")
}

// Validate reports configuration errors that make the program unusable.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height))
	}
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.ScreenW, c.ScreenH))
	}
	if c.TPS < 0 {
		errs = append(errs, fmt.Errorf("tps %d must not be negative", c.TPS))
	}
	return errors.Join(errs...)
}
