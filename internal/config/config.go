// Package config handles engine configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all engine settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics" toml:"graphics"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Title      string `yaml:"title" toml:"title"`
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Fullscreen bool   `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool   `yaml:"vsync" toml:"vsync"`
	MSAA       uint32 `yaml:"msaa" toml:"msaa"` // 0 or 1 disables multisampling
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:      "Argand",
			Width:      2048,
			Height:     1200,
			Fullscreen: false,
			VSync:      true,
			MSAA:       0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// SampleCounts lists the multisample counts the engine accepts.
var SampleCounts = []uint32{0, 1, 2, 4, 8, 16}

var (
	ErrInvalidSize = errors.New("config: window size must be positive")
	ErrInvalidMSAA = errors.New("config: unsupported msaa sample count")
)

// Validate reports the first setting the engine cannot run with.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Graphics.Width, c.Graphics.Height)
	}
	for _, n := range SampleCounts {
		if c.Graphics.MSAA == n {
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrInvalidMSAA, c.Graphics.MSAA)
}
