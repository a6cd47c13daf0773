// Package config loads carousel settings from TOML or YAML files
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Default values applied by Normalize
const (
	DefaultSpeed      = 60.0
	DefaultGap        = 3
	DefaultFPS        = 60
	DefaultDebounceMS = 120
	DefaultMargin     = 2
)

// ReducedMotionEnv is sampled once at startup
const ReducedMotionEnv = "PREFERS_REDUCED_MOTION"

// Config is the complete carousel configuration
type Config struct {
	// Speed in cells per second
	Speed float64 `toml:"speed" yaml:"speed"`
	// Gap between items in cells
	Gap int `toml:"gap" yaml:"gap"`
	// Row of the strip; negative counts from the bottom, -1 is the last row
	Row int `toml:"row" yaml:"row"`
	// Margin is the horizontal inset on both sides
	Margin int `toml:"margin" yaml:"margin"`

	FPS        int `toml:"fps" yaml:"fps"`
	DebounceMS int `toml:"debounce_ms" yaml:"debounce_ms"`

	ReducedMotion bool `toml:"reduced_motion" yaml:"reduced_motion"`
	Chime         bool `toml:"chime" yaml:"chime"`
	ShowStatus    bool `toml:"show_status" yaml:"show_status"`

	Items []Item `toml:"items" yaml:"items"`
}

// Item is either a text label or an image
type Item struct {
	Text  string `toml:"text" yaml:"text"`
	Color string `toml:"color" yaml:"color"`

	Image string `toml:"image" yaml:"image"`
	// Cols is a fixed image width in cells
	Cols int `toml:"cols" yaml:"cols"`
	// Percent sizes the image relative to the strip width and wins over Cols
	Percent float64 `toml:"percent" yaml:"percent"`
}

// IsImage reports whether the item is an image
func (it Item) IsImage() bool { return it.Image != "" }

// Default returns a normalized configuration with demo labels
func Default() *Config {
	cfg := &Config{
		Gap:    DefaultGap,
		Margin: DefaultMargin,
		Items: []Item{
			{Text: "◆ tcell", Color: "#5fafff"},
			{Text: "◆ beep", Color: "#ffaf5f"},
			{Text: "◆ go-colorful", Color: "#af87ff"},
			{Text: "◆ runewidth", Color: "#87d787"},
			{Text: "◆ uniseg", Color: "#ff87af"},
			{Text: "◆ errgroup", Color: "#d7d75f"},
		},
	}
	cfg.Normalize()
	return cfg
}

// Normalize replaces absent or invalid values with defaults
func (c *Config) Normalize() {
	if c.Speed <= 0 || math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0) {
		c.Speed = DefaultSpeed
	}
	if c.Gap < 0 {
		c.Gap = 0
	}
	if c.Margin < 0 {
		c.Margin = 0
	}
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.DebounceMS <= 0 {
		c.DebounceMS = DefaultDebounceMS
	}
}

// ValidationError reports a field that cannot be used
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Validate checks every item; it does not touch the file system
func (c *Config) Validate() error {
	for i, it := range c.Items {
		field := fmt.Sprintf("items[%d]", i)
		switch {
		case it.Text == "" && it.Image == "":
			return ValidationError{Field: field, Message: "needs text or image"}
		case it.Text != "" && it.Image != "":
			return ValidationError{Field: field, Message: "text and image are exclusive"}
		case it.Cols < 0:
			return ValidationError{Field: field + ".cols", Message: "must not be negative"}
		case it.Percent < 0 || it.Percent > 100:
			return ValidationError{Field: field + ".percent", Message: "must be within 0..100"}
		}
		if it.Color != "" {
			if _, err := colorful.Hex(it.Color); err != nil {
				return ValidationError{Field: field + ".color", Message: fmt.Sprintf("%q is not #rrggbb", it.Color)}
			}
		}
	}
	return nil
}

// ReducedMotionFromEnv interprets the reduced-motion environment variable
func ReducedMotionFromEnv(getenv func(string) string) bool {
	switch strings.ToLower(strings.TrimSpace(getenv(ReducedMotionEnv))) {
	case "1", "true", "yes", "reduce":
		return true
	}
	return false
}
