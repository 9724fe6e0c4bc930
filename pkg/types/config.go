// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

const (
	// DefaultMagickBinary is the ImageMagick entry point resolved on PATH.
	DefaultMagickBinary = "magick"

	// DefaultBackground is passed to -background so SVG transparency survives.
	DefaultBackground = "none"

	// DefaultCancelDelay keeps the "no folder selected" message on screen
	// when the tool was launched from a console window that closes on exit.
	DefaultCancelDelay = 2 * time.Second
)

// MagickConfig holds settings for invoking the external converter.
type MagickConfig struct {
	// Binary is the converter executable (default "magick").
	Binary string `json:"magick" yaml:"magick" mapstructure:"magick"`

	// Background is the value for -background (default "none").
	Background string `json:"background" yaml:"background" mapstructure:"background"`

	// Sizes restricts icon:auto-resize to the listed edge lengths
	// (e.g. 256,128,64,48,32,16). Empty lets ImageMagick pick its defaults.
	Sizes []int `json:"sizes,omitempty" yaml:"sizes,omitempty" mapstructure:"sizes"`

	// Timeout bounds a single conversion. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// Config is the effective configuration for one run.
type Config struct {
	MagickConfig `yaml:",inline" mapstructure:",squash"`

	// Dir is the folder to convert. Empty opens the native folder picker.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty" mapstructure:"dir"`

	// CancelDelay is how long to wait before exiting when no folder is picked.
	CancelDelay time.Duration `json:"cancel_delay" yaml:"cancel_delay" mapstructure:"cancel_delay"`

	// Verbose enables debug logging on stderr.
	Verbose bool `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
}

// WithDefaults returns a copy of c with zero-valued settings filled in.
// A negative CancelDelay is clamped to zero.
func (c Config) WithDefaults() Config {
	if c.Binary == "" {
		c.Binary = DefaultMagickBinary
	}
	if c.Background == "" {
		c.Background = DefaultBackground
	}
	if c.CancelDelay < 0 {
		c.CancelDelay = 0
	}
	return c
}
