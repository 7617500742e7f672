// Package config holds runtime configuration: defaults, optional config file
// and environment overrides, CLI flag parsing, and validation.
package config

import (
	"strings"

	"github.com/pkg/errors"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig], then
// [ParseFlags] sets the directory, then [Load] applies config file and
// environment overrides to the remaining keys. It is passed (by pointer) to
// packages that need it.
type Config struct {
	// Target directory (positional arg, default ".").
	Dir string
	// DirDefaulted is true when no positional directory was given.
	DirDefaulted bool

	// Behavior.
	Confirm bool   // Default: true. Ask before resolving, on fallback dates, and before renaming.
	FFprobe string // Default: "ffprobe". Empty disables the ffprobe container fallback.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [Load] and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		Dir:          ".",
		DirDefaulted: true,
		Confirm:      true,
		FFprobe:      "ffprobe",
		Verbose:      false,
		ColorMode:    ColorAuto,
	}
}

// ParseColorMode maps user input to a ColorMode (case-insensitive).
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", errors.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and requires a non-empty target directory.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	if c.Dir == "" {
		return errors.New("target directory must not be empty")
	}
	return nil
}
