// Package term provides ANSI color state and terminal detection.
//
// Colors are package-level variables because logging, display and prompt all
// format with them. [Configure] sets them once during startup; when colors are
// disabled the variables are empty strings and concatenation is a no-op.
package term

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/backmassage/chronoprefix/internal/config"
)

// ANSI color codes. Empty when colors are disabled.
var (
	Red    = ""
	Green  = ""
	Yellow = ""
	Blue   = ""
	Cyan   = ""
	Bold   = ""
	Dim    = ""
	NC     = "" // Reset sequence.
)

// Configure resolves the color mode and sets the package-level ANSI
// variables. Call once during startup, before the logger is built.
func Configure(mode config.ColorMode) {
	set(resolve(mode))
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return NC != "" }

func set(enable bool) {
	if enable {
		Red = "\033[1;91m"
		Green = "\033[1;92m"
		Yellow = "\033[1;93m"
		Blue = "\033[1;94m"
		Cyan = "\033[1;96m"
		Bold = "\033[1m"
		Dim = "\033[2m"
		NC = "\033[0m"
		return
	}
	Red, Green, Yellow, Blue, Cyan, Bold, Dim, NC = "", "", "", "", "", "", "", ""
}

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a terminal. Character devices
// such as /dev/null do not count.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Paint wraps s in color when colors are enabled.
func Paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + NC
}
