// Package check validates optional external tools before the run starts.
// Today that is only ffprobe, which dates videos the built-in container
// reader cannot. A missing ffprobe is never fatal.
package check

import (
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/backmassage/chronoprefix/internal/config"
)

// ErrFFprobeNotFound is returned by FindFFprobe when the configured binary
// cannot be resolved.
var ErrFFprobeNotFound = errors.New("ffprobe not found")

// Logger is the minimal logging interface needed by this package.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Warn(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// versionOf is swapped in tests.
var versionOf = func(bin string) (string, error) {
	out, err := exec.Command(bin, "-version").Output()
	if err != nil {
		return "", err
	}
	return firstLine(string(out)), nil
}

// FindFFprobe resolves cfg.FFprobe to an executable path. An empty setting
// means disabled and returns "" with no error.
func FindFFprobe(cfg *config.Config) (string, error) {
	if cfg.FFprobe == "" {
		return "", nil
	}
	p, err := lookPath(cfg.FFprobe)
	if err != nil {
		return "", errors.Wrapf(ErrFFprobeNotFound, "%s: %v", cfg.FFprobe, err)
	}
	return p, nil
}

// FFprobe resolves the ffprobe binary and returns the path to use, or "" when
// it is disabled or missing. Missing is logged at WARN and does not stop the
// run; videos without ISO-BMFF metadata then fall back to filesystem dates.
func FFprobe(cfg *config.Config, log Logger) string {
	if cfg.FFprobe == "" {
		log.Debug(cfg.Verbose, "ffprobe fallback disabled")
		return ""
	}
	p, err := FindFFprobe(cfg)
	if err != nil {
		log.Warn("%v; non-MP4 videos will use filesystem dates", err)
		return ""
	}
	if v, err := versionOf(p); err == nil && v != "" {
		log.Debug(cfg.Verbose, "ffprobe: %s", v)
	}
	return p
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
