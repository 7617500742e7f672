package config

// This file implements CLI flag parsing and help text. The surface is
// deliberately small: one optional positional directory and -h/--help.

import (
	"flag"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// ErrHelp is returned by ParseFlags after usage was printed for -h/--help.
// Callers should exit zero.
var ErrHelp = flag.ErrHelp

// ParseFlags parses args (without the program name) into cfg. Usage goes to
// out. On -h/--help it prints usage and returns [ErrHelp]; unknown flags or
// extra positional args return a non-nil error.
func ParseFlags(cfg *Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("chronoprefix", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() { printUsage(out) }

	// -h and -help are handled by the flag package itself and surface as
	// flag.ErrHelp; we only print our own usage.
	if err := fs.Parse(args); err != nil {
		return err
	}
	return parsePositionalArgs(fs, cfg)
}

// parsePositionalArgs sets Dir from the optional positional arg.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	switch len(args) {
	case 0:
		return nil
	case 1:
		cfg.Dir = NormalizeDirArg(args[0])
		cfg.DirDefaulted = false
		return nil
	default:
		return errors.Errorf("expected at most one directory, got %d arguments", len(args))
	}
}

// printUsage writes the help text to w.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `chronoprefix - prefix media files with their capture date

Renames photos and videos in a directory to "YYYY-MM-DD HH:MM:SS <name>",
using the capture date from EXIF/container metadata, falling back to the
modified date, then the created date.

Usage:
  chronoprefix [directory]

Arguments:
  directory   Directory to process (default: current directory)

Options:
  -h, --help  Show this help and exit

Environment:
  CHRONOPREFIX_CONFIG    Config file (default: <user config dir>/chronoprefix/config.yaml)
  CHRONOPREFIX_COLOR     auto | always | never
  CHRONOPREFIX_LOG_FILE  Append logs to file
  CHRONOPREFIX_VERBOSE   Verbose output (true/false)
  CHRONOPREFIX_CONFIRM   Ask for confirmation before renaming (default: true)
  CHRONOPREFIX_FFPROBE   ffprobe binary for non-MP4 videos (empty disables)
`)
}
