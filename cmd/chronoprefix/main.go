// Command chronoprefix renames the photos and videos in one directory so
// their names start with the capture date ("2006-01-02 15:04:05 name.ext").
// It parses flags, loads overrides, validates config, and runs the pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/backmassage/chronoprefix/internal/check"
	"github.com/backmassage/chronoprefix/internal/config"
	"github.com/backmassage/chronoprefix/internal/display"
	"github.com/backmassage/chronoprefix/internal/logging"
	"github.com/backmassage/chronoprefix/internal/pipeline"
	"github.com/backmassage/chronoprefix/internal/prompt"
)

// version and commit are set at build time via -ldflags.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 1. Defaults, CLI flags, then config file / environment overrides.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, config.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "chronoprefix: %v\n", err)
		return 1
	}
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "chronoprefix: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "chronoprefix: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chronoprefix: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner(os.Stdout)
	log.Debug(cfg.Verbose, "chronoprefix %s (%s)", version, commit)

	// 2. Optional tools. A missing ffprobe only narrows video support.
	cfg.FFprobe = check.FFprobe(&cfg, log)

	// 3. First SIGINT/SIGTERM stops the run before the next rename; a second
	// one falls through to the default handler.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigs:
			log.Warn("Interrupt received, stopping after the current file")
			cancel()
			signal.Stop(sigs)
		case <-ctx.Done():
		}
	}()

	// 4. Run.
	ui := prompt.NewConsole(os.Stdin, os.Stdout)
	if _, err := pipeline.Run(ctx, &cfg, log, ui, os.Stdout); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}
