package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/backmassage/chronoprefix/internal/chrono"
	"github.com/backmassage/chronoprefix/internal/config"
	"github.com/backmassage/chronoprefix/internal/display"
	"github.com/backmassage/chronoprefix/internal/logging"
	"github.com/backmassage/chronoprefix/internal/media"
	"github.com/backmassage/chronoprefix/internal/planner"
	"github.com/backmassage/chronoprefix/internal/probe"
)

// How many names the confirmation gates list.
const (
	continueSampleLimit = 3
	sampleLimit         = 5
)

// Prompter asks the user questions. Implemented by prompt.Console.
type Prompter interface {
	ChoosePolicy(prefixed []string) (planner.Policy, error)
	Confirm(question string) (bool, error)
}

// Resolver dates one file. Implemented by chrono.Resolver.
type Resolver interface {
	Resolve(ctx context.Context, f media.File) (chrono.Resolution, error)
}

// Runner holds the collaborators of a run. Zero-valued Detect and Resolver
// fall back to the production implementations.
type Runner struct {
	Cfg      *config.Config
	Log      *logging.Logger
	UI       Prompter
	Out      io.Writer
	Detect   DetectFunc
	Resolver Resolver
}

// Run is the top-level entry point: one pass over cfg.Dir with the
// production readers. The returned error is non-nil only for setup failures
// (bad directory, unreadable listing); everything else is reported in stats.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, ui Prompter, out io.Writer) (RunStats, error) {
	r := &Runner{Cfg: cfg, Log: log, UI: ui, Out: out}
	return r.Run(ctx)
}

// Run executes the state machine.
func (r *Runner) Run(ctx context.Context) (RunStats, error) {
	var stats RunStats
	cfg, log := r.Cfg, r.Log

	// --- Scanning ---
	log.Info("Checking directory...")
	dir, err := ValidateDir(cfg.Dir)
	if err != nil {
		return stats, err
	}
	if cfg.DirDefaulted {
		log.Info("No path provided. Using current directory: %s", dir)
	} else {
		log.Info("Target directory: %s", dir)
	}

	log.Info("Looking for and inspecting media in the given directory...")
	disc, err := Discover(dir, r.Detect)
	if err != nil {
		return stats, err
	}
	for _, u := range disc.Unreadable {
		log.Warn("Skipping %s: %v", u.Name, u.Err)
	}

	stats.Found = len(disc.Files)
	if stats.Found == 0 {
		log.Info("No media files to process.")
		return stats, nil
	}
	log.Info("Found %d media file(s) (%s)", stats.Found, display.FormatBytes(totalSize(disc.Files)))

	// --- Awaiting-Policy ---
	policy := planner.PolicyIgnore
	if prefixed := planner.AlreadyPrefixed(disc.Files); len(prefixed) > 0 {
		policy, err = r.UI.ChoosePolicy(fileNames(prefixed))
		if err != nil {
			log.Error("Cannot read choice: %v", err)
			stats.Aborted = true
			return stats, nil
		}
		log.Debug(cfg.Verbose, "Already-prefixed policy: %s", policy)
	}
	if policy == planner.PolicyAbort {
		log.Info("Operation cancelled.")
		stats.Aborted = true
		return stats, nil
	}

	selected, skipped := planner.Select(disc.Files, policy)
	stats.SkippedPrefixed = skipped
	stats.Selected = len(selected)
	if stats.Selected == 0 {
		log.Info("No media files to process.")
		r.logSummary(&stats)
		return stats, nil
	}

	if cfg.Confirm {
		fmt.Fprintf(r.Out, "\nFound %d media file(s) to process.\n\nSample files:\n", len(selected))
		display.SampleList(r.Out, fileNames(selected), continueSampleLimit)
		fmt.Fprintf(r.Out, "\nThis will attempt to prefix %d file(s) with chronological dates.\n", len(selected))
		if !r.confirm(&stats, "Do you want to continue?") {
			return stats, nil
		}
	}

	// --- Applying: resolve ---
	log.Info("Collecting file metadata...")
	resolved, ok := r.resolveAll(ctx, selected, &stats)
	if !ok {
		return stats, nil
	}
	log.Info("Collected metadata for %d file(s).", len(resolved))

	if fallback := fallbackFiles(resolved); len(fallback) > 0 {
		if cfg.Confirm {
			r.printFallback(fallback, len(resolved))
			if !r.confirm(&stats, "Do you want to continue with prefixing?") {
				return stats, nil
			}
		} else {
			log.Warn("%d file(s) have no capture date metadata and will use filesystem dates", len(fallback))
		}
	}

	// --- Applying: plan ---
	plans := planner.BuildPlans(resolved, disc.Entries)
	if len(plans) == 0 {
		r.logSummary(&stats)
		return stats, nil
	}
	if cfg.Confirm {
		display.Preview(r.Out, plans, sampleLimit)
		if !r.confirm(&stats, "Proceed with prefixing?") {
			return stats, nil
		}
	}

	// --- Applying: rename ---
	log.Info("Prefixing files...")
	for _, p := range plans {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			stats.Interrupted = true
			break
		}
		if err := renameNoClobber(p.File.Path, p.NewPath); err != nil {
			stats.fail(p.File.Name, err)
			log.Debug(cfg.Verbose, "Failed: %s: %v", p.File.Name, err)
			continue
		}
		stats.Renamed++
		log.Debug(cfg.Verbose, "%s -> %s", p.File.Name, p.NewName)
	}

	r.logSummary(&stats)
	return stats, nil
}

// resolveAll dates every selected file. Failures are recorded and skipped.
// It returns false when the context was cancelled.
func (r *Runner) resolveAll(ctx context.Context, files []media.File, stats *RunStats) ([]media.File, bool) {
	res := r.Resolver
	if res == nil {
		res = chrono.NewResolver(probe.NewReader(r.Cfg.FFprobe))
	}

	resolved := make([]media.File, 0, len(files))
	for _, f := range files {
		if ctx.Err() != nil {
			r.Log.Warn("Interrupted")
			stats.Interrupted = true
			return nil, false
		}
		rs, err := res.Resolve(ctx, f)
		if err != nil {
			if ctx.Err() != nil {
				r.Log.Warn("Interrupted")
				stats.Interrupted = true
				return nil, false
			}
			stats.fail(f.Name, err)
			r.Log.Warn("No date for %s: %v", f.Name, err)
			continue
		}
		f.Taken, f.Source = rs.Time, rs.Source
		r.Log.Debug(r.Cfg.Verbose, "%s: %s (%s)", f.Name, rs.Time.Format("2006-01-02 15:04:05"), rs.Source)
		resolved = append(resolved, f)
	}
	return resolved, true
}

// confirm asks question; a "no" or a read error marks the run declined.
func (r *Runner) confirm(stats *RunStats, question string) bool {
	ok, err := r.UI.Confirm(question)
	if err != nil {
		r.Log.Error("Cannot read answer: %v", err)
	}
	if err != nil || !ok {
		r.Log.Info("Operation cancelled.")
		stats.Declined = true
		return false
	}
	return true
}

func (r *Runner) printFallback(fallback []media.File, total int) {
	display.Heading(r.Out, "WARNING: Files with Missing Capture Dates")
	fmt.Fprintf(r.Out, "\n%d file(s) do not have capture date metadata.\n", len(fallback))
	fmt.Fprintln(r.Out, "These files will use modified date or created date instead.")
	fmt.Fprintln(r.Out, "\nFiles without capture dates:")
	items := make([]string, len(fallback))
	for i, f := range fallback {
		items[i] = fmt.Sprintf("%s (will use %s)", f.Name, fallbackLabel(f.Source))
	}
	display.SampleList(r.Out, items, sampleLimit)
	fmt.Fprintf(r.Out, "\nFiles with capture dates: %d/%d\n", total-len(fallback), total)
	fmt.Fprintf(r.Out, "Files using fallback dates: %d/%d\n", len(fallback), total)
}

// logSummary reports renamed / skipped / failed counts and the first few
// per-file errors.
func (r *Runner) logSummary(stats *RunStats) {
	display.Heading(r.Out, "Prefixing Complete")
	r.Log.Info("Successfully prefixed: %d/%d files", stats.Renamed, stats.Selected)
	if stats.SkippedPrefixed > 0 {
		r.Log.Info("Skipped (already prefixed): %d", stats.SkippedPrefixed)
	}
	if stats.Failed == 0 {
		return
	}
	r.Log.Error("Errors (%d):", stats.Failed)
	for i, fe := range stats.Failures {
		if i >= sampleLimit {
			r.Log.Error("  ... and %d more errors", len(stats.Failures)-sampleLimit)
			break
		}
		r.Log.Error("  - %s: %v", fe.Name, fe.Err)
	}
}

// --- helpers ---

func fileNames(files []media.File) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names
}

func totalSize(files []media.File) int64 {
	var n int64
	for _, f := range files {
		n += f.Size
	}
	return n
}

func fallbackFiles(files []media.File) []media.File {
	var out []media.File
	for _, f := range files {
		if f.Source.IsFallback() {
			out = append(out, f)
		}
	}
	return out
}

func fallbackLabel(s media.Source) string {
	if s == media.SourceCreated {
		return "created date"
	}
	return "modified date"
}
