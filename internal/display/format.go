// Package display renders the human-facing parts of a run: banner, section
// headings, sample lists, and the rename preview.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/backmassage/chronoprefix/internal/planner"
	"github.com/backmassage/chronoprefix/internal/term"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// Heading prints a section title framed by rules.
func Heading(w io.Writer, title string) {
	rule := strings.Repeat("=", len([]rune(title))+4)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", term.Paint(term.Bold, rule), term.Paint(term.Bold, "  "+title), term.Paint(term.Bold, rule))
}

// SampleList prints up to limit numbered items, then "... and N more".
func SampleList(w io.Writer, items []string, limit int) {
	for i, item := range items {
		if i >= limit {
			fmt.Fprintf(w, "  ... and %d more\n", len(items)-limit)
			return
		}
		fmt.Fprintf(w, "  %d. %s\n", i+1, item)
	}
}

// Preview prints up to limit old → new name pairs and the total count.
func Preview(w io.Writer, plans []planner.FilePlan, limit int) {
	Heading(w, "Preview of Prefixed Filenames")
	fmt.Fprintln(w)
	for i, p := range plans {
		if i >= limit {
			fmt.Fprintf(w, "... and %d more file(s) will be prefixed\n", len(plans)-limit)
			break
		}
		fmt.Fprintf(w, "%d. %s\n   %s %s\n\n", i+1, p.File.Name, term.Paint(term.Dim, "→"), term.Paint(term.Green, p.NewName))
	}
	fmt.Fprintf(w, "\nTotal files to prefix: %d\n", len(plans))
}
