package display

import (
	"fmt"
	"io"

	"github.com/backmassage/chronoprefix/internal/term"
)

// PrintBanner prints the banner; uses Cyan if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Cyan)
	fmt.Fprint(w, `┌─┐┬ ┬┬─┐┌─┐┌┐┌┌─┐┌─┐┬─┐┌─┐┌─┐┬─┐ ┬
│  ├─┤├┬┘│ ││││││ │├─┘├┬┘├┤ ├┤ │┌┴┬┘
└─┘┴ ┴┴└─└─┘┘└┘└─┘┴  ┴└─└─┘└  ┴┴ └─
`)
	if term.Enabled() {
		fmt.Fprint(w, term.NC)
	}
	fmt.Fprintln(w)
}
