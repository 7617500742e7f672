// Package prompt implements the interactive questions of a run on a
// line-oriented console: the already-prefixed policy choice and yes/no
// confirmations. One line of input is read per attempt; invalid answers are
// re-asked and end of input counts as the cautious answer (abort / no).
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/backmassage/chronoprefix/internal/display"
	"github.com/backmassage/chronoprefix/internal/planner"
	"github.com/backmassage/chronoprefix/internal/term"
)

// SampleLimit is how many file names a prompt lists before "... and N more".
const SampleLimit = 5

// Console asks questions on out and reads answers from in.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole returns a Console reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// ChoosePolicy shows the already-prefixed files and asks what to do with
// them. End of input returns [planner.PolicyAbort].
func (c *Console) ChoosePolicy(prefixed []string) (planner.Policy, error) {
	display.Heading(c.out, "WARNING: Already-Prefixed Files Detected")
	fmt.Fprintf(c.out, "\n%d file(s) already have chronological prefixes.\n", len(prefixed))
	fmt.Fprintln(c.out, "These files appear to have already been processed.")
	fmt.Fprintln(c.out, "\nAlready-prefixed files:")
	display.SampleList(c.out, prefixed, SampleLimit)

	fmt.Fprintln(c.out, "\nWhat would you like to do?")
	fmt.Fprintln(c.out, "  1. Ignore these files (only prefix files without chronological prefix)")
	fmt.Fprintln(c.out, "  2. Add prefix anyway (will add another date prefix)")
	fmt.Fprintln(c.out, "  3. Stop and quit")

	for {
		fmt.Fprint(c.out, "\nEnter your choice (1/2/3): ")
		line, err := c.readLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return planner.PolicyAbort, nil
		}
		if err != nil {
			return 0, err
		}
		p, err := planner.ParsePolicy(line)
		if err == nil {
			return p, nil
		}
		fmt.Fprintln(c.out, term.Paint(term.Yellow, "Please enter 1, 2, or 3."))
	}
}

// Confirm asks a yes/no question. End of input returns false.
func (c *Console) Confirm(question string) (bool, error) {
	for {
		fmt.Fprintf(c.out, "\n%s (y/n): ", question)
		line, err := c.readLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return false, nil
		}
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(c.out, term.Paint(term.Yellow, "Please enter 'y' or 'n'."))
	}
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned before io.EOF.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", errors.Wrap(err, "read input")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
