package planner

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/backmassage/chronoprefix/internal/media"
)

// Policy is the user's choice for files that already carry a prefix. It is
// chosen once per run and applied uniformly.
type Policy int

const (
	// PolicyIgnore leaves already-prefixed files out of the run.
	PolicyIgnore Policy = iota + 1
	// PolicyAddAnyway includes them; they receive a second prefix.
	PolicyAddAnyway
	// PolicyAbort ends the run without renaming anything.
	PolicyAbort
)

func (p Policy) String() string {
	switch p {
	case PolicyIgnore:
		return "ignore"
	case PolicyAddAnyway:
		return "add-anyway"
	case PolicyAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// ErrInvalidPolicy is returned by ParsePolicy for unrecognized input.
var ErrInvalidPolicy = errors.New("invalid choice")

// ParsePolicy maps prompt input to a Policy: "1"/"ignore", "2"/"add"/
// "add-anyway", "3"/"abort"/"quit". Case and surrounding space are ignored.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "ignore":
		return PolicyIgnore, nil
	case "2", "add", "add-anyway":
		return PolicyAddAnyway, nil
	case "3", "abort", "quit":
		return PolicyAbort, nil
	default:
		return 0, errors.Wrapf(ErrInvalidPolicy, "%q", s)
	}
}

// FilePlan is the rename decided for one resolved file.
type FilePlan struct {
	File    media.File
	NewName string // Collision-resolved target base name.
	NewPath string // Target path in the same directory as File.Path.
}
