package pipeline

import (
	"os"

	"github.com/pkg/errors"
)

// ErrTargetExists is returned when a rename target is already present.
// Existing files are never overwritten.
var ErrTargetExists = errors.New("target already exists")

var renameFunc = os.Rename

// renameNoClobber renames src to dst unless dst exists.
func renameNoClobber(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return errors.Wrapf(ErrTargetExists, "%s", dst)
	} else if !os.IsNotExist(err) {
		return errors.Wrap(err, "check target")
	}
	if err := renameFunc(src, dst); err != nil {
		return errors.Wrap(err, "rename")
	}
	return nil
}
