//go:build windows

package chrono

import (
	"os"
	"syscall"
	"time"
)

func birthTime(path string) (time.Time, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	d, ok := fi.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, errNoBirthTime
	}
	return time.Unix(0, d.CreationTime.Nanoseconds()), nil
}
