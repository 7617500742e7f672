//go:build linux

package chrono

import (
	"time"

	"golang.org/x/sys/unix"
)

// birthTime asks statx for the file's birth time. Filesystems that do not
// record it (or kernels before 4.11) leave STATX_BTIME unset in the mask.
func birthTime(path string) (time.Time, error) {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, unix.AT_STATX_SYNC_AS_STAT, unix.STATX_BTIME, &stx); err != nil {
		return time.Time{}, err
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, errNoBirthTime
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
}
