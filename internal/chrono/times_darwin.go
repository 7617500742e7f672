//go:build darwin

package chrono

import (
	"time"

	"golang.org/x/sys/unix"
)

func birthTime(path string) (time.Time, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, err
	}
	if st.Btim.Sec == 0 && st.Btim.Nsec == 0 {
		return time.Time{}, errNoBirthTime
	}
	return time.Unix(st.Btim.Unix()), nil
}
