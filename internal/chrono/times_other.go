//go:build !linux && !darwin && !windows

package chrono

import "time"

func birthTime(string) (time.Time, error) {
	return time.Time{}, errNoBirthTime
}
