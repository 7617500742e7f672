package pipeline

// FileError is a per-file failure.
type FileError struct {
	Name string
	Err  error
}

// RunStats tracks the outcome of one run.
type RunStats struct {
	Found           int // Media files discovered.
	Selected        int // Files in the applying set.
	Renamed         int
	SkippedPrefixed int // Already-prefixed files left out by the ignore policy.
	Failed          int
	Failures        []FileError

	Aborted     bool // User chose abort at the policy prompt.
	Declined    bool // User answered no at a confirmation.
	Interrupted bool // Context cancelled (SIGINT/SIGTERM).
}

func (s *RunStats) fail(name string, err error) {
	s.Failed++
	s.Failures = append(s.Failures, FileError{Name: name, Err: err})
}
