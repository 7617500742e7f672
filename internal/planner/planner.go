package planner

import (
	"path/filepath"

	"github.com/backmassage/chronoprefix/internal/media"
	"github.com/backmassage/chronoprefix/internal/naming"
)

// AlreadyPrefixed returns the files whose names carry a prefix, in order.
func AlreadyPrefixed(files []media.File) []media.File {
	var out []media.File
	for _, f := range files {
		if f.Prefixed {
			out = append(out, f)
		}
	}
	return out
}

// Select returns the applying set for policy and the number of
// already-prefixed files it leaves out. PolicyAbort selects nothing.
func Select(files []media.File, policy Policy) (selected []media.File, skipped int) {
	switch policy {
	case PolicyAbort:
		return nil, 0
	case PolicyAddAnyway:
		return append([]media.File(nil), files...), 0
	default:
		for _, f := range files {
			if f.Prefixed {
				skipped++
				continue
			}
			selected = append(selected, f)
		}
		return selected, skipped
	}
}

// BuildPlans assigns each resolved file its prefixed target name. existing is
// the directory's current entry names; targets never reuse one of them nor
// each other. Files are planned in the order given.
func BuildPlans(files []media.File, existing []string) []FilePlan {
	cr := naming.NewCollisionResolver(existing...)
	plans := make([]FilePlan, 0, len(files))
	for _, f := range files {
		name := cr.Claim(naming.Prefixed(f.Taken, f.Name))
		plans = append(plans, FilePlan{
			File:    f,
			NewName: name,
			NewPath: filepath.Join(filepath.Dir(f.Path), name),
		})
	}
	return plans
}
