package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CollisionResolver tracks names claimed in one directory during a run and
// resolves duplicates by appending " (N)" before the extension. It is meant
// for sequential use within a single run.
type CollisionResolver struct {
	claimed map[string]bool
}

// NewCollisionResolver returns a resolver that already treats existing (the
// directory's current entries) as taken.
func NewCollisionResolver(existing ...string) *CollisionResolver {
	cr := &CollisionResolver{claimed: make(map[string]bool, len(existing))}
	for _, name := range existing {
		cr.claimed[name] = true
	}
	return cr
}

// Claim returns requested if it is free, otherwise the first free
// "<stem> (N)<ext>" with N counting from 1, and marks the result as taken.
func (cr *CollisionResolver) Claim(requested string) string {
	if !cr.claimed[requested] {
		cr.claimed[requested] = true
		return requested
	}

	ext := filepath.Ext(requested)
	stem := strings.TrimSuffix(requested, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", stem, n, ext)
		if !cr.claimed[candidate] {
			cr.claimed[candidate] = true
			return candidate
		}
	}
}
