package naming

import (
	"regexp"
	"time"
)

// PrefixLayout is the time layout of the chronological prefix.
const PrefixLayout = "2006-01-02 15:04:05"

// prefixPattern matches a prefix, one space, and a non-empty remainder. The
// check is syntactic: digits are not validated as a calendar date.
var prefixPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} .+`)

// HasPrefix reports whether name already starts with a chronological prefix.
func HasPrefix(name string) bool {
	return prefixPattern.MatchString(name)
}

// Prefix formats t (in local time) as a chronological prefix without the
// trailing space.
func Prefix(t time.Time) string {
	return t.Local().Format(PrefixLayout)
}

// Prefixed returns name with the chronological prefix for t prepended.
func Prefixed(t time.Time, name string) string {
	return Prefix(t) + " " + name
}
