// Package naming recognizes and builds chronologically prefixed filenames
// ("2006-01-02 15:04:05 name.ext") and resolves in-run name collisions.
package naming
