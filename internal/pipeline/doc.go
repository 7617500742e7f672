// Package pipeline runs one pass over a directory:
//
//	Scanning → Awaiting-Policy (only with already-prefixed files) → Applying → Done
//	                 └──────────── abort / declined ────────────→ Aborted
//
// Scanning lists regular files (no recursion) and keeps content-sniffed
// images and videos. Applying resolves every selected file, plans the
// prefixed names, and renames in place, one file at a time. Per-file
// failures are recorded in [RunStats] and never stop the run.
//
// Split across discover.go (Scanning), runner.go (state machine and
// reporting), rename.go (no-clobber rename), and stats.go.
package pipeline
