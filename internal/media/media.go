// Package media defines the per-file model shared by discovery, resolution
// and renaming, plus content-based MIME detection.
package media

import (
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

// Category is the coarse MIME class of a file.
type Category int

const (
	Other Category = iota
	Image
	Video
)

func (c Category) String() string {
	switch c {
	case Image:
		return "image"
	case Video:
		return "video"
	default:
		return "other"
	}
}

// Source records where a resolved timestamp came from. The order of the
// constants is the resolution order.
type Source int

const (
	SourceNone Source = iota
	SourceCapture
	SourceModified
	SourceCreated
)

func (s Source) String() string {
	switch s {
	case SourceCapture:
		return "capture-metadata"
	case SourceModified:
		return "modified-time"
	case SourceCreated:
		return "created-time"
	default:
		return "none"
	}
}

// IsFallback reports whether s is one of the filesystem fallbacks.
func (s Source) IsFallback() bool {
	return s == SourceModified || s == SourceCreated
}

// File is one media file in the target directory. Taken and Source stay zero
// until the file has been resolved.
type File struct {
	Path     string // Absolute path.
	Name     string // Base name at discovery time.
	MIME     string // Detected MIME type without parameters, e.g. "image/jpeg".
	Size     int64  // Bytes at discovery time.
	Category Category
	Prefixed bool // Name already carries a chronological prefix.

	Taken  time.Time
	Source Source
}

// CategoryOf classifies a MIME string. Parameters ("; charset=...") are ignored.
func CategoryOf(mime string) Category {
	base := BaseType(mime)
	switch {
	case strings.HasPrefix(base, "image/"):
		return Image
	case strings.HasPrefix(base, "video/"):
		return Video
	default:
		return Other
	}
}

// BaseType strips MIME parameters and lowercases the result.
func BaseType(mime string) string {
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return strings.ToLower(strings.TrimSpace(mime))
}

// DetectFile sniffs the content of path and returns its category and MIME
// type. Extensions are not consulted.
func DetectFile(path string) (Category, string, error) {
	m, err := mimetype.DetectFile(path)
	if err != nil {
		return Other, "", errors.Wrapf(err, "detect mime type of %s", path)
	}
	base := BaseType(m.String())
	return CategoryOf(base), base, nil
}
