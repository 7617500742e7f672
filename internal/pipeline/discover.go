package pipeline

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/backmassage/chronoprefix/internal/media"
	"github.com/backmassage/chronoprefix/internal/naming"
)

// ErrNotDirectory is returned when the target path exists but is not a
// directory.
var ErrNotDirectory = errors.New("not a directory")

// DetectFunc sniffs a file's MIME category and type. media.DetectFile in
// production.
type DetectFunc func(path string) (media.Category, string, error)

// Discovery is the result of Scanning.
type Discovery struct {
	Files      []media.File // Media files, sorted by name.
	Entries    []string     // Every entry name in the directory, media or not.
	Unreadable []FileError  // Regular files whose type could not be read.
}

// ValidateDir resolves dir to an absolute path and checks that it exists and
// is a directory.
func ValidateDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "resolve %s", dir)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return "", errors.Wrapf(err, "'%s' is not a valid directory", dir)
	}
	if !fi.IsDir() {
		return "", errors.Wrapf(ErrNotDirectory, "'%s' is not a valid directory", dir)
	}
	return abs, nil
}

// Discover lists dir (one level, no recursion), keeps regular files whose
// content is an image or a video, and classifies each name. os.ReadDir
// returns entries sorted by name, so the order is deterministic.
func Discover(dir string, detect DetectFunc) (Discovery, error) {
	if detect == nil {
		detect = media.DetectFile
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Discovery{}, errors.Wrapf(err, "list %s", dir)
	}

	var d Discovery
	for _, e := range entries {
		d.Entries = append(d.Entries, e.Name())
		path := filepath.Join(dir, e.Name())
		info, ok := regularFile(path, e)
		if !ok {
			continue
		}

		cat, mime, err := detect(path)
		if err != nil {
			d.Unreadable = append(d.Unreadable, FileError{Name: e.Name(), Err: err})
			continue
		}
		if cat != media.Image && cat != media.Video {
			continue
		}

		d.Files = append(d.Files, media.File{
			Path:     path,
			Name:     e.Name(),
			MIME:     mime,
			Size:     info.Size(),
			Category: cat,
			Prefixed: naming.HasPrefix(e.Name()),
		})
	}
	return d, nil
}

// regularFile reports whether the entry is a regular file, following a
// symlink to its target. Dangling links and links to directories are skipped.
func regularFile(path string, e os.DirEntry) (os.FileInfo, bool) {
	if e.Type()&os.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return nil, false
		}
		return info, true
	}
	if !e.Type().IsRegular() {
		return nil, false
	}
	info, err := e.Info()
	if err != nil {
		return nil, false
	}
	return info, true
}
