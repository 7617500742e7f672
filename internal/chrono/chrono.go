// Package chrono resolves the timestamp used to prefix a media file.
//
// Sources are tried in a fixed order and the first one that yields a value
// wins: embedded capture metadata, then the filesystem modification time,
// then the filesystem creation (birth) time. Resolution only reads.
package chrono

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/backmassage/chronoprefix/internal/media"
)

// ErrUnresolved means no source produced a timestamp for the file.
var ErrUnresolved = errors.New("no timestamp available")

var errNoBirthTime = errors.New("creation time not recorded")

// CaptureReader extracts embedded capture metadata. Implemented by
// probe.Reader.
type CaptureReader interface {
	CaptureTime(ctx context.Context, f media.File) (time.Time, error)
}

// Times holds filesystem timestamps. A zero value means unavailable.
type Times struct {
	Modified time.Time
	Created  time.Time
}

// StatTimes reads the modification and creation times of path. A missing
// creation time is not an error.
func StatTimes(path string) (Times, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Times{}, errors.Wrap(err, "stat")
	}
	t := Times{Modified: fi.ModTime()}
	if bt, err := birthTime(path); err == nil {
		t.Created = bt
	}
	return t, nil
}

// Resolution is a resolved timestamp and where it came from.
type Resolution struct {
	Time   time.Time
	Source media.Source
}

// Resolver implements the ordered source lookup.
type Resolver struct {
	Capture CaptureReader                   // nil skips capture metadata
	Stat    func(path string) (Times, error) // nil uses StatTimes
}

// NewResolver returns a Resolver backed by capture and the real filesystem.
func NewResolver(capture CaptureReader) *Resolver {
	return &Resolver{Capture: capture, Stat: StatTimes}
}

// Resolve returns the first available timestamp for f. Metadata errors only
// cause fall-through; when every source fails the error wraps
// [ErrUnresolved] with the last cause.
func (r *Resolver) Resolve(ctx context.Context, f media.File) (Resolution, error) {
	if err := ctx.Err(); err != nil {
		return Resolution{}, err
	}

	var last error
	if r.Capture != nil {
		t, err := r.Capture.CaptureTime(ctx, f)
		if err == nil && !t.IsZero() {
			return Resolution{Time: t, Source: media.SourceCapture}, nil
		}
		last = err
	}

	stat := r.Stat
	if stat == nil {
		stat = StatTimes
	}
	times, err := stat(f.Path)
	if err != nil {
		return Resolution{}, errors.Wrapf(ErrUnresolved, "%v", err)
	}
	if !times.Modified.IsZero() {
		return Resolution{Time: times.Modified, Source: media.SourceModified}, nil
	}
	if !times.Created.IsZero() {
		return Resolution{Time: times.Created, Source: media.SourceCreated}, nil
	}

	if last == nil {
		last = errNoBirthTime
	}
	return Resolution{}, errors.Wrapf(ErrUnresolved, "%v", last)
}
