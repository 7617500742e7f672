package probe

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/backmassage/chronoprefix/internal/media"
)

// Reader picks the metadata reader for a file by its MIME category.
type Reader struct {
	// FFprobe is the ffprobe binary used for videos the ISO-BMFF reader
	// cannot date. Empty disables the fallback.
	FFprobe string

	probe func(ctx context.Context, bin, path string) (*ProbeResult, error)
}

// NewReader returns a Reader using ffprobe (may be empty).
func NewReader(ffprobe string) *Reader {
	return &Reader{FFprobe: ffprobe, probe: Probe}
}

// CaptureTime returns the embedded capture time of f. Errors wrap
// [ErrNoCaptureTime] when the file simply has no usable value.
func (r *Reader) CaptureTime(ctx context.Context, f media.File) (time.Time, error) {
	switch f.Category {
	case media.Image:
		return ExifTime(f.Path)
	case media.Video:
		return r.videoTime(ctx, f)
	default:
		return time.Time{}, errors.Wrapf(ErrNoCaptureTime, "unsupported type %s", f.MIME)
	}
}

func (r *Reader) videoTime(ctx context.Context, f media.File) (time.Time, error) {
	var last error = errors.Wrapf(ErrNoCaptureTime, "no reader for %s", f.MIME)
	if IsISOBMFF(f.MIME) {
		t, err := ContainerTime(f.Path)
		if err == nil {
			return t, nil
		}
		last = err
	}

	if r.FFprobe == "" {
		return time.Time{}, last
	}
	probe := r.probe
	if probe == nil {
		probe = Probe
	}
	res, err := probe(ctx, r.FFprobe, f.Path)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrNoCaptureTime, "%v", err)
	}
	return res.CreationTime()
}
