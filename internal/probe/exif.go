package probe

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rwcarlsen/goexif/exif"
)

// ExifLayout is the EXIF date/time layout. EXIF values carry no zone and are
// interpreted in local time.
const ExifLayout = "2006:01:02 15:04:05"

// exifDateTags are tried in order.
var exifDateTags = []exif.FieldName{exif.DateTimeOriginal, exif.DateTimeDigitized}

// ExifTime returns the EXIF capture time of the image at path.
func ExifTime(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "open image")
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrNoCaptureTime, "decode exif: %v", err)
	}

	var last error = ErrNoCaptureTime
	for _, name := range exifDateTags {
		tag, err := x.Get(name)
		if err != nil {
			continue
		}
		s, err := tag.StringVal()
		if err != nil {
			last = errors.Wrapf(ErrNoCaptureTime, "%s: %v", name, err)
			continue
		}
		t, err := ParseExifTime(s)
		if err != nil {
			last = errors.Wrapf(ErrNoCaptureTime, "%s: %v", name, err)
			continue
		}
		return t, nil
	}
	return time.Time{}, last
}

// ParseExifTime parses an EXIF "YYYY:MM:DD HH:MM:SS" value in local time.
// Trailing NULs and surrounding spaces are ignored.
func ParseExifTime(s string) (time.Time, error) {
	s = strings.TrimSpace(strings.TrimRight(s, "\x00"))
	t, err := time.ParseInLocation(ExifLayout, s, time.Local)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse exif time %q", s)
	}
	return t, nil
}
