package probe

import (
	"os"
	"time"

	"github.com/abema/go-mp4"
	"github.com/pkg/errors"
)

// mp4EpochOffset is the number of seconds from 1904-01-01 (the ISO-BMFF
// epoch) to 1970-01-01.
const mp4EpochOffset = 2082844800

// maxUnix is 9999-12-31 23:59:59 UTC, the last instant a four-digit year
// prefix can hold.
const maxUnix = 253402300799

// isoBMFF lists the MIME types whose container is ISO base media.
var isoBMFF = map[string]bool{
	"video/mp4":       true,
	"video/quicktime": true,
	"video/x-m4v":     true,
	"video/3gpp":      true,
	"video/3gpp2":     true,
}

// IsISOBMFF reports whether mime names an ISO-BMFF video container.
func IsISOBMFF(mime string) bool { return isoBMFF[mime] }

// ContainerTime returns the moov/mvhd creation time of the ISO-BMFF file at
// path. Zero or pre-1970 values count as absent.
func ContainerTime(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "open video")
	}
	defer f.Close()

	boxes, err := mp4.ExtractBoxWithPayload(f, nil, mp4.BoxPath{mp4.BoxTypeMoov(), mp4.BoxTypeMvhd()})
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrNoCaptureTime, "read mvhd: %v", err)
	}
	if len(boxes) == 0 {
		return time.Time{}, errors.Wrap(ErrNoCaptureTime, "no mvhd box")
	}
	mvhd, ok := boxes[0].Payload.(*mp4.Mvhd)
	if !ok {
		return time.Time{}, errors.Wrap(ErrNoCaptureTime, "unexpected mvhd payload")
	}

	var secs uint64
	if mvhd.GetVersion() == 0 {
		secs = uint64(mvhd.CreationTimeV0)
	} else {
		secs = mvhd.CreationTimeV1
	}
	return mvhdTime(secs)
}

// mvhdTime converts seconds since 1904 to a local time.
func mvhdTime(secs uint64) (time.Time, error) {
	if secs <= mp4EpochOffset {
		return time.Time{}, errors.Wrapf(ErrNoCaptureTime, "mvhd creation time %d is unset or before 1970", secs)
	}
	if secs-mp4EpochOffset > maxUnix {
		return time.Time{}, errors.Wrapf(ErrNoCaptureTime, "mvhd creation time %d is after year 9999", secs)
	}
	return time.Unix(int64(secs-mp4EpochOffset), 0).Local(), nil
}
