package probe

import (
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrNoCaptureTime means the file carries no usable capture timestamp.
var ErrNoCaptureTime = errors.New("no capture time in metadata")

// FormatInfo holds container-level metadata from ffprobe's format section.
type FormatInfo struct {
	Filename   string
	FormatName string
	Tags       map[string]string
}

// Stream holds the per-stream fields needed for timestamp lookup.
type Stream struct {
	Index     int
	CodecType string
	Tags      map[string]string
}

// ProbeResult is the parsed output of a single ffprobe JSON call.
type ProbeResult struct {
	Format  FormatInfo
	Streams []Stream
}

// creationTagKeys are the tag names that carry a recording date, in order of
// preference. Lookup is case-insensitive.
var creationTagKeys = []string{
	"com.apple.quicktime.creationdate",
	"creation_time",
	"date",
}

// creationLayouts are the date forms seen in creation tags.
var creationLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// CreationTime returns the first parseable creation tag, looking at the
// format tags before the stream tags (streams in index order).
func (p *ProbeResult) CreationTime() (time.Time, error) {
	tagSets := []map[string]string{p.Format.Tags}
	streams := append([]Stream(nil), p.Streams...)
	sort.SliceStable(streams, func(i, j int) bool { return streams[i].Index < streams[j].Index })
	for _, s := range streams {
		tagSets = append(tagSets, s.Tags)
	}

	for _, key := range creationTagKeys {
		for _, tags := range tagSets {
			v, ok := lookupTag(tags, key)
			if !ok {
				continue
			}
			if t, err := ParseCreationTime(v); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, errors.Wrap(ErrNoCaptureTime, "no creation tag")
}

// ParseCreationTime parses a container creation tag. Values with a zone are
// converted to local time; zoneless values are taken as UTC, which is what
// muxers write. Pre-1970 values (unset atoms) are rejected.
func ParseCreationTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range creationLayouts {
		t, err := time.Parse(layout, v)
		if err != nil {
			continue
		}
		if t.Unix() <= 0 {
			return time.Time{}, errors.Errorf("creation time %q is unset", v)
		}
		return t.Local(), nil
	}
	return time.Time{}, errors.Errorf("unrecognized creation time %q", v)
}

func lookupTag(tags map[string]string, key string) (string, bool) {
	for k, v := range tags {
		if strings.EqualFold(k, key) && strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", false
}
