package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/backmassage/chronoprefix/internal/media"
	"github.com/backmassage/chronoprefix/internal/planner"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"phone photo", 3_355_443, "3.2 MiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
		{"4K clip 4.7 GiB", 5046586572, "4.7 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.bytes))
		})
	}
}

func TestSampleList(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		limit int
		want  string
	}{
		{"empty", nil, 5, ""},
		{"under limit", []string{"a.jpg", "b.jpg"}, 5, "  1. a.jpg\n  2. b.jpg\n"},
		{"over limit", []string{"a", "b", "c", "d"}, 3, "  1. a\n  2. b\n  3. c\n  ... and 1 more\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b bytes.Buffer
			SampleList(&b, tt.items, tt.limit)
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestPreview(t *testing.T) {
	var plans []planner.FilePlan
	for _, n := range []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg", "f.jpg", "g.jpg"} {
		plans = append(plans, planner.FilePlan{File: media.File{Name: n}, NewName: "2023-06-15 10:30:00 " + n})
	}

	var b bytes.Buffer
	Preview(&b, plans, 5)
	out := b.String()

	assert.Contains(t, out, "1. a.jpg\n   → 2023-06-15 10:30:00 a.jpg")
	assert.Contains(t, out, "5. e.jpg")
	assert.NotContains(t, out, "6. f.jpg")
	assert.Contains(t, out, "... and 2 more file(s) will be prefixed")
	assert.Contains(t, out, "Total files to prefix: 7")
}

func TestHeading(t *testing.T) {
	var b bytes.Buffer
	Heading(&b, "Done")
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	assert.Equal(t, []string{"========", "  Done", "========"}, lines)
}

func TestPrintBanner(t *testing.T) {
	var b bytes.Buffer
	PrintBanner(&b)
	assert.NotEmpty(t, b.String())
	assert.NotContains(t, b.String(), "\033[")
}
