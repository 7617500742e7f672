// Package mediatest builds tiny in-memory media files for tests: a JPEG
// carrying EXIF DateTimeOriginal and an MP4 carrying an mvhd creation time.
package mediatest

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abema/go-mp4"
)

// mp4Epoch is the number of seconds between 1904-01-01 and 1970-01-01.
const mp4Epoch = 2082844800

// JPEGWithExif returns a minimal JPEG whose Exif IFD holds DateTimeOriginal
// set to t in local time.
func JPEGWithExif(t time.Time) []byte {
	return JPEGWithExifString(t.Local().Format("2006:01:02 15:04:05"))
}

// PlainJPEG returns a JPEG header with no EXIF segment.
func PlainJPEG() []byte {
	return []byte{
		0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00,
		0x01, 0x01, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00,
		0xFF, 0xD9,
	}
}

// JPEGWithExifString is JPEGWithExif with a raw (possibly malformed) value.
func JPEGWithExifString(value string) []byte {
	le := binary.LittleEndian
	val := append([]byte(value), 0)

	// TIFF header, IFD0 with one entry pointing at the Exif IFD, the Exif
	// IFD with one ASCII entry, then the string data.
	const ifd0, exifIFD, data = 8, 26, 44
	tiff := make([]byte, data+len(val))
	copy(tiff[0:], "II")
	le.PutUint16(tiff[2:], 42)
	le.PutUint32(tiff[4:], ifd0)

	le.PutUint16(tiff[ifd0:], 1)
	putEntry(tiff[ifd0+2:], 0x8769, 4, 1, exifIFD)
	le.PutUint32(tiff[ifd0+14:], 0)

	le.PutUint16(tiff[exifIFD:], 1)
	putEntry(tiff[exifIFD+2:], 0x9003, 2, uint32(len(val)), data)
	le.PutUint32(tiff[exifIFD+14:], 0)

	copy(tiff[data:], val)

	var b bytes.Buffer
	b.Write([]byte{0xFF, 0xD8, 0xFF, 0xE1})
	_ = binary.Write(&b, binary.BigEndian, uint16(2+6+len(tiff)))
	b.WriteString("Exif\x00\x00")
	b.Write(tiff)
	b.Write([]byte{0xFF, 0xD9})
	return b.Bytes()
}

func putEntry(b []byte, tag, typ uint16, count, value uint32) {
	le := binary.LittleEndian
	le.PutUint16(b[0:], tag)
	le.PutUint16(b[2:], typ)
	le.PutUint32(b[4:], count)
	le.PutUint32(b[8:], value)
}

// MP4WithCreation returns a minimal ISO-BMFF file (ftyp + moov/mvhd v0)
// whose mvhd creation time is t. A zero t writes a zero creation time.
// It panics if the boxes cannot be encoded.
func MP4WithCreation(t time.Time) []byte {
	var secs uint32
	if !t.IsZero() {
		secs = uint32(t.Unix() + mp4Epoch)
	}

	// mp4.Writer patches box sizes by seeking, so encode into a scratch file.
	f, err := os.CreateTemp("", "mediatest-*.mp4")
	if err != nil {
		panic(err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	w := mp4.NewWriter(f)
	ftyp := &mp4.Ftyp{
		MajorBrand:   [4]byte{'i', 's', 'o', 'm'},
		MinorVersion: 0x200,
		CompatibleBrands: []mp4.CompatibleBrandElem{
			{CompatibleBrand: [4]byte{'i', 's', 'o', 'm'}},
			{CompatibleBrand: [4]byte{'m', 'p', '4', '2'}},
		},
	}
	mvhd := &mp4.Mvhd{
		CreationTimeV0:     secs,
		ModificationTimeV0: secs,
		Timescale:          1000,
		Rate:               0x00010000,
		Volume:             0x0100,
		Matrix:             [9]int32{0x00010000, 0, 0, 0, 0x00010000, 0, 0, 0, 0x40000000},
		NextTrackID:        2,
	}
	must(writeBox(w, mp4.BoxTypeFtyp(), ftyp))
	_, err = w.StartBox(&mp4.BoxInfo{Type: mp4.BoxTypeMoov()})
	must(err)
	must(writeBox(w, mp4.BoxTypeMvhd(), mvhd))
	_, err = w.EndBox()
	must(err)

	data, err := os.ReadFile(f.Name())
	must(err)
	return data
}

func writeBox(w *mp4.Writer, typ mp4.BoxType, box mp4.IImmutableBox) error {
	bi, err := w.StartBox(&mp4.BoxInfo{Type: typ})
	if err != nil {
		return err
	}
	if _, err := mp4.Marshal(w, box, bi.Context); err != nil {
		return err
	}
	_, err = w.EndBox()
	return err
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// WriteFile writes data to dir/name, sets its mtime to mtime when non-zero,
// and returns the full path.
func WriteFile(tb testing.TB, dir, name string, data []byte, mtime time.Time) string {
	tb.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		tb.Fatal(err)
	}
	if !mtime.IsZero() {
		if err := os.Chtimes(p, mtime, mtime); err != nil {
			tb.Fatal(err)
		}
	}
	return p
}
