package chrono

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/chronoprefix/internal/media"
	"github.com/backmassage/chronoprefix/internal/mediatest"
	"github.com/backmassage/chronoprefix/internal/probe"
)

type fakeCapture struct {
	t     time.Time
	err   error
	calls int
}

func (f *fakeCapture) CaptureTime(context.Context, media.File) (time.Time, error) {
	f.calls++
	return f.t, f.err
}

func fixedStat(times Times, err error) func(string) (Times, error) {
	return func(string) (Times, error) { return times, err }
}

func TestResolve_Order(t *testing.T) {
	shot := time.Date(2023, 6, 15, 10, 30, 0, 0, time.Local)
	mod := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	born := time.Date(2020, 5, 6, 7, 8, 9, 0, time.Local)
	noMeta := errors.Wrap(probe.ErrNoCaptureTime, "no exif")

	tests := []struct {
		name       string
		capture    *fakeCapture
		times      Times
		statErr    error
		want       time.Time
		wantSource media.Source
		wantErr    bool
	}{
		{"capture wins", &fakeCapture{t: shot}, Times{Modified: mod, Created: born}, nil, shot, media.SourceCapture, false},
		{"modified when no capture", &fakeCapture{err: noMeta}, Times{Modified: mod, Created: born}, nil, mod, media.SourceModified, false},
		{"zero capture is absent", &fakeCapture{}, Times{Modified: mod}, nil, mod, media.SourceModified, false},
		{"created when no modified", &fakeCapture{err: noMeta}, Times{Created: born}, nil, born, media.SourceCreated, false},
		{"nothing", &fakeCapture{err: noMeta}, Times{}, nil, time.Time{}, media.SourceNone, true},
		{"stat fails", &fakeCapture{err: noMeta}, Times{}, errors.New("permission denied"), time.Time{}, media.SourceNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resolver{Capture: tt.capture, Stat: fixedStat(tt.times, tt.statErr)}
			got, err := r.Resolve(context.Background(), media.File{Name: "x.jpg"})
			assert.Equal(t, 1, tt.capture.calls)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnresolved), "err=%v", err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Time.Equal(tt.want))
			assert.Equal(t, tt.wantSource, got.Source)
		})
	}
}

func TestResolve_NilCaptureSkipsMetadata(t *testing.T) {
	mod := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	r := &Resolver{Stat: fixedStat(Times{Modified: mod}, nil)}
	got, err := r.Resolve(context.Background(), media.File{})
	require.NoError(t, err)
	assert.Equal(t, media.SourceModified, got.Source)
}

func TestResolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	capture := &fakeCapture{}
	r := &Resolver{Capture: capture, Stat: fixedStat(Times{}, nil)}
	_, err := r.Resolve(ctx, media.File{})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, capture.calls)
}

func TestResolve_RealFiles(t *testing.T) {
	dir := t.TempDir()
	shot := time.Date(2023, 6, 15, 10, 30, 0, 0, time.Local)
	mtime := time.Date(2019, 11, 3, 8, 0, 0, 0, time.Local)

	withExif := mediatest.WriteFile(t, dir, "photo.jpg", mediatest.JPEGWithExif(shot), mtime)
	plain := mediatest.WriteFile(t, dir, "plain.jpg", mediatest.PlainJPEG(), mtime)

	r := NewResolver(probe.NewReader(""))
	ctx := context.Background()

	got, err := r.Resolve(ctx, media.File{Path: withExif, MIME: "image/jpeg", Category: media.Image})
	require.NoError(t, err)
	assert.Equal(t, media.SourceCapture, got.Source)
	assert.True(t, got.Time.Equal(shot))

	got, err = r.Resolve(ctx, media.File{Path: plain, MIME: "image/jpeg", Category: media.Image})
	require.NoError(t, err)
	assert.Equal(t, media.SourceModified, got.Source)
	assert.True(t, got.Time.Equal(mtime))

	_, err = r.Resolve(ctx, media.File{Path: filepath.Join(dir, "gone.jpg"), Category: media.Image})
	assert.True(t, errors.Is(err, ErrUnresolved))
}

func TestStatTimes(t *testing.T) {
	dir := t.TempDir()
	mtime := time.Date(2019, 11, 3, 8, 0, 0, 0, time.Local)
	p := mediatest.WriteFile(t, dir, "a.jpg", mediatest.PlainJPEG(), mtime)

	times, err := StatTimes(p)
	require.NoError(t, err)
	assert.True(t, times.Modified.Equal(mtime))

	_, err = StatTimes(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
