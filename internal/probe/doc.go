// Package probe reads capture timestamps embedded in media files.
//
// Sources, in the order [Reader.CaptureTime] tries them:
//   - images: EXIF DateTimeOriginal, then DateTimeDigitized (exif.go)
//   - ISO-BMFF videos (MP4, MOV, M4V, 3GP): moov/mvhd creation time (mp4.go)
//   - other or untagged videos: creation_time from a single ffprobe JSON
//     call, when an ffprobe binary is configured (ffprobe.go)
//
// Every reader only opens files for reading. A missing or unparsable value is
// reported as an error wrapping [ErrNoCaptureTime] so callers can fall
// through to filesystem times.
package probe
