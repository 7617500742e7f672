// Package logging provides the leveled console logger used across the tool.
//
// Output is rendered by zerolog's ConsoleWriter in the familiar
// "2006-01-02 15:04:05 [LEVEL] message" layout. ERROR lines go to stderr,
// everything else to stdout, and an optional log file receives an uncolored
// copy of every line.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/backmassage/chronoprefix/internal/config"
	"github.com/backmassage/chronoprefix/internal/term"
)

// TimeFormat is the timestamp layout of every log line.
const TimeFormat = "2006-01-02 15:04:05"

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	mu   sync.Mutex
	zl   zerolog.Logger
	file *os.File
}

// NewLogger configures terminal colors from cfg, then builds a logger writing
// to os.Stdout / os.Stderr. Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)
	return NewLoggerTo(cfg, os.Stdout, os.Stderr)
}

// NewLoggerTo is NewLogger with explicit console writers. Colors follow the
// current [term] state.
func NewLoggerTo(cfg *config.Config, stdout, stderr io.Writer) (*Logger, error) {
	color := term.Enabled()
	var w io.Writer = levelSplitWriter{
		out: consoleWriter(stdout, color),
		err: consoleWriter(stderr, color),
	}

	l := &Logger{}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, errors.Wrap(err, "create log directory")
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, errors.Wrap(err, "open log file")
		}
		l.file = f
		w = zerolog.MultiLevelWriter(w, consoleWriter(f, false))
	}

	l.zl = zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return l, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.zl = zerolog.Nop()
		return err
	}
	return nil
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.emit(zerolog.InfoLevel, format, args...)
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.emit(zerolog.WarnLevel, format, args...)
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.emit(zerolog.ErrorLevel, format, args...)
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.emit(zerolog.DebugLevel, format, args...)
}

func (l *Logger) emit(level zerolog.Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl.WithLevel(level).Msg(fmt.Sprintf(format, args...))
}

// --- Writers ---

// levelSplitWriter routes error-and-above events to err, the rest to out.
type levelSplitWriter struct {
	out io.Writer
	err io.Writer
}

func (w levelSplitWriter) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w levelSplitWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level >= zerolog.ErrorLevel && level != zerolog.NoLevel {
		return w.err.Write(p)
	}
	return w.out.Write(p)
}

func consoleWriter(out io.Writer, color bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:         out,
		NoColor:     !color,
		TimeFormat:  TimeFormat,
		FormatLevel: levelFormatter(color),
	}
}

// levelFormatter renders "[INFO]", "[WARN]", ... optionally colored.
func levelFormatter(color bool) zerolog.Formatter {
	return func(i interface{}) string {
		s, _ := i.(string)
		var label, c string
		switch s {
		case zerolog.LevelDebugValue:
			label, c = "DEBUG", term.Cyan
		case zerolog.LevelInfoValue:
			label, c = "INFO", term.Blue
		case zerolog.LevelWarnValue:
			label, c = "WARN", term.Yellow
		case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
			label, c = "ERROR", term.Red
		default:
			label = strings.ToUpper(s)
		}
		tag := "[" + label + "]"
		if !color {
			return tag
		}
		return term.Paint(c, tag)
	}
}
