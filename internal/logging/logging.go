// Package logging builds the zerolog loggers marquee writes diagnostics to.
//
// The terminal UI owns stdout, so interactive sessions log JSON lines to a
// file that the diagnostics pane tails. Headless commands log human-readable
// lines to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	// Level is a zerolog level name. Unknown names fall back to info.
	Level string
	// Debug forces debug level.
	Debug bool
	// File receives JSON lines when set. Parent directories are created.
	File string
	// Console receives human-readable lines when File is empty.
	Console io.Writer
}

// Logger pairs a zerolog.Logger with the file it writes to, if any.
type Logger struct {
	zerolog.Logger
	file *os.File
	path string
}

// New returns a logger per opts. Close releases the log file.
func New(opts Options) (*Logger, error) {
	lvl := ParseLevel(opts.Level)
	if opts.Debug {
		lvl = zerolog.DebugLevel
	}

	if path := strings.TrimSpace(opts.File); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		zl := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
		return &Logger{Logger: zl, file: f, path: path}, nil
	}

	out := opts.Console
	if out == nil {
		out = os.Stderr
	}
	console := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	zl := zerolog.New(console).Level(lvl).With().Timestamp().Logger()
	return &Logger{Logger: zl}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Path returns the log file, or "" when logging to the console.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Component returns a child logger tagged with name.
func (l *Logger) Component(name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
