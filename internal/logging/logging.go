// Package logging builds the charmbracelet/log loggers used by the snake
// commands. Interactive frontends own the terminal, so their logs go to a
// size-rotated file instead of stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configure a logger.
type Options struct {
	// File is the log file path. Empty logs to stderr.
	File string
	// Prefix is printed before every message.
	Prefix string
	// Level is a charmbracelet/log level name ("debug", "info", ...).
	// Unknown or empty names mean info.
	Level string
}

// New returns a logger and a closer for its output. The closer is safe to
// call more than once.
func New(opts Options) (*log.Logger, io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, err
		}
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    5, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
		}
		w, closer = lj, lj
	}

	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		level = log.InfoLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything. Tests and library
// callers without a logger use it.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
