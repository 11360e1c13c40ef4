// Package logging builds the charmbracelet/log logger shared by the store,
// the controller and the commands.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options holds configuration for a logger.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns the options used by the command line.
// Only warnings and errors are shown unless --debug is given.
func DefaultOptions() Options {
	return Options{
		Level:     log.WarnLevel,
		Formatter: log.TextFormatter,
		Prefix:    "todopad",
	}
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// NewFromConfig creates a logger from string configuration values,
// as read from config.toml.
func NewFromConfig(w io.Writer, level, format string) *log.Logger {
	opts := DefaultOptions()
	if level != "" {
		opts.Level = ParseLevel(level)
	}
	if format != "" {
		opts.Formatter = ParseFormatter(format)
	}
	return New(w, opts)
}

// OpenFile opens (appending) a log file for surfaces that own the terminal.
// The caller closes the returned file.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel parses a string log level. Unknown values map to warn.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// ParseFormatter parses a formatter name.
func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
