// Package logger builds charmbracelet/log loggers for console output.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a console logger on stdout that respects the global log level.
func New(prefix string) *log.Logger {
	return NewWithWriter(os.Stdout, prefix)
}

// NewWithWriter creates a console logger without timestamps on w.
func NewWithWriter(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a charm logger with custom options
func NewWithConfig(w io.Writer, prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}

// Setup replaces the package-level charm logger used for diagnostics.
// Debug mode lowers the level to debug and adds timestamps.
func Setup(prefix string, debug bool) {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	log.SetDefault(NewWithConfig(os.Stderr, prefix, level, false, debug, log.TextFormatter))
}
