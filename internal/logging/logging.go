// Package logging builds the leveled diagnostic logger used on stderr.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix is printed in front of every log line.
const Prefix = "todo"

// DefaultLevel keeps normal runs free of diagnostics.
const DefaultLevel = "warn"

// New returns a text logger writing to w at the given level.
// Unknown levels fall back to DefaultLevel.
func New(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          Prefix,
	})
}

// Discard returns a logger that drops everything. Used when no logger is configured.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseLevel parses a level name to a charmbracelet/log Level.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error", "err":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
