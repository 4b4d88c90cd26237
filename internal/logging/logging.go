// Package logging builds the leveled console logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tick/internal/config"
)

// New returns a logger configured from cfg, writing to stderr so log
// output never mixes with command output on stdout.
func New(cfg *config.Config) *log.Logger {
	return NewWithWriter(os.Stderr, cfg)
}

// NewWithWriter returns a logger configured from cfg writing to w.
func NewWithWriter(w io.Writer, cfg *config.Config) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(cfg.LogLevel),
		Formatter:       ParseFormat(cfg.LogFormat),
		ReportTimestamp: cfg.LogTimestamps,
		Prefix:          "tick",
	})
}

// ParseLevel maps a config string to a log level. Unknown values fall
// back to warn, the default.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// ParseFormat maps a config string to an output formatter.
func ParseFormat(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// ValidLevel reports whether level is a recognized log level name.
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// ValidFormat reports whether format is a recognized log format name.
func ValidFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "json", "logfmt":
		return true
	}
	return false
}
