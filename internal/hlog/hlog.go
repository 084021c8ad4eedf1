// Package hlog is the package-level logger every internal decoder writes
// through, adapted from hiveexplorer's logger package: a swappable
// *slog.Logger that discards output until a caller opts in. A parsing
// library must never write to stderr on its own, so the zero-value
// behavior is silence.
package hlog

import (
	"io"
	"log/slog"
)

// L is the shared logger. It discards everything until SetLogger is called.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces the shared logger, letting an embedding application
// route decode diagnostics into its own logging setup.
func SetLogger(l *slog.Logger) {
	if l != nil {
		L = l
	}
}

// Debug logs a per-record decode skip or other low-level tolerance event.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Warn logs a recoverable but noteworthy condition, such as a section
// skipped by a tolerant open.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }
