// Copyright 2026 The astrowcs authors
// License: MIT

// Package wcslog is the warning sink wcs.Context reports non-fatal
// header anomalies to (spec.md §7): a header that parses but asks for
// a default the caller should know about, e.g. a missing RADESYS that
// falls back to ICRS. CUNIT keywords are not read, so no unit warning
// is ever emitted. It wraps github.com/rs/zerolog rather than
// introducing a package-level logger singleton — every Context holds
// its own Logger value, defaulting to a no-op sink, passed in by the
// caller exactly as spec.md §9 ("no global logger singleton") asks.
package wcslog

import "github.com/rs/zerolog"

// Logger is a thin wrapper over zerolog.Logger restricted to the one
// thing this module's header parsing needs: a structured warning.
type Logger struct {
	z zerolog.Logger
}

// New wraps an existing zerolog.Logger.
func New(z zerolog.Logger) Logger { return Logger{z: z} }

// Nop returns a Logger that discards everything, the default when a
// caller does not supply one.
func Nop() Logger { return Logger{z: zerolog.Nop()} }

// Warn logs a non-fatal header anomaly with structured fields.
func (l Logger) Warn(msg string, fields map[string]any) {
	ev := l.z.Warn()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
