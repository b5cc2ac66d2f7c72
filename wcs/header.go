// Copyright 2026 The astrowcs authors
// License: MIT

// Package wcs is the driver that ties numerics, epoch, projection,
// rotation, and crs together into the pixel<->sky pipeline spec.md §6
// describes: it reads a FITS-style header through the HeaderView
// contract, builds a Context, and exposes PixToWorld/WorldToPix plus
// the FOV/centre convenience queries.
package wcs

import "errors"

// ErrStructural is the JWcsError equivalent (spec.md §7): the header
// itself is malformed or missing a keyword the driver cannot proceed
// without. Unlike projection/rotation errors, which surface per point,
// this is a construction-time failure.
var ErrStructural = errors.New("wcs: malformed or incomplete header")

// HeaderView is the minimal read-only contract a FITS header provider
// must satisfy (spec.md §6); this module never parses FITS files
// itself (out of scope, spec.md §1) and only consumes whatever the
// caller's own FITS reader hands it through this interface.
type HeaderView interface {
	HasKeyword(key string) bool
	GetInt(key string) (int, bool)
	GetFloat(key string) (float64, bool)
	GetString(key string) (string, bool)
	// Keywords iterates every keyword this view carries, in header
	// order, calling fn with the raw keyword and its string-rendered
	// value until fn returns false.
	Keywords(fn func(key, value string) bool)
}
