// Copyright 2026 The astrowcs authors
// License: MIT

// Package projection implements the 24 spherical map projections of
// spec.md §4.3: the zenithal, cylindrical, pseudocylindrical, conic,
// and polyconic families used by FITS CTYPEn projection codes.
//
// Every concrete projection satisfies Projection. Plane coordinates
// (x,y) are always in degrees; native sphere coordinates (φ,θ) are
// always in radians — this is the one universal convention spec.md
// §4.3 requires at the contract boundary, and every projection in
// this package observes it without exception.
//
// The deep AbstractProjection inheritance tree of the source this
// system was distilled from collapses here to a single interface with
// no shared base "class": spec.md §9 asks for a trait with default
// helpers instead of virtual dispatch, and in Go that default-helper
// role is played by the free functions in this file (toPolar,
// fromPolar, Bisect-based inverses) that every family's file calls
// into rather than inheriting.
package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/astrowcs/wcs/numerics"
)

// ErrBeyondDomain is the PixelBeyondProjection error kind (spec.md
// §7): a well-constructed projection was asked to map a point outside
// its domain.
var ErrBeyondDomain = errors.New("projection: point beyond projection domain")

// ErrBadParameter is the BadProjectionParameter error kind (spec.md
// §7): a projection parameter is out of its valid interval or the
// parameter combination is geometrically infeasible.
var ErrBadParameter = errors.New("projection: invalid parameter")

// R0 is the WCS Paper II reference radius, 180/π. Plane radii in
// degrees equal R0 times a native-sphere angle in radians; expressing
// it as a named constant keeps the per-family formulas legible.
const R0 = 180 / math.Pi

// Parameter describes one tunable of a projection for metadata
// consumers such as a GUI parameter editor (spec.md §4.3
// projection_parameters; the GUI itself is out of scope, spec.md §1).
type Parameter struct {
	Name    string
	PVKey   string
	HasMin  bool
	Min     float64
	HasMax  bool
	Max     float64
	Default float64
}

// Projection is the contract every concrete projection satisfies.
//
// Project maps a plane offset (x,y), in degrees, to native sphere
// coordinates (φ,θ), in radians (spec.md's "project" — deprojection,
// plane to sphere). ProjectInverse is its inverse, native sphere to
// plane (spec.md's "project_inverse"). Both may fail with
// ErrBeyondDomain on geometric infeasibility.
type Projection interface {
	// Code is the three-letter CTYPE projection code, e.g. "TAN".
	Code() string
	Project(xDeg, yDeg float64) (phi, theta float64, err error)
	ProjectInverse(phi, theta float64) (xDeg, yDeg float64, err error)
	// Inside reports whether a native sphere point lies within the
	// projection's domain.
	Inside(phi, theta float64) bool
	// NativeDefaults returns the (φ0,θ0) native fiducial point this
	// projection family expects when the header does not override it.
	NativeDefaults() (phi0, theta0 float64)
	// Parameters returns metadata for this projection's tunables.
	Parameters() []Parameter
}

// toPolar converts a plane offset to polar form (radius in degrees,
// azimuth in radians), the shape every zenithal/conic projection's
// inverse starts from.
func toPolar(x, y float64) (r, phi float64) {
	r = math.Hypot(x, y)
	phi = numerics.Atan2(x, -y)
	return
}

// fromPolar converts polar form back to a plane offset.
func fromPolar(r, phi float64) (x, y float64) {
	s, c := math.Sincos(phi)
	return r * s, -r * c
}

// bisectRadius solves for θ in [lo,hi] such that radius(θ) == target,
// the standard non-closed-form-inverse helper spec.md §9 asks for.
func bisectRadius(radius func(theta float64) float64, target, lo, hi float64) (float64, error) {
	theta, err := numerics.Bisect(func(theta float64) float64 {
		return radius(theta) - target
	}, lo, hi, 1e-13, numerics.DefaultMaxIterations)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBeyondDomain, err)
	}
	return theta, nil
}
