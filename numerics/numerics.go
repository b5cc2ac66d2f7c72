// Copyright 2026 The astrowcs authors
// License: MIT

// Package numerics collects the small numerical building blocks the WCS
// pipeline leans on everywhere: safe inverse trig at the domain edge,
// angle folding, small dense matrix algebra, and a bisection root finder
// for the handful of projections with no closed-form inverse.
//
// Nothing here touches FITS, headers, or projections; it is the leaf
// layer every other package in this module imports.
package numerics

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain is returned by Asin/Acos when the argument lies outside
// [-1-Tolerance, 1+Tolerance].
var ErrDomain = errors.New("numerics: argument outside [-1,1]")

// Tolerance is how far outside [-1,1] Asin/Acos will clamp before
// failing with ErrDomain. Values within Tolerance of the boundary are
// assumed to be round-off error and are clamped rather than rejected.
const Tolerance = 1e-10

// Asin is math.Asin with the argument clamped to [-1,1] when it falls
// within Tolerance of the boundary. Arguments further outside that
// range indicate a calling-code bug and return ErrDomain.
func Asin(x float64) (float64, error) {
	c, err := clamp(x)
	if err != nil {
		return 0, err
	}
	return math.Asin(c), nil
}

// Acos is math.Acos with the same clamping behavior as Asin.
func Acos(x float64) (float64, error) {
	c, err := clamp(x)
	if err != nil {
		return 0, err
	}
	return math.Acos(c), nil
}

func clamp(x float64) (float64, error) {
	switch {
	case x < -1:
		if x < -1-Tolerance {
			return 0, fmt.Errorf("%w: %v", ErrDomain, x)
		}
		return -1, nil
	case x > 1:
		if x > 1+Tolerance {
			return 0, fmt.Errorf("%w: %v", ErrDomain, x)
		}
		return 1, nil
	}
	return x, nil
}

// Atan2 is math.Atan2 except it returns 0, rather than an undefined
// angle, when both arguments are zero.
func Atan2(y, x float64) float64 {
	if y == 0 && x == 0 {
		return 0
	}
	return math.Atan2(y, x)
}

// NormalizeLongitudeDeg maps a longitude in degrees to [0,360).
func NormalizeLongitudeDeg(lon float64) float64 {
	r := math.Mod(lon, 360)
	if r < 0 {
		r += 360
	}
	return r
}

// NormalizeLongitudeRad maps a longitude in radians to [0,2π).
func NormalizeLongitudeRad(lon float64) float64 {
	r := math.Mod(lon, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r
}

// PhiRange maps a native longitude φ in radians to (-π,π].
func PhiRange(phi float64) float64 {
	r := math.Mod(phi, 2*math.Pi)
	switch {
	case r <= -math.Pi:
		r += 2 * math.Pi
	case r > math.Pi:
		r -= 2 * math.Pi
	}
	return r
}

// ClampLatitudeDeg clamps a latitude in degrees to [-90,90].
func ClampLatitudeDeg(lat float64) float64 {
	switch {
	case lat < -90:
		return -90
	case lat > 90:
		return 90
	}
	return lat
}

// PMod returns a positive floating point x mod y, for positive y.
func PMod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r < 0 {
		r += y
	}
	return r
}

// Horner evaluates a polynomial with coefficients c (constant term
// first) at x.
func Horner(x float64, c ...float64) float64 {
	i := len(c) - 1
	y := c[i]
	for i > 0 {
		i--
		y = y*x + c[i]
	}
	return y
}
