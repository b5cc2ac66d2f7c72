// Copyright 2026 The astrowcs authors
// License: MIT

package crs

import (
	"math"

	"github.com/astrowcs/wcs/numerics"
)

const arcsecToRad = math.Pi / (180 * 3600)

// PrecessFK5 returns the IAU 1976 (Lieske) precession matrix taking
// FK5 mean-equator-and-equinox Cartesian coordinates of epoch jd0 to
// epoch jd1. This is the same ζ/z/θ polynomial construction
// github.com/soniakeys/meeus's precess package uses (generalized from
// its Precessor helper type to a pure matrix-returning function).
func PrecessFK5(jd0, jd1 float64) numerics.Matrix3 {
	bigT := (jd0 - 2451545.0) / 36525
	t := (jd1 - jd0) / 36525

	zeta := arcsecToRad * numerics.Horner(t,
		0,
		(2306.2181+1.39656*bigT-0.000139*bigT*bigT),
		0.30188-0.000344*bigT,
		0.017998,
	)
	z := arcsecToRad * numerics.Horner(t,
		0,
		(2306.2181+1.39656*bigT-0.000139*bigT*bigT),
		1.09468+0.000066*bigT,
		0.018203,
	)
	theta := arcsecToRad * numerics.Horner(t,
		0,
		(2004.3109-0.85330*bigT-0.000217*bigT*bigT),
		-(0.42665 + 0.000217*bigT),
		-0.041833,
	)
	return numerics.Multiply3(Rz(-z), numerics.Multiply3(Ry(theta), Rz(-zeta)))
}

// PrecessFK4 returns the Newcomb precession matrix taking FK4
// mean-equator-and-equinox Cartesian coordinates of Besselian epoch
// b0 to Besselian epoch b1, using Newcomb's classical constants
// referred to the 1900.0 Besselian century (distinct from, and not to
// be confused with, the 1950.0 anchor epoch/epoch.go uses for the
// Besselian-year<->JD identity itself).
func PrecessFK4(b0, b1 float64) numerics.Matrix3 {
	bigT := (b0 - 1900.0) / 100
	t := (b1 - b0) / 100

	zeta := arcsecToRad * numerics.Horner(t,
		0,
		2304.250+1.396*bigT,
		0.302,
		0.018,
	)
	z := arcsecToRad * numerics.Horner(t,
		0,
		2304.250+1.396*bigT,
		1.093,
		0.018,
	)
	theta := arcsecToRad * numerics.Horner(t,
		0,
		2004.682-0.853*bigT,
		-0.426,
		-0.042,
	)
	return numerics.Multiply3(Rz(-z), numerics.Multiply3(Ry(theta), Rz(-zeta)))
}

// Obliquity1980 returns the IAU 1980 mean obliquity of the ecliptic,
// in radians, for Julian centuries t from J2000.0 TT.
func Obliquity1980(t float64) float64 {
	arcsec := numerics.Horner(t, 84381.448, -46.8150, -0.00059, 0.001813)
	return arcsec * arcsecToRad
}

// Obliquity2000 returns the IAU 2006 mean obliquity of the ecliptic,
// in radians, for Julian centuries t from J2000.0 TT.
func Obliquity2000(t float64) float64 {
	arcsec := numerics.Horner(t, 84381.406, -46.836769, -0.0001831, 0.00200340)
	return arcsec * arcsecToRad
}

// EclipticToEquatorial returns the matrix rotating ecliptic Cartesian
// coordinates to equatorial, about the x axis by the mean obliquity.
func EclipticToEquatorial(obliquity float64) numerics.Matrix3 {
	return Rx(-obliquity)
}

// EquatorialToEcliptic is the inverse of EclipticToEquatorial.
func EquatorialToEcliptic(obliquity float64) numerics.Matrix3 {
	return Rx(obliquity)
}

// Rx is the elementary right-handed rotation matrix about the x axis.
func Rx(angle float64) numerics.Matrix3 {
	s, c := math.Sincos(angle)
	return numerics.Matrix3{
		{1, 0, 0},
		{0, c, s},
		{0, -s, c},
	}
}
