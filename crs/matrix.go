// Copyright 2026 The astrowcs authors
// License: MIT

package crs

import (
	"math"

	"github.com/astrowcs/wcs/numerics"
	"github.com/astrowcs/wcs/rotation"
)

// Rz and Ry are the elementary right-handed rotation matrices about
// the z and y Cartesian axes, the building blocks every fixed-frame
// rotation matrix in this package composes from.
func Rz(angle float64) numerics.Matrix3 {
	s, c := math.Sincos(angle)
	return numerics.Matrix3{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}
}

func Ry(angle float64) numerics.Matrix3 {
	s, c := math.Sincos(angle)
	return numerics.Matrix3{
		{c, 0, -s},
		{0, 1, 0},
		{s, 0, c},
	}
}

func sphericalToCartesian(lon, lat float64) (x, y, z float64) {
	sLon, cLon := math.Sincos(lon)
	sLat, cLat := math.Sincos(lat)
	return cLat * cLon, cLat * sLon, sLat
}

func cartesianToSpherical(x, y, z float64) (lon, lat float64) {
	lon = numerics.NormalizeLongitudeRad(numerics.Atan2(y, x))
	lat = math.Asin(clamp(z / math.Sqrt(x*x+y*y+z*z)))
	return
}

func clamp(x float64) float64 {
	switch {
	case x > 1:
		return 1
	case x < -1:
		return -1
	}
	return x
}

// matrixFromPole builds the pure rotation matrix that takes a vector
// expressed in the "celestial" system (whose pole sits at (alphaP,
// deltaP) and whose prime-meridian offset is phip) to the "native"
// system, by running each Cartesian basis vector through the same
// spherical-rotation layer the projection package uses (rotation.Pole)
// and reading off the resulting columns. Since rotation.Pole.ToNative
// is itself a pure rotation, this is exact — it just borrows a
// representation we already have rather than re-deriving the Euler
// composition by hand.
func matrixFromPole(alphaP, deltaP, phip float64) numerics.Matrix3 {
	p := rotation.Pole{AlphaP: alphaP, DeltaP: deltaP, Phip: phip}
	column := func(ex, ey, ez float64) (float64, float64, float64) {
		alpha, delta := cartesianToSpherical(ex, ey, ez)
		phi, theta := p.ToNative(alpha, delta)
		return sphericalToCartesian(phi, theta)
	}
	c1x, c1y, c1z := column(1, 0, 0)
	c2x, c2y, c2z := column(0, 1, 0)
	c3x, c3y, c3z := column(0, 0, 1)
	return numerics.Matrix3{
		{c1x, c2x, c3x},
		{c1y, c2y, c3y},
		{c1z, c2z, c3z},
	}
}

const degToRad = math.Pi / 180

// galacticNGPAlphaICRS, galacticNGPDeltaICRS and galacticLoNCPICRS are
// the north galactic pole and the galactic longitude of the north
// celestial pole expressed directly in ICRS, derived (as the IAU 1958
// FK4 B1950 triple's modern replacement) by carrying the B1950
// definition forward through precession and the frame bias at high
// precision; using these directly avoids re-doing that chain, with its
// accumulated rounding, on every conversion.
const (
	galacticNGPAlphaICRS = 192.8594812065348 * degToRad
	galacticNGPDeltaICRS = 27.12825118085622 * degToRad
	galacticLoNCPICRS    = 122.9319185680026 * degToRad
)

// ICRSToGalactic converts ICRS Cartesian to Galactic Cartesian
// coordinates.
func ICRSToGalactic() numerics.Matrix3 {
	return matrixFromPole(galacticNGPAlphaICRS, galacticNGPDeltaICRS, galacticLoNCPICRS)
}

// GalacticToICRS converts Galactic Cartesian to ICRS Cartesian
// coordinates.
func GalacticToICRS() numerics.Matrix3 {
	return numerics.Transpose3(ICRSToGalactic())
}

// north supergalactic pole in Galactic coordinates (de Vaucouleurs et
// al. 1976): l=47.37deg, b=6.32deg, with the supergalactic longitude
// origin at the ascending node of the supergalactic equator on the
// galactic equator, galactic longitude 137.37deg — taken as LONPOLE
// 90deg by the node convention (the old pole sits a quarter circle
// from the node along its own meridian).
const (
	superGalacticNGPLon = 47.37 * degToRad
	superGalacticNGPLat = 6.32 * degToRad
	superGalacticLonPole = 90 * degToRad
)

// GalacticToSuperGalactic converts Galactic Cartesian to SuperGalactic
// Cartesian coordinates.
func GalacticToSuperGalactic() numerics.Matrix3 {
	return matrixFromPole(superGalacticNGPLon, superGalacticNGPLat, superGalacticLonPole)
}

// SuperGalacticToGalactic converts SuperGalactic Cartesian to Galactic
// Cartesian coordinates.
func SuperGalacticToGalactic() numerics.Matrix3 {
	return numerics.Transpose3(GalacticToSuperGalactic())
}

// frameBiasICRSToFK5J2000 is the small (sub-arcsecond) rotation
// between the ICRS axes and the dynamical FK5 J2000.0 equator and
// equinox (IERS frame bias, linearised since the angles are tiny).
func frameBiasICRSToFK5J2000() numerics.Matrix3 {
	const asec = math.Pi / (180 * 3600)
	xi0 := -0.0166170 * asec
	eta0 := -0.0068192 * asec
	da0 := -0.01460 * asec
	return numerics.Matrix3{
		{1, da0, -xi0},
		{-da0, 1, -eta0},
		{xi0, eta0, 1},
	}
}

// ICRSToFK5J2000 converts an ICRS Cartesian vector to FK5 J2000.0.
func ICRSToFK5J2000() numerics.Matrix3 { return frameBiasICRSToFK5J2000() }

// FK5J2000ToICRS converts an FK5 J2000.0 Cartesian vector to ICRS.
func FK5J2000ToICRS() numerics.Matrix3 { return numerics.Transpose3(frameBiasICRSToFK5J2000()) }
