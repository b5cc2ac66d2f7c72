// Copyright 2026 The astrowcs authors
// License: MIT

// Package rotation implements the spherical-rotation layer shared by
// every projection (spec.md §4.3): given a fiducial point (α0,δ0), a
// native pole position (φp,θp), and the native longitude/latitude
// (φ,θ) that a projection produces, it derives the celestial pole
// (αp,δp) and rotates between native and celestial spherical
// coordinates.
//
// The trigonometric shape of these functions (paired Sincos calls,
// Atan2 composition, asin/acos for the final coordinate) follows
// github.com/soniakeys/meeus's coord package, generalized from fixed
// equatorial/ecliptic/galactic pairs to an arbitrary native pole.
package rotation

import (
	"errors"
	"fmt"
	"math"

	"github.com/astrowcs/wcs/numerics"
)

// ErrNoValidThetap is returned when neither root of the two-valued δp
// equation lies in [-π/2,π/2] (spec.md §4.3).
var ErrNoValidThetap = errors.New("rotation: no valid solution for thetap")

// Pole holds the derived quantities of the spherical-rotation layer.
// It is immutable once built by NewPole.
type Pole struct {
	Phi0, Theta0   float64 // native fiducial point, radians
	Phip, Thetap   float64 // native pole (LONPOLE/LATPOLE), radians
	Alpha0, Delta0 float64 // celestial fiducial point, radians
	AlphaP, DeltaP float64 // derived celestial pole, radians
}

// DefaultPhip returns the default LONPOLE value (spec.md §4.3) used
// when the header does not specify one.
func DefaultPhip(delta0, theta0 float64) float64 {
	if delta0 >= theta0 {
		return 0
	}
	return math.Pi
}

// NewPole derives the celestial pole (αp,δp) for the given fiducial
// point, native defaults, and LONPOLE/LATPOLE (phip/latpoleHint).
// latpoleHint selects between the two roots of the δp equation when
// both are valid; pass math.NaN() if LATPOLE was not supplied, which
// picks the root closest to +π/2 (the conventional default).
func NewPole(alpha0, delta0, phi0, theta0, phip, latpoleHint float64) (Pole, error) {
	p := Pole{Phi0: phi0, Theta0: theta0, Phip: phip, Alpha0: alpha0, Delta0: delta0}

	if phi0 == 0 && theta0 == math.Pi/2 {
		p.AlphaP, p.DeltaP, p.Thetap = alpha0, delta0, delta0
		return p, nil
	}

	sTheta0, cTheta0 := math.Sincos(theta0)
	dPhi := phip - phi0
	sDPhi, cDPhi := math.Sincos(dPhi)

	denom := 1 - cTheta0*cTheta0*sDPhi*sDPhi
	base := numerics.Atan2(sTheta0, cTheta0*cDPhi)

	var acosArg float64
	if denom <= 0 {
		acosArg = 0
	} else {
		acosArg = math.Sin(delta0) / math.Sqrt(denom)
	}
	delta, err := numerics.Acos(acosArg)
	if err != nil {
		return Pole{}, fmt.Errorf("rotation: thetap equation: %w", err)
	}

	root1 := base + delta
	root2 := base - delta
	valid1 := root1 >= -math.Pi/2 && root1 <= math.Pi/2
	valid2 := root2 >= -math.Pi/2 && root2 <= math.Pi/2

	var thetap float64
	switch {
	case valid1 && valid2:
		if math.IsNaN(latpoleHint) {
			if math.Abs(root1-math.Pi/2) <= math.Abs(root2-math.Pi/2) {
				thetap = root1
			} else {
				thetap = root2
			}
		} else if math.Abs(root1-latpoleHint) <= math.Abs(root2-latpoleHint) {
			thetap = root1
		} else {
			thetap = root2
		}
	case valid1:
		thetap = root1
	case valid2:
		thetap = root2
	default:
		return Pole{}, ErrNoValidThetap
	}
	p.Thetap = thetap
	p.DeltaP = thetap

	sDeltaP, cDeltaP := math.Sincos(thetap)
	sDelta0 := math.Sin(delta0)
	y := -cTheta0 * sDPhi * cDeltaP
	x := sTheta0 - sDeltaP*sDelta0
	p.AlphaP = alpha0 + numerics.Atan2(y, x)
	return p, nil
}

// ToCelestial rotates a native (φ,θ) pair to celestial (α,δ), both in
// radians. α is normalised to [0,2π).
func (p Pole) ToCelestial(phi, theta float64) (alpha, delta float64) {
	switch {
	case p.DeltaP >= math.Pi/2-1e-15:
		alpha = p.AlphaP + phi - p.Phip - math.Pi
		delta = theta
	case p.DeltaP <= -math.Pi/2+1e-15:
		alpha = p.AlphaP - phi + p.Phip
		delta = -theta
	default:
		sTheta, cTheta := math.Sincos(theta)
		sDeltaP, cDeltaP := math.Sincos(p.DeltaP)
		dPhi := phi - p.Phip
		sDPhi, cDPhi := math.Sincos(dPhi)
		delta = math.Asin(clamp(sDeltaP*sTheta + cDeltaP*cTheta*cDPhi))
		alpha = p.AlphaP + numerics.Atan2(-cTheta*sDPhi, sTheta*cDeltaP-cTheta*sDeltaP*cDPhi)
	}
	alpha = numerics.NormalizeLongitudeRad(alpha)
	return
}

// ToNative rotates a celestial (α,δ) pair to native (φ,θ), both in
// radians. φ is normalised to (-π,π].
func (p Pole) ToNative(alpha, delta float64) (phi, theta float64) {
	switch {
	case p.DeltaP >= math.Pi/2-1e-15:
		phi = alpha - p.AlphaP + p.Phip + math.Pi
		theta = delta
	case p.DeltaP <= -math.Pi/2+1e-15:
		phi = p.Phip - (alpha - p.AlphaP)
		theta = -delta
	default:
		sDelta, cDelta := math.Sincos(delta)
		sDeltaP, cDeltaP := math.Sincos(p.DeltaP)
		dAlpha := alpha - p.AlphaP
		sDAlpha, cDAlpha := math.Sincos(dAlpha)
		theta = math.Asin(clamp(sDeltaP*sDelta + cDeltaP*cDelta*cDAlpha))
		phi = p.Phip + numerics.Atan2(-cDelta*sDAlpha, sDelta*cDeltaP-cDelta*sDeltaP*cDAlpha)
	}
	phi = numerics.PhiRange(phi)
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
