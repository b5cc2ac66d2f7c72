// Copyright 2026 The astrowcs authors
// License: MIT

package projection

import (
	"fmt"
	"math"

	"github.com/astrowcs/wcs/numerics"
)

// ---- BON: Bonne's projection ------------------------------------------------

// BON is Bonne's pseudoconic equal-area projection, parametrized by
// the standard parallel θ1 (PV2_1); θ1=0 degenerates to SFL.
type BON struct {
	Theta1 float64
}

func (b BON) Code() string { return "BON" }
func (b BON) NativeDefaults() (float64, float64) { return 0, b.Theta1 }
func (b BON) Parameters() []Parameter {
	return []Parameter{{Name: "theta1", PVKey: "PV2_1"}}
}
func (b BON) Inside(_, theta float64) bool { return theta >= -math.Pi/2 && theta <= math.Pi/2 }

func (b BON) radiusY0() (radius func(float64) float64, y0 float64) {
	if b.Theta1 == 0 {
		return func(theta float64) float64 { return math.Pi/2 - theta }, math.Pi / 2
	}
	cotTheta1 := math.Cos(b.Theta1) / math.Sin(b.Theta1)
	y0 = cotTheta1 + b.Theta1
	return func(theta float64) float64 { return y0 - theta }, y0
}

func (b BON) ProjectInverse(phi, theta float64) (float64, float64, error) {
	if b.Theta1 == 0 {
		return SFL{}.ProjectInverse(phi, theta)
	}
	radius, y0 := b.radiusY0()
	r := radius(theta)
	cTheta := math.Cos(theta)
	if r == 0 || cTheta == 0 {
		return 0, R0 * (y0 - r), nil
	}
	a := phi * cTheta / r
	x := R0 * r * math.Sin(a)
	y := R0 * (y0 - r*math.Cos(a))
	return x, y, nil
}

func (b BON) Project(x, y float64) (float64, float64, error) {
	if b.Theta1 == 0 {
		return SFL{}.Project(x, y)
	}
	_, y0 := b.radiusY0()
	xr, yr := x/R0, y/R0
	ryr := y0 - yr
	r := math.Hypot(xr, ryr)
	sign := 1.0
	if b.Theta1 < 0 {
		sign = -1
	}
	r *= sign
	theta := y0 - r
	a := numerics.Atan2(xr, ryr)
	cTheta := math.Cos(theta)
	if r == 0 || cTheta == 0 {
		return 0, theta, nil
	}
	phi := a * r / cTheta
	return phi, theta, nil
}

// ---- PCO: ordinary polyconic -------------------------------------------------

// PCO is the ordinary (American) polyconic projection.
type PCO struct{}

func (PCO) Code() string                      { return "PCO" }
func (PCO) NativeDefaults() (float64, float64) { return 0, 0 }
func (PCO) Parameters() []Parameter            { return nil }
func (PCO) Inside(_, theta float64) bool       { return theta >= -math.Pi/2 && theta <= math.Pi/2 }

func (PCO) ProjectInverse(phi, theta float64) (float64, float64, error) {
	if theta == 0 {
		return R0 * phi, 0, nil
	}
	sTheta, cTheta := math.Sincos(theta)
	cotTheta := cTheta / sTheta
	psi := phi * sTheta
	x := R0 * cotTheta * math.Sin(psi)
	y := R0 * (theta + cotTheta*(1-math.Cos(psi)))
	return x, y, nil
}

// Project inverts PCO by bisecting on θ the residual obtained by
// eliminating ψ from the pair of forward equations (the classical
// "no closed form" polyconic inverse; wcslib solves the same residual
// with Newton's method, this module standardises on bisection per
// spec.md §9).
func (PCO) Project(x, y float64) (float64, float64, error) {
	if y == 0 {
		return x / R0, 0, nil
	}
	xr, yr := x/R0, y/R0
	residual := func(theta float64) float64 {
		t := math.Tan(theta)
		sinPsi := xr * t
		cosPsi := 1 - (yr-theta)*t
		return sinPsi*sinPsi + cosPsi*cosPsi - 1
	}
	var lo, hi float64
	if yr > 0 {
		lo, hi = 1e-8, math.Pi/2-1e-8
	} else {
		lo, hi = -math.Pi/2+1e-8, -1e-8
	}
	if residual(lo)*residual(hi) > 0 {
		return 0, 0, fmt.Errorf("%w: PCO residual does not bracket a root", ErrBeyondDomain)
	}
	theta, err := numerics.Bisect(residual, lo, hi, 1e-13, numerics.DefaultMaxIterations)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrBeyondDomain, err)
	}
	t := math.Tan(theta)
	sinPsi := xr * t
	cosPsi := 1 - (yr-theta)*t
	psi := numerics.Atan2(sinPsi, cosPsi)
	phi := psi / math.Sin(theta)
	return phi, theta, nil
}
