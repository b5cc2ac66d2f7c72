// Copyright 2026 The astrowcs authors
// License: MIT

package projection

import (
	"fmt"
	"math"

	"github.com/astrowcs/wcs/numerics"
)

// pseudocylindrical projections all share native fiducial (φ0,θ0) =
// (0,0), the same as the cylindrical family.
func pseudocylindricalDefaults() (float64, float64) { return 0, 0 }

// ---- AIT: Hammer-Aitoff ---------------------------------------------------

// AIT is the Hammer-Aitoff equal-area projection.
type AIT struct{}

func (AIT) Code() string                      { return "AIT" }
func (AIT) NativeDefaults() (float64, float64) { return pseudocylindricalDefaults() }
func (AIT) Parameters() []Parameter            { return nil }
func (AIT) Inside(_, theta float64) bool       { return theta >= -math.Pi/2 && theta <= math.Pi/2 }

func (AIT) ProjectInverse(phi, theta float64) (float64, float64, error) {
	sTheta, cTheta := math.Sincos(theta)
	sHalfPhi, cHalfPhi := math.Sincos(phi / 2)
	gamma := math.Sqrt(1 + cTheta*cHalfPhi)
	if gamma == 0 {
		return 0, 0, fmt.Errorf("%w: AIT singular at antipode", ErrBeyondDomain)
	}
	x := 2 * R0 * math.Sqrt2 * cTheta * sHalfPhi / gamma
	y := R0 * math.Sqrt2 * sTheta / gamma
	return x, y, nil
}

// Project inverts AIT in closed form through the standard
// z = sqrt(1 - (x/4R0)^2 - (y/2R0)^2) substitution (no iteration or
// root-finder needed).
func (AIT) Project(x, y float64) (float64, float64, error) {
	xr := x / R0
	yr := y / R0
	z2 := 1 - (xr/4)*(xr/4) - (yr/2)*(yr/2)
	if z2 < 0 {
		return 0, 0, fmt.Errorf("%w: AIT point outside ellipse", ErrBeyondDomain)
	}
	z := math.Sqrt(z2)
	theta, err := numerics.Asin(z * yr)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrBeyondDomain, err)
	}
	phi := 2 * math.Atan2(z*xr/2, 2*z*z-1)
	return phi, theta, nil
}

// ---- MOL: Mollweide --------------------------------------------------------

// MOL is the Mollweide equal-area projection; its forward map needs
// an auxiliary angle γ solved from Kepler's equation-shaped relation
// 2γ + sin(2γ) = π sinθ, which has no closed form.
type MOL struct{}

func (MOL) Code() string                      { return "MOL" }
func (MOL) NativeDefaults() (float64, float64) { return pseudocylindricalDefaults() }
func (MOL) Parameters() []Parameter            { return nil }
func (MOL) Inside(_, theta float64) bool       { return theta >= -math.Pi/2 && theta <= math.Pi/2 }

func (MOL) ProjectInverse(phi, theta float64) (float64, float64, error) {
	target := math.Pi * math.Sin(theta)
	gamma, err := numerics.Bisect(func(g float64) float64 {
		return 2*g + math.Sin(2*g) - target
	}, -math.Pi/2, math.Pi/2, 1e-13, numerics.DefaultMaxIterations)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrBeyondDomain, err)
	}
	x := 2 * math.Sqrt2 / math.Pi * R0 * phi * math.Cos(gamma)
	y := math.Sqrt2 * R0 * math.Sin(gamma)
	return x, y, nil
}

func (MOL) Project(x, y float64) (float64, float64, error) {
	arg := y / (math.Sqrt2 * R0)
	if arg < -1 || arg > 1 {
		return 0, 0, fmt.Errorf("%w: MOL y out of range", ErrBeyondDomain)
	}
	gamma := math.Asin(arg)
	theta, err := numerics.Asin((2*gamma + math.Sin(2*gamma)) / math.Pi)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrBeyondDomain, err)
	}
	cGamma := math.Cos(gamma)
	if cGamma == 0 {
		return 0, theta, nil
	}
	phi := math.Pi * x / (2 * math.Sqrt2 * R0 * cGamma)
	return phi, theta, nil
}

// ---- PAR: parabolic ---------------------------------------------------------

// PAR is the parabolic pseudocylindrical equal-area projection.
type PAR struct{}

func (PAR) Code() string                      { return "PAR" }
func (PAR) NativeDefaults() (float64, float64) { return pseudocylindricalDefaults() }
func (PAR) Parameters() []Parameter            { return nil }
func (PAR) Inside(_, theta float64) bool       { return theta >= -math.Pi/2 && theta <= math.Pi/2 }

func (PAR) ProjectInverse(phi, theta float64) (float64, float64, error) {
	t3 := theta / 3
	x := R0 * phi * (2*math.Cos(2*t3) - 1)
	y := R0 * math.Pi * math.Sin(t3)
	return x, y, nil
}

func (PAR) Project(x, y float64) (float64, float64, error) {
	arg := y / (R0 * math.Pi)
	if arg < -1 || arg > 1 {
		return 0, 0, fmt.Errorf("%w: PAR y out of range", ErrBeyondDomain)
	}
	t3 := math.Asin(arg)
	theta := 3 * t3
	denom := 2*math.Cos(2*t3) - 1
	if denom == 0 {
		return 0, theta, nil
	}
	phi := x / (R0 * denom)
	return phi, theta, nil
}

// ---- SFL: Sanson-Flamsteed --------------------------------------------------

// SFL is the Sanson-Flamsteed (sinusoidal) equal-area projection.
type SFL struct{}

func (SFL) Code() string                      { return "SFL" }
func (SFL) NativeDefaults() (float64, float64) { return pseudocylindricalDefaults() }
func (SFL) Parameters() []Parameter            { return nil }
func (SFL) Inside(_, theta float64) bool       { return theta >= -math.Pi/2 && theta <= math.Pi/2 }

func (SFL) ProjectInverse(phi, theta float64) (float64, float64, error) {
	x := R0 * phi * math.Cos(theta)
	y := R0 * theta
	return x, y, nil
}

func (SFL) Project(x, y float64) (float64, float64, error) {
	theta := y / R0
	cTheta := math.Cos(theta)
	if cTheta == 0 {
		return 0, theta, nil
	}
	phi := x / (R0 * cTheta)
	return phi, theta, nil
}
