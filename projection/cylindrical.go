// Copyright 2026 The astrowcs authors
// License: MIT

package projection

import (
	"fmt"
	"math"
)

// cylindrical projections all share native fiducial (φ0,θ0) = (0,0):
// the native equator runs along the plane's x axis.
func cylindricalDefaults() (float64, float64) { return 0, 0 }

// ---- CAR: plate carrée ---------------------------------------------------

// CAR is the plate carrée projection: native (φ,θ) map directly and
// linearly to plane (x,y), in degrees.
type CAR struct{}

func (CAR) Code() string                      { return "CAR" }
func (CAR) NativeDefaults() (float64, float64) { return cylindricalDefaults() }
func (CAR) Parameters() []Parameter            { return nil }
func (CAR) Inside(_, theta float64) bool       { return theta >= -math.Pi/2 && theta <= math.Pi/2 }

func (CAR) ProjectInverse(phi, theta float64) (float64, float64, error) {
	return R0 * phi, R0 * theta, nil
}

func (CAR) Project(x, y float64) (float64, float64, error) {
	return x / R0, y / R0, nil
}

// ---- CEA: cylindrical equal area -----------------------------------------

// CEA is the cylindrical equal-area projection, parametrized by the
// scale factor λ (PV2_1); λ=1 is Lambert's original.
type CEA struct {
	Lambda float64
}

func (c CEA) Code() string                      { return "CEA" }
func (CEA) NativeDefaults() (float64, float64)   { return cylindricalDefaults() }
func (c CEA) Parameters() []Parameter {
	return []Parameter{{Name: "lambda", PVKey: "PV2_1", HasMin: true, Min: 0, HasMax: true, Max: 1, Default: 1}}
}
func (CEA) Inside(_, theta float64) bool { return theta >= -math.Pi/2 && theta <= math.Pi/2 }

func (c CEA) lambda() float64 {
	if c.Lambda == 0 {
		return 1
	}
	return c.Lambda
}

func (c CEA) ProjectInverse(phi, theta float64) (float64, float64, error) {
	return R0 * phi, R0 * math.Sin(theta) / c.lambda(), nil
}

func (c CEA) Project(x, y float64) (float64, float64, error) {
	arg := y * c.lambda() / R0
	if arg < -1 || arg > 1 {
		return 0, 0, fmt.Errorf("%w: CEA argument out of range", ErrBeyondDomain)
	}
	return x / R0, math.Asin(arg), nil
}

// ---- MER: Mercator --------------------------------------------------------

// MER is the Mercator projection: conformal, with the classic
// logarithmic latitude scale.
type MER struct{}

func (MER) Code() string                      { return "MER" }
func (MER) NativeDefaults() (float64, float64) { return cylindricalDefaults() }
func (MER) Parameters() []Parameter            { return nil }
func (MER) Inside(_, theta float64) bool       { return theta > -math.Pi/2 && theta < math.Pi/2 }

func (MER) ProjectInverse(phi, theta float64) (float64, float64, error) {
	if theta <= -math.Pi/2 || theta >= math.Pi/2 {
		return 0, 0, fmt.Errorf("%w: MER undefined at the poles", ErrBeyondDomain)
	}
	x := R0 * phi
	y := R0 * math.Log(math.Tan(math.Pi/4+theta/2))
	return x, y, nil
}

func (MER) Project(x, y float64) (float64, float64, error) {
	phi := x / R0
	theta := 2*math.Atan(math.Exp(y/R0)) - math.Pi/2
	return phi, theta, nil
}

// ---- CYP: cylindrical perspective -----------------------------------------

// CYP is the cylindrical perspective projection, parametrized by the
// perspective distance μ (PV2_1, in sphere radii beyond the far side)
// and the radius of the cylinder of projection λ (PV2_2).
type CYP struct {
	Mu, Lambda float64
}

func (c CYP) Code() string                    { return "CYP" }
func (CYP) NativeDefaults() (float64, float64) { return cylindricalDefaults() }
func (c CYP) Parameters() []Parameter {
	return []Parameter{
		{Name: "mu", PVKey: "PV2_1", Default: 1},
		{Name: "lambda", PVKey: "PV2_2", Default: 1},
	}
}
func (c CYP) Inside(_, theta float64) bool { return c.Mu+math.Cos(theta) != 0 }

func (c CYP) ProjectInverse(phi, theta float64) (float64, float64, error) {
	denom := c.Mu + math.Cos(theta)
	if denom == 0 {
		return 0, 0, fmt.Errorf("%w: CYP point at infinity", ErrBeyondDomain)
	}
	x := R0 * c.Lambda * phi
	y := R0 * (c.Mu + 1) * math.Sin(theta) / denom
	return x, y, nil
}

func (c CYP) Project(x, y float64) (float64, float64, error) {
	phi := x / (R0 * c.Lambda)
	radiusAt := func(theta float64) float64 {
		denom := c.Mu + math.Cos(theta)
		if denom == 0 {
			return math.Inf(1)
		}
		return R0 * (c.Mu + 1) * math.Sin(theta) / denom
	}
	theta, err := bisectRadius(radiusAt, y, -math.Pi/2+1e-9, math.Pi/2-1e-9)
	if err != nil {
		return 0, 0, err
	}
	return phi, theta, nil
}
