// Copyright 2026 The astrowcs authors
// License: MIT

package projection

import (
	"fmt"
	"math"

	"github.com/astrowcs/wcs/numerics"
)

// conicCore holds the shared geometry (cone constant C, the native
// y-origin Y0, and the radius function R(θ)) that all four conic
// projections reduce to: x = R0·R(θ)·sin(Cφ), y = R0·(Y0 - R(θ)·cos(Cφ)).
type conicCore struct {
	Theta1, Theta2 float64 // standard parallels, radians
	C              float64
	Y0             float64
	radius         func(theta float64) float64
}

func conicDefaults(theta1, theta2 float64) (float64, float64) {
	return 0, (theta1 + theta2) / 2
}

func (c conicCore) toPlane(phi, theta float64) (float64, float64, error) {
	if c.C == 0 {
		return 0, 0, fmt.Errorf("%w: conic cone constant is zero", ErrBadParameter)
	}
	r := c.radius(theta)
	x := R0 * r * math.Sin(c.C*phi)
	y := R0 * (c.Y0 - r*math.Cos(c.C*phi))
	return x, y, nil
}

func (c conicCore) toSphere(x, y float64, thetaFromRadius func(r float64) (float64, error)) (float64, float64, error) {
	xr, yr := x/R0, y/R0
	ry := c.Y0 - yr
	r := math.Hypot(xr, ry)
	if c.Theta1+c.Theta2 < 0 {
		r = -r
	}
	theta, err := thetaFromRadius(r)
	if err != nil {
		return 0, 0, err
	}
	phi := numerics.Atan2(xr, ry) / c.C
	return phi, theta, nil
}

// ---- COP: conic perspective ------------------------------------------------

// COP is the simple (perspective) conic projection, parametrized like
// the other three conic codes by (θ_a, η) with θ1=θ_a-η, θ2=θ_a+η;
// unlike COE/COD/COO, COP additionally requires η≠0 since a perspective
// cone degenerates to a cylinder at η=0 (spec.md §4.3), enforced at
// construction in New.
type COP struct {
	Theta1, Theta2 float64
}

func (c COP) core() conicCore {
	thetaA := (c.Theta1 + c.Theta2) / 2
	cosEta := math.Cos((c.Theta2 - c.Theta1) / 2)
	cotThetaA := math.Cos(thetaA) / math.Sin(thetaA)
	return conicCore{
		Theta1: c.Theta1, Theta2: c.Theta2,
		C:  math.Sin(thetaA),
		Y0: cosEta * cotThetaA,
		radius: func(theta float64) float64 {
			return cosEta * (cotThetaA - math.Tan(theta-thetaA))
		},
	}
}

func (c COP) Code() string { return "COP" }
func (c COP) NativeDefaults() (float64, float64) { return conicDefaults(c.Theta1, c.Theta2) }
func (c COP) Parameters() []Parameter {
	return []Parameter{
		{Name: "theta_a", PVKey: "PV2_1"},
		{Name: "eta", PVKey: "PV2_2"},
	}
}
func (c COP) Inside(_, theta float64) bool { return theta > -math.Pi/2 && theta < math.Pi/2 }

func (c COP) ProjectInverse(phi, theta float64) (float64, float64, error) {
	return c.core().toPlane(phi, theta)
}

func (c COP) Project(x, y float64) (float64, float64, error) {
	core := c.core()
	thetaA := (c.Theta1 + c.Theta2) / 2
	cosEta := math.Cos((c.Theta2 - c.Theta1) / 2)
	return core.toSphere(x, y, func(r float64) (float64, error) {
		return thetaA + math.Atan(math.Cos(thetaA)/math.Sin(thetaA)-r/cosEta), nil
	})
}

// ---- COE: Albers equal-area conic ------------------------------------------

// COE is the Albers equal-area conic projection with standard
// parallels θ1,θ2, which New decodes from PV2_1=θ_a and PV2_2=η as
// θ_a∓η — spec.md §8 scenario ii.
type COE struct {
	Theta1, Theta2 float64
}

func (c COE) core() conicCore {
	s1, s2 := math.Sin(c.Theta1), math.Sin(c.Theta2)
	cc := (s1 + s2) / 2
	thetaA := (c.Theta1 + c.Theta2) / 2
	inner := func(theta float64) float64 {
		return 1 + s1*s2 - (s1+s2)*math.Sin(theta)
	}
	return conicCore{
		Theta1: c.Theta1, Theta2: c.Theta2,
		C:  cc,
		Y0: math.Sqrt(math.Max(0, inner(thetaA))) / cc,
		radius: func(theta float64) float64 {
			return math.Sqrt(math.Max(0, inner(theta))) / cc
		},
	}
}

func (c COE) Code() string { return "COE" }
func (c COE) NativeDefaults() (float64, float64) { return conicDefaults(c.Theta1, c.Theta2) }
func (c COE) Parameters() []Parameter {
	return []Parameter{
		{Name: "theta_a", PVKey: "PV2_1"},
		{Name: "eta", PVKey: "PV2_2"},
	}
}
func (c COE) Inside(_, theta float64) bool { return theta >= -math.Pi/2 && theta <= math.Pi/2 }

func (c COE) ProjectInverse(phi, theta float64) (float64, float64, error) {
	return c.core().toPlane(phi, theta)
}

func (c COE) Project(x, y float64) (float64, float64, error) {
	core := c.core()
	s1, s2 := math.Sin(c.Theta1), math.Sin(c.Theta2)
	return core.toSphere(x, y, func(r float64) (float64, error) {
		arg := (1 + s1*s2 - (core.C*r)*(core.C*r)) / (s1 + s2)
		return numerics.Asin(arg)
	})
}

// ---- COD: equidistant conic -------------------------------------------------

// COD is the equidistant conic projection with standard parallels
// θ1,θ2, which New decodes from PV2_1=θ_a and PV2_2=η as θ_a∓η.
type COD struct {
	Theta1, Theta2 float64
}

func (c COD) core() conicCore {
	thetaA := (c.Theta1 + c.Theta2) / 2
	var cc float64
	if c.Theta1 == c.Theta2 {
		cc = math.Sin(c.Theta1)
	} else {
		cc = (math.Cos(c.Theta1) - math.Cos(c.Theta2)) / (c.Theta2 - c.Theta1)
	}
	base := math.Cos(c.Theta1)/cc + c.Theta1
	return conicCore{
		Theta1: c.Theta1, Theta2: c.Theta2,
		C:  cc,
		Y0: base - thetaA,
		radius: func(theta float64) float64 {
			return base - theta
		},
	}
}

func (c COD) Code() string { return "COD" }
func (c COD) NativeDefaults() (float64, float64) { return conicDefaults(c.Theta1, c.Theta2) }
func (c COD) Parameters() []Parameter {
	return []Parameter{
		{Name: "theta_a", PVKey: "PV2_1"},
		{Name: "eta", PVKey: "PV2_2"},
	}
}
func (c COD) Inside(_, theta float64) bool { return theta >= -math.Pi/2 && theta <= math.Pi/2 }

func (c COD) ProjectInverse(phi, theta float64) (float64, float64, error) {
	return c.core().toPlane(phi, theta)
}

func (c COD) Project(x, y float64) (float64, float64, error) {
	core := c.core()
	thetaA := (c.Theta1 + c.Theta2) / 2
	base := core.Y0 + thetaA
	return core.toSphere(x, y, func(r float64) (float64, error) {
		return base - r, nil
	})
}

// ---- COO: Lambert conformal conic -------------------------------------------

// COO is the Lambert conformal conic projection with standard
// parallels θ1,θ2, which New decodes from PV2_1=θ_a and PV2_2=η as
// θ_a∓η.
type COO struct {
	Theta1, Theta2 float64
}

func (c COO) core() conicCore {
	thetaA := (c.Theta1 + c.Theta2) / 2
	var cc float64
	if c.Theta1 == c.Theta2 {
		cc = math.Sin(c.Theta1)
	} else {
		cc = math.Log(math.Cos(c.Theta1)/math.Cos(c.Theta2)) /
			math.Log(math.Tan(math.Pi/4-c.Theta1/2)/math.Tan(math.Pi/4-c.Theta2/2))
	}
	psi := math.Cos(c.Theta1) / (cc * math.Pow(math.Tan(math.Pi/4-c.Theta1/2), cc))
	return conicCore{
		Theta1: c.Theta1, Theta2: c.Theta2,
		C:  cc,
		Y0: psi * math.Pow(math.Tan(math.Pi/4-thetaA/2), cc),
		radius: func(theta float64) float64 {
			return psi * math.Pow(math.Tan(math.Pi/4-theta/2), cc)
		},
	}
}

func (c COO) Code() string { return "COO" }
func (c COO) NativeDefaults() (float64, float64) { return conicDefaults(c.Theta1, c.Theta2) }
func (c COO) Parameters() []Parameter {
	return []Parameter{
		{Name: "theta_a", PVKey: "PV2_1"},
		{Name: "eta", PVKey: "PV2_2"},
	}
}
func (c COO) Inside(_, theta float64) bool { return theta > -math.Pi/2 && theta < math.Pi/2 }

func (c COO) ProjectInverse(phi, theta float64) (float64, float64, error) {
	return c.core().toPlane(phi, theta)
}

func (c COO) Project(x, y float64) (float64, float64, error) {
	core := c.core()
	thetaA := (c.Theta1 + c.Theta2) / 2
	psi := core.Y0 / math.Pow(math.Tan(math.Pi/4-thetaA/2), core.C)
	return core.toSphere(x, y, func(r float64) (float64, error) {
		if r <= 0 || psi == 0 {
			return math.Pi / 2, nil
		}
		return math.Pi/2 - 2*math.Atan(math.Pow(r/psi, 1/core.C)), nil
	})
}
