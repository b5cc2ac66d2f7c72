// Copyright 2026 The astrowcs authors
// License: MIT

package projection

import (
	"fmt"
	"math"

	"github.com/astrowcs/wcs/numerics"
)

// zenithal projections all share native fiducial (φ0,θ0) = (0, π/2):
// the native pole sits at the centre of the plane.
func zenithalDefaults() (float64, float64) { return 0, math.Pi / 2 }

// ---- TAN: gnomonic ----------------------------------------------------

// TAN is the gnomonic projection: great circles through the native
// pole map to straight lines, the classic "tangent plane" astrometric
// projection.
type TAN struct{}

func (TAN) Code() string                       { return "TAN" }
func (TAN) NativeDefaults() (float64, float64)  { return zenithalDefaults() }
func (TAN) Parameters() []Parameter             { return nil }
func (TAN) Inside(_ float64, theta float64) bool { return theta > 0 }

func (TAN) ProjectInverse(phi, theta float64) (float64, float64, error) {
	if theta <= 0 {
		return 0, 0, fmt.Errorf("%w: TAN requires theta > 0", ErrBeyondDomain)
	}
	r := R0 * math.Cos(theta) / math.Sin(theta)
	x, y := fromPolar(r, phi)
	return x, y, nil
}

func (TAN) Project(x, y float64) (float64, float64, error) {
	r, phi := toPolar(x, y)
	theta := numerics.Atan2(R0, r)
	return phi, theta, nil
}

// ---- STG: stereographic -----------------------------------------------

// STG is the stereographic projection: conformal, maps circles to
// circles.
type STG struct{}

func (STG) Code() string                       { return "STG" }
func (STG) NativeDefaults() (float64, float64)  { return zenithalDefaults() }
func (STG) Parameters() []Parameter             { return nil }
func (STG) Inside(_ float64, theta float64) bool { return theta > -math.Pi/2 }

func (STG) ProjectInverse(phi, theta float64) (float64, float64, error) {
	if theta <= -math.Pi/2 {
		return 0, 0, fmt.Errorf("%w: STG requires theta > -90deg", ErrBeyondDomain)
	}
	r := 2 * R0 * math.Cos(theta) / (1 + math.Sin(theta))
	x, y := fromPolar(r, phi)
	return x, y, nil
}

func (STG) Project(x, y float64) (float64, float64, error) {
	r, phi := toPolar(x, y)
	theta := math.Pi/2 - 2*math.Atan(r/(2*R0))
	return phi, theta, nil
}

// ---- SIN: orthographic / slant orthographic ----------------------------

// SIN is the (generalized, slant) orthographic projection with
// obliqueness parameters ξ,η (PV2_1, PV2_2). ξ=η=0 is the classical
// orthographic projection.
type SIN struct {
	Xi, Eta float64
}

func (s SIN) Code() string                      { return "SIN" }
func (SIN) NativeDefaults() (float64, float64)   { return zenithalDefaults() }
func (s SIN) Parameters() []Parameter {
	return []Parameter{
		{Name: "xi", PVKey: "PV2_1", Default: 0},
		{Name: "eta", PVKey: "PV2_2", Default: 0},
	}
}
func (s SIN) Inside(_ float64, theta float64) bool { return theta >= -1e-9 || s.Xi != 0 || s.Eta != 0 }

func (s SIN) ProjectInverse(phi, theta float64) (float64, float64, error) {
	sTheta, cTheta := math.Sincos(theta)
	sPhi, cPhi := math.Sincos(phi)
	if s.Xi == 0 && s.Eta == 0 {
		if theta < 0 {
			return 0, 0, fmt.Errorf("%w: SIN requires theta >= 0", ErrBeyondDomain)
		}
		x := R0 * cTheta * sPhi
		y := -R0 * cTheta * cPhi
		return x, y, nil
	}
	x := R0 * (cTheta*sPhi + s.Xi*(1-sTheta))
	y := -R0 * (cTheta*cPhi - s.Eta*(1-sTheta))
	return x, y, nil
}

// Project inverts the generalized SIN mapping. For ξ=η=0 this is a
// closed form; otherwise it uses a short fixed-point iteration
// (alternately recovering φ from the ξ/η-adjusted plane offset and
// θ from the arccosine of that offset's length) since the general
// system has no simple closed-form inverse.
func (s SIN) Project(x, y float64) (float64, float64, error) {
	if s.Xi == 0 && s.Eta == 0 {
		r, phi := toPolar(x, y)
		if r > R0+1e-9 {
			return 0, 0, fmt.Errorf("%w: SIN radius exceeds R0", ErrBeyondDomain)
		}
		arg := r / R0
		if arg > 1 {
			arg = 1
		}
		theta, err := numerics.Acos(arg)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrBeyondDomain, err)
		}
		return phi, theta, nil
	}

	phi := numerics.Atan2(x, -y)
	theta := 0.0
	for i := 0; i < 24; i++ {
		xAdj := x/R0 - s.Xi*(1-math.Sin(theta))
		yAdj := -(y/R0) - s.Eta*(1-math.Sin(theta))
		phi = numerics.Atan2(xAdj, -yAdj)
		cosTheta := math.Hypot(xAdj, yAdj)
		if cosTheta > 1 {
			cosTheta = 1
		}
		newTheta, err := numerics.Acos(cosTheta)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrBeyondDomain, err)
		}
		if math.Abs(newTheta-theta) < 1e-14 {
			theta = newTheta
			break
		}
		theta = newTheta
	}
	return phi, theta, nil
}

// ---- ARC: zenithal equidistant -----------------------------------------

// ARC is the zenithal equidistant projection: radial distance from
// the native pole equals angular distance, exactly.
type ARC struct{}

func (ARC) Code() string                      { return "ARC" }
func (ARC) NativeDefaults() (float64, float64) { return zenithalDefaults() }
func (ARC) Parameters() []Parameter            { return nil }
func (ARC) Inside(_ float64, theta float64) bool { return theta > -math.Pi/2 }

func (ARC) ProjectInverse(phi, theta float64) (float64, float64, error) {
	r := R0 * (math.Pi/2 - theta)
	x, y := fromPolar(r, phi)
	return x, y, nil
}

func (ARC) Project(x, y float64) (float64, float64, error) {
	r, phi := toPolar(x, y)
	if r > R0*math.Pi {
		return 0, 0, fmt.Errorf("%w: ARC radius exceeds pi*R0", ErrBeyondDomain)
	}
	theta := math.Pi/2 - r/R0
	return phi, theta, nil
}

// ---- ZEA: zenithal equal area -------------------------------------------

// ZEA is the zenithal (Lambert azimuthal) equal-area projection.
type ZEA struct{}

func (ZEA) Code() string                      { return "ZEA" }
func (ZEA) NativeDefaults() (float64, float64) { return zenithalDefaults() }
func (ZEA) Parameters() []Parameter            { return nil }
func (ZEA) Inside(_ float64, theta float64) bool { return theta >= -math.Pi/2 }

func (ZEA) ProjectInverse(phi, theta float64) (float64, float64, error) {
	r := 2 * R0 * math.Sin(math.Pi/4-theta/2)
	x, y := fromPolar(r, phi)
	return x, y, nil
}

func (ZEA) Project(x, y float64) (float64, float64, error) {
	r, phi := toPolar(x, y)
	if r > 2*R0 {
		return 0, 0, fmt.Errorf("%w: ZEA radius exceeds 2*R0", ErrBeyondDomain)
	}
	arg := r / (2 * R0)
	theta := math.Pi/2 - 2*math.Asin(arg)
	return phi, theta, nil
}

// ---- ZPN: zenithal polynomial -------------------------------------------

// ZPN is the zenithal polynomial projection: radial distance is a
// polynomial in native co-latitude with up to 30 coefficients
// (PV2_0..PV2_29, spec.md §8 scenario iii).
type ZPN struct {
	Coeffs []float64 // Coeffs[k] is PV2_k
}

func (z ZPN) Code() string                      { return "ZPN" }
func (ZPN) NativeDefaults() (float64, float64)   { return zenithalDefaults() }
func (z ZPN) Parameters() []Parameter {
	params := make([]Parameter, len(z.Coeffs))
	for i := range z.Coeffs {
		params[i] = Parameter{Name: fmt.Sprintf("p%d", i), PVKey: fmt.Sprintf("PV2_%d", i)}
	}
	return params
}
func (ZPN) Inside(_ float64, theta float64) bool { return theta >= -math.Pi/2 && theta <= math.Pi/2 }

func (z ZPN) radius(w float64) float64 {
	return numerics.Horner(w, z.Coeffs...)
}

func (z ZPN) ProjectInverse(phi, theta float64) (float64, float64, error) {
	w := math.Pi/2 - theta
	r := z.radius(w)
	x, y := fromPolar(r, phi)
	return x, y, nil
}

func (z ZPN) Project(x, y float64) (float64, float64, error) {
	r, phi := toPolar(x, y)
	// bracket the first crossing of r in 1-degree steps, so that a
	// polynomial which turns over before π is still bisected on the
	// rising branch that contains the root.
	lo, hi := 0.0, math.Pi
	const steps = 180
	for i := 1; i <= steps; i++ {
		wi := math.Pi * float64(i) / steps
		if z.radius(wi) >= r {
			lo, hi = math.Pi*float64(i-1)/steps, wi
			break
		}
	}
	w, err := bisectRadius(z.radius, r, lo, hi)
	if err != nil {
		return 0, 0, err
	}
	theta := math.Pi/2 - w
	return phi, theta, nil
}

// ---- AIR: Airy -----------------------------------------------------------

// AIR is the Airy projection, minimizing angular distortion error
// averaged over the region from the native pole down to native
// latitude θb (PV2_1).
type AIR struct {
	ThetaB float64 // native latitude, radians; zero means "use pi/2"
}

func (a AIR) Code() string { return "AIR" }
func (AIR) NativeDefaults() (float64, float64) { return zenithalDefaults() }
func (a AIR) Parameters() []Parameter {
	return []Parameter{{Name: "thetab", PVKey: "PV2_1", Default: 90}}
}
func (AIR) Inside(_ float64, theta float64) bool { return theta > -math.Pi/2 }

func (a AIR) thetab() float64 {
	if a.ThetaB == 0 {
		return math.Pi / 2
	}
	return a.ThetaB
}

func (a AIR) radius(theta float64) float64 {
	xib := (math.Pi/2 - a.thetab()) / 2
	xi := (math.Pi/2 - theta) / 2
	if xi == 0 {
		return 0
	}
	cb := math.Cos(xib)
	term1 := math.Log(math.Cos(xi)) / math.Tan(xi)
	var term2 float64
	switch {
	case xib == 0:
		// limit of ln(cos ξb)/tan²ξb as ξb -> 0
		term2 = -0.5 * math.Tan(xi)
	case cb > 0:
		term2 = (math.Log(cb) / (math.Tan(xib) * math.Tan(xib))) * math.Tan(xi)
	}
	return -2 * R0 * (term1 + term2)
}

func (a AIR) ProjectInverse(phi, theta float64) (float64, float64, error) {
	r := a.radius(theta)
	x, y := fromPolar(r, phi)
	return x, y, nil
}

func (a AIR) Project(x, y float64) (float64, float64, error) {
	r, phi := toPolar(x, y)
	theta, err := bisectRadius(a.radius, r, -math.Pi/2+1e-9, math.Pi/2)
	if err != nil {
		return 0, 0, err
	}
	return phi, theta, nil
}

// ---- AZP: zenithal perspective ------------------------------------------

// AZP is the (slant) zenithal perspective projection: a perspective
// projection from a point at distance μ·R (PV2_1) beyond the sphere's
// far side, optionally tilted by γ (PV2_2, "gamma", radians).
type AZP struct {
	Mu    float64
	Gamma float64
}

func (a AZP) Code() string { return "AZP" }
func (AZP) NativeDefaults() (float64, float64) { return zenithalDefaults() }
func (a AZP) Parameters() []Parameter {
	return []Parameter{
		{Name: "mu", PVKey: "PV2_1", Default: 0},
		{Name: "gamma", PVKey: "PV2_2", Default: 0},
	}
}
func (a AZP) Inside(phi, theta float64) bool {
	_, d := a.denom(phi, theta)
	return d > 0
}

func (a AZP) denom(phi, theta float64) (cosTheta, d float64) {
	sTheta, cTheta := math.Sincos(theta)
	cPhi := math.Cos(phi)
	d = (a.Mu + sTheta) + cTheta*cPhi*math.Tan(a.Gamma)
	return cTheta, d
}

func (a AZP) ProjectInverse(phi, theta float64) (float64, float64, error) {
	cTheta, d := a.denom(phi, theta)
	if d <= 0 {
		return 0, 0, fmt.Errorf("%w: AZP point behind projection plane", ErrBeyondDomain)
	}
	r := R0 * (a.Mu + 1) * cTheta / d
	x, y := fromPolar(r, phi)
	return x, y, nil
}

// Project inverts AZP by noting φ = atan2(x,-y) exactly regardless of
// μ,γ (the tilt term is a common scalar factor of both x and y), then
// bisecting for θ at that fixed φ — the standard fallback for a
// projection whose inverse has no convenient closed form under tilt.
func (a AZP) Project(x, y float64) (float64, float64, error) {
	r, phi := toPolar(x, y)
	radiusAt := func(theta float64) float64 {
		cTheta, d := a.denom(phi, theta)
		if d <= 0 {
			return math.Inf(1)
		}
		return R0 * (a.Mu + 1) * cTheta / d
	}
	theta, err := bisectRadius(radiusAt, r, -math.Pi/2+1e-9, math.Pi/2-1e-9)
	if err != nil {
		return 0, 0, err
	}
	return phi, theta, nil
}

// ---- SZP: slant zenithal perspective -------------------------------------

// SZP is the generalized slant zenithal perspective projection,
// parametrized by the perspective point's native coordinates
// (μ, φc, θc = PV2_1, PV2_2, PV2_3).
type SZP struct {
	Mu, PhiC, ThetaC float64
}

func (s SZP) Code() string { return "SZP" }
func (SZP) NativeDefaults() (float64, float64) { return zenithalDefaults() }
func (s SZP) Parameters() []Parameter {
	return []Parameter{
		{Name: "mu", PVKey: "PV2_1", Default: 0},
		{Name: "phic", PVKey: "PV2_2", Default: 0},
		{Name: "thetac", PVKey: "PV2_3", Default: 90},
	}
}
// cart converts a native (φ,θ) unit vector to Cartesian form,
// consistent with this package's plane convention (x = r sinφ,
// y = -r cosφ as r -> 0 near the pole): the pole θ=π/2 maps to the
// +z axis.
func cart(phi, theta float64) (x, y, z float64) {
	sPhi, cPhi := math.Sincos(phi)
	sTheta, cTheta := math.Sincos(theta)
	return cTheta * sPhi, -cTheta * cPhi, sTheta
}

func (s SZP) perspectivePoint() (x, y, z float64) {
	ux, uy, uz := cart(s.PhiC, s.ThetaC)
	return (1 + s.Mu) * ux, (1 + s.Mu) * uy, (1 + s.Mu) * uz
}

func (s SZP) Inside(phi, theta float64) bool {
	px, py, pz := cart(phi, theta)
	ex, ey, ez := s.perspectivePoint()
	return pz-ez != 0 && (1-ez)/(pz-ez) >= 0 && !(px == ex && py == ey && pz == ez)
}

// ProjectInverse projects the native unit vector at (φ,θ) onto the
// tangent plane at the native pole (z=1) from a perspective point
// displaced (1+μ) sphere-radii from the origin towards native
// coordinates (φc,θc) — the perspective-from-a-point construction
// that SZP generalizes AZP with (Calabretta & Greisen).
func (s SZP) ProjectInverse(phi, theta float64) (float64, float64, error) {
	px, py, pz := cart(phi, theta)
	ex, ey, ez := s.perspectivePoint()

	dz := pz - ez
	if dz == 0 {
		return 0, 0, fmt.Errorf("%w: SZP ray parallel to projection plane", ErrBeyondDomain)
	}
	t := (1 - ez) / dz
	if t < 0 {
		return 0, 0, fmt.Errorf("%w: SZP point behind projection plane", ErrBeyondDomain)
	}
	ix := ex + t*(px-ex)
	iy := ey + t*(py-ey)
	return R0 * ix, -R0 * iy, nil
}

// Project inverts SZP numerically: recovering φ directly as in AZP
// is not exact here (the perspective point is offset from the pole
// axis), so θ is solved by one-dimensional bisection at a fixed φ,
// nested in a fixed-point loop that re-estimates φ.
func (s SZP) Project(x, y float64) (float64, float64, error) {
	phi := numerics.Atan2(x, -y)
	theta := math.Pi / 2
	for i := 0; i < 40; i++ {
		fx := func(theta float64) float64 {
			gx, _, err := s.ProjectInverse(phi, theta)
			if err != nil {
				return math.Inf(1)
			}
			return gx
		}
		newTheta, err := numerics.Bisect(func(th float64) float64 {
			return fx(th) - x
		}, -math.Pi/2+1e-9, math.Pi/2-1e-9, 1e-12, 200)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrBeyondDomain, err)
		}
		_, gy, err := s.ProjectInverse(phi, newTheta)
		if err != nil {
			return 0, 0, err
		}
		newPhi := numerics.Atan2(x, -gy)
		if math.Abs(newPhi-phi) < 1e-13 && math.Abs(newTheta-theta) < 1e-13 {
			phi, theta = newPhi, newTheta
			break
		}
		phi, theta = newPhi, newTheta
	}
	return phi, theta, nil
}

// ---- NCP: North Celestial Pole (historical SIN variant) -----------------

// NCP is the historical North Celestial Pole projection, equivalent
// to SIN with ξ=0 and η=cos(θ0)/sin(θ0), where θ0 is the native
// latitude of the tangent point supplied at construction (spec.md
// §4.3 notes NCP as a "SIN variant").
type NCP struct {
	Theta0 float64 // radians
}

func (n NCP) sin() SIN {
	return SIN{Xi: 0, Eta: math.Cos(n.Theta0) / math.Sin(n.Theta0)}
}

func (n NCP) Code() string                     { return "NCP" }
func (NCP) NativeDefaults() (float64, float64)  { return zenithalDefaults() }
func (n NCP) Parameters() []Parameter {
	return []Parameter{{Name: "theta0", Default: 90}}
}
func (n NCP) Inside(phi, theta float64) bool { return n.sin().Inside(phi, theta) }
func (n NCP) ProjectInverse(phi, theta float64) (float64, float64, error) {
	return n.sin().ProjectInverse(phi, theta)
}
func (n NCP) Project(x, y float64) (float64, float64, error) {
	return n.sin().Project(x, y)
}
