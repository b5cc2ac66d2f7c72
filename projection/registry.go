// Copyright 2026 The astrowcs authors
// License: MIT

package projection

import (
	"fmt"
	"math"
)

// PV is the subset of the header's PV_i_m dictionary relevant to axis
// 2 (latitude), keyed by m, in degrees/dimensionless as the FITS
// convention requires; New converts to radians where the formula
// needs an angle.
type PV map[int]float64

func (p PV) get(m int, deg2rad bool) float64 {
	v, ok := p[m]
	if !ok {
		return 0
	}
	if deg2rad {
		return v * math.Pi / 180
	}
	return v
}

// New constructs the concrete Projection for a three-letter CTYPE
// code from its PV_2_m parameters (spec.md §4.3/§6). Unknown codes
// return ErrBadParameter.
func New(code string, pv PV) (Projection, error) {
	switch code {
	case "AZP":
		return AZP{Mu: pv.get(1, false), Gamma: pv.get(2, true)}, nil
	case "SZP":
		return SZP{Mu: pv.get(1, false), PhiC: pv.get(2, true), ThetaC: pv.getOrDefault(3, 90, true)}, nil
	case "TAN":
		return TAN{}, nil
	case "STG":
		return STG{}, nil
	case "SIN":
		return SIN{Xi: pv.get(1, false), Eta: pv.get(2, false)}, nil
	case "ARC":
		return ARC{}, nil
	case "ZEA":
		return ZEA{}, nil
	case "ZPN":
		return ZPN{Coeffs: pv.ordered(0, 29)}, nil
	case "AIR":
		return AIR{ThetaB: pv.getOrDefault(1, 90, true)}, nil
	case "NCP":
		return NCP{Theta0: pv.getOrDefault(0, 90, true)}, nil
	case "CAR":
		return CAR{}, nil
	case "CEA":
		return CEA{Lambda: pv.getOrDefault(1, 1, false)}, nil
	case "CYP":
		return CYP{Mu: pv.getOrDefault(1, 1, false), Lambda: pv.getOrDefault(2, 1, false)}, nil
	case "MER":
		return MER{}, nil
	case "AIT":
		return AIT{}, nil
	case "MOL":
		return MOL{}, nil
	case "PAR":
		return PAR{}, nil
	case "SFL":
		return SFL{}, nil
	case "COP":
		thetaA, eta := pv.get(1, true), pv.get(2, true)
		if eta == 0 {
			return nil, fmt.Errorf("%w: COP requires a nonzero eta (PV2_2)", ErrBadParameter)
		}
		return COP{Theta1: thetaA - eta, Theta2: thetaA + eta}, nil
	case "COE":
		theta1, theta2 := conicThetas(pv)
		return COE{Theta1: theta1, Theta2: theta2}, nil
	case "COD":
		theta1, theta2 := conicThetas(pv)
		return COD{Theta1: theta1, Theta2: theta2}, nil
	case "COO":
		theta1, theta2 := conicThetas(pv)
		return COO{Theta1: theta1, Theta2: theta2}, nil
	case "BON":
		return BON{Theta1: pv.get(1, true)}, nil
	case "PCO":
		return PCO{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown projection code %q", ErrBadParameter, code)
	}
}

// conicThetas decodes a conic projection's PV2_1/PV2_2 pair from the
// (θ_a, η) parametrization spec.md §4.3 defines for COE/COD/COO into
// the two standard parallels θ1=θ_a-η, θ2=θ_a+η those types' formulas
// are expressed in terms of.
func conicThetas(pv PV) (theta1, theta2 float64) {
	thetaA := pv.get(1, true)
	eta := pv.get(2, true)
	return thetaA - eta, thetaA + eta
}

func (p PV) getOrDefault(m int, def float64, deg2rad bool) float64 {
	v, ok := p[m]
	if !ok {
		v = def
	}
	if deg2rad {
		return v * math.Pi / 180
	}
	return v
}

// ordered returns p[lo..hi] as a dense slice, zero where absent,
// trimmed to the highest present index (ZPN's coefficient list).
func (p PV) ordered(lo, hi int) []float64 {
	last := lo
	for k := range p {
		if k >= lo && k <= hi && k > last {
			last = k
		}
	}
	out := make([]float64, last-lo+1)
	for k := lo; k <= last; k++ {
		out[k-lo] = p[k]
	}
	return out
}
