// Copyright 2026 The astrowcs authors
// License: MIT

package wcs

import (
	"fmt"
	"math"
	"strings"

	"github.com/astrowcs/wcs/crs"
	"github.com/astrowcs/wcs/epoch"
	"github.com/astrowcs/wcs/numerics"
	"github.com/astrowcs/wcs/projection"
	"github.com/astrowcs/wcs/rotation"
	"github.com/astrowcs/wcs/wcslog"
)

const deg2rad = math.Pi / 180

// Context is the fully-built WCS pipeline for one image: a concrete
// Projection, the derived celestial Pole, the linear pixel<->plane
// matrix, and the reference frame the resulting sky coordinates are
// expressed in (spec.md §4.5/§6).
type Context struct {
	Proj   projection.Projection
	Pole   rotation.Pole
	CD     numerics.Matrix2
	CRPIX1 float64
	CRPIX2 float64
	Frame  crs.ReferenceFrame
	log    wcslog.Logger
}

// New builds a Context from a header view (spec.md §6 "init"). log
// may be the zero Logger (wcslog.Nop()).
func New(h HeaderView, log wcslog.Logger) (*Context, error) {
	ctype1, ok := h.GetString("CTYPE1")
	if !ok {
		return nil, fmt.Errorf("%w: missing CTYPE1", ErrStructural)
	}
	ctype2, ok := h.GetString("CTYPE2")
	if !ok {
		return nil, fmt.Errorf("%w: missing CTYPE2", ErrStructural)
	}
	axisName1, code1 := splitCType(ctype1)
	axisName2, code2 := splitCType(ctype2)
	if code1 != code2 {
		return nil, fmt.Errorf("%w: CTYPE1/CTYPE2 projection codes disagree (%q vs %q)", ErrStructural, code1, code2)
	}

	crval1, ok := h.GetFloat("CRVAL1")
	if !ok {
		return nil, fmt.Errorf("%w: missing CRVAL1", ErrStructural)
	}
	crval2, ok := h.GetFloat("CRVAL2")
	if !ok {
		return nil, fmt.Errorf("%w: missing CRVAL2", ErrStructural)
	}
	crpix1, ok := h.GetFloat("CRPIX1")
	if !ok {
		return nil, fmt.Errorf("%w: missing CRPIX1", ErrStructural)
	}
	crpix2, ok := h.GetFloat("CRPIX2")
	if !ok {
		return nil, fmt.Errorf("%w: missing CRPIX2", ErrStructural)
	}

	pv := readPV(h, 2)
	proj, err := projection.New(code1, pv)
	if err != nil {
		return nil, err
	}
	phi0, theta0 := proj.NativeDefaults()

	phip := rotation.DefaultPhip(crval2*deg2rad, theta0)
	if v, ok := h.GetFloat("LONPOLE"); ok {
		phip = v * deg2rad
	}
	latpoleHint := math.NaN()
	if v, ok := h.GetFloat("LATPOLE"); ok {
		latpoleHint = v * deg2rad
	}

	pole, err := rotation.NewPole(crval1*deg2rad, crval2*deg2rad, phi0, theta0, phip, latpoleHint)
	if err != nil {
		return nil, fmt.Errorf("wcs: deriving celestial pole: %w", err)
	}

	cd, err := buildCD(h, log)
	if err != nil {
		return nil, err
	}

	frame := inferFrame(h, axisName1, log)

	return &Context{
		Proj: proj, Pole: pole, CD: cd,
		CRPIX1: crpix1, CRPIX2: crpix2,
		Frame: frame, log: log,
	}, nil
}

// splitCType splits an 8-character CTYPEn value such as "RA---TAN"
// into its axis name ("RA") and three-letter projection code ("TAN").
func splitCType(ctype string) (axisName, code string) {
	ctype = strings.TrimSpace(ctype)
	if len(ctype) < 4 {
		return ctype, ""
	}
	dash := strings.IndexByte(ctype, '-')
	if dash < 0 {
		return ctype, ""
	}
	axisName = strings.TrimRight(ctype[:dash], "-")
	rest := strings.TrimLeft(ctype[dash:], "-")
	if len(rest) < 3 {
		return axisName, rest
	}
	return axisName, rest[len(rest)-3:]
}

func buildCD(h HeaderView, log wcslog.Logger) (numerics.Matrix2, error) {
	if v11, ok := h.GetFloat("CD1_1"); ok {
		v12, _ := h.GetFloat("CD1_2")
		v21, _ := h.GetFloat("CD2_1")
		v22, ok22 := h.GetFloat("CD2_2")
		if !ok22 {
			return numerics.Matrix2{}, fmt.Errorf("%w: CD1_1 present without CD2_2", ErrStructural)
		}
		return numerics.Matrix2{{v11, v12}, {v21, v22}}, nil
	}

	cdelt1, ok1 := h.GetFloat("CDELT1")
	cdelt2, ok2 := h.GetFloat("CDELT2")
	if !ok1 || !ok2 {
		return numerics.Matrix2{}, fmt.Errorf("%w: no CD, PC+CDELT, or CDELT+CROTA2 matrix present", ErrStructural)
	}

	if pc11, ok := h.GetFloat("PC1_1"); ok {
		pc12, _ := h.GetFloat("PC1_2")
		pc21, _ := h.GetFloat("PC2_1")
		pc22, _ := h.GetFloat("PC2_2")
		return numerics.Matrix2{
			{pc11 * cdelt1, pc12 * cdelt1},
			{pc21 * cdelt2, pc22 * cdelt2},
		}, nil
	}

	crota2, _ := h.GetFloat("CROTA2")
	log.Warn("no CD or PC matrix present, falling back to CDELT+CROTA2", map[string]any{"crota2": crota2})
	s, c := math.Sincos(crota2 * deg2rad)
	return numerics.Matrix2{
		{cdelt1 * c, -cdelt2 * s},
		{cdelt1 * s, cdelt2 * c},
	}, nil
}

func readPV(h HeaderView, axis int) projection.PV {
	pv := projection.PV{}
	for m := 0; m <= 29; m++ {
		key := fmt.Sprintf("PV%d_%d", axis, m)
		if v, ok := h.GetFloat(key); ok {
			pv[m] = v
		}
	}
	return pv
}

func inferFrame(h HeaderView, axisName string, log wcslog.Logger) crs.ReferenceFrame {
	switch {
	case strings.HasPrefix(axisName, "GLON") || strings.HasPrefix(axisName, "GLAT"):
		return crs.ReferenceFrame{Kind: crs.Galactic}
	case strings.HasPrefix(axisName, "SLON") || strings.HasPrefix(axisName, "SLAT"):
		return crs.ReferenceFrame{Kind: crs.SuperGalactic}
	case strings.HasPrefix(axisName, "ELON") || strings.HasPrefix(axisName, "ELAT"):
		equinox := jdFromEquinoxKeyword(h, log)
		return crs.ReferenceFrame{Kind: crs.Ecliptic, Equinox: equinox}
	default:
		radesys, _ := h.GetString("RADESYS")
		equinox := jdFromEquinoxKeyword(h, log)
		switch strings.ToUpper(strings.TrimSpace(radesys)) {
		case "FK4":
			return crs.ReferenceFrame{Kind: crs.FK4, Equinox: equinox}
		case "FK4-NO-E":
			return crs.ReferenceFrame{Kind: crs.FK4NoE, Equinox: equinox}
		case "FK5":
			return crs.ReferenceFrame{Kind: crs.FK5, Equinox: equinox}
		case "ICRS":
			return crs.ReferenceFrame{Kind: crs.ICRS}
		case "":
			log.Warn("no RADESYS present, defaulting to ICRS", nil)
			return crs.ReferenceFrame{Kind: crs.ICRS}
		default:
			log.Warn("unrecognised RADESYS, defaulting to ICRS", map[string]any{"radesys": radesys})
			return crs.ReferenceFrame{Kind: crs.ICRS}
		}
	}
}

// jdFromEquinoxKeyword resolves EQUINOX/EPOCH to a Julian date,
// applying the FITS convention that an EQUINOX below 1984.0 is a
// Besselian year and one at or above it is a Julian year (spec.md
// §4.2); the deprecated EPOCH keyword is always Besselian.
func jdFromEquinoxKeyword(h HeaderView, log wcslog.Logger) float64 {
	if v, ok := h.GetFloat("EQUINOX"); ok {
		if v < 1984 {
			return epoch.BesselianToJD(v)
		}
		return epoch.JulianEpochToJD(v)
	}
	if v, ok := h.GetFloat("EPOCH"); ok {
		log.Warn("using deprecated EPOCH keyword in place of EQUINOX", map[string]any{"epoch": v})
		return epoch.BesselianToJD(v)
	}
	return epoch.JulianEpochToJD(2000.0)
}
