// Copyright 2026 The astrowcs authors
// License: MIT

// Package crs implements the celestial reference-frame engine of
// spec.md §4.4: the named frame variants (ICRS, FK5, FK4, FK4-NO-E,
// Galactic, SuperGalactic, Ecliptic), the rotation matrices and
// precession models that convert between them, and the SkyPosition
// value type used at the wcs package boundary.
//
// Angle values crossing this package's public boundary are
// github.com/soniakeys/unit.Angle, and sexagesimal rendering is
// github.com/soniakeys/sexagesimal's FmtAngle/FmtRA, the same pair
// the teacher (github.com/soniakeys/meeus)'s v3 tree uses throughout
// its own public APIs; internal matrix/trig work stays on bare
// float64 radians, matching the teacher's own dual-form convention of
// exposing unit.Angle at the API edge while computing in plain floats.
package crs

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/astrowcs/wcs/epoch"
	"github.com/astrowcs/wcs/numerics"
)

// Frame names the celestial reference systems spec.md §4.4 lists.
type Frame int

const (
	ICRS Frame = iota
	FK5
	FK4
	FK4NoE
	Galactic
	SuperGalactic
	Ecliptic
)

func (f Frame) String() string {
	switch f {
	case ICRS:
		return "ICRS"
	case FK5:
		return "FK5"
	case FK4:
		return "FK4"
	case FK4NoE:
		return "FK4-NO-E"
	case Galactic:
		return "GALACTIC"
	case SuperGalactic:
		return "SUPERGALACTIC"
	case Ecliptic:
		return "ECLIPTIC"
	default:
		return "UNKNOWN"
	}
}

// ErrUnsupportedConversion is returned when Convert is asked to
// convert between two frames this package has no path for.
var ErrUnsupportedConversion = errors.New("crs: unsupported frame conversion")

// ReferenceFrame names a Frame together with the equinox/epoch that
// gives FK5, FK4, FK4-NO-E, and Ecliptic coordinates meaning.
// Equinox and Epoch are Julian dates; zero means "not applicable"
// (ICRS, Galactic, SuperGalactic carry none).
type ReferenceFrame struct {
	Kind    Frame
	Equinox float64 // mean equator and equinox of date, JD
	Epoch   float64 // epoch of observation (FK4 E-terms), JD
}

// SkyPosition is a sky coordinate in a named reference frame.
type SkyPosition struct {
	Lon, Lat unit.Angle
	Frame    ReferenceFrame
}

// String renders the position sexagesimally: right-ascension-style
// hours for equatorial frames (ICRS/FK5/FK4/FK4-NO-E), degrees
// otherwise (spec.md §8 scenario iv).
func (p SkyPosition) String() string {
	switch p.Frame.Kind {
	case ICRS, FK5, FK4, FK4NoE:
		ra := unit.RA(p.Lon.Rad())
		return fmt.Sprintf("%.3d %+.2d", sexagesimal.FmtRA(ra), sexagesimal.FmtAngle(p.Lat))
	default:
		return fmt.Sprintf("%.5d %+.5d", sexagesimal.FmtAngle(p.Lon), sexagesimal.FmtAngle(p.Lat))
	}
}

// Separation returns the great-circle angular distance between two
// sky positions regardless of frame annotation (callers are expected
// to Convert first if the frames differ).
func Separation(a, b SkyPosition) unit.Angle {
	sLat1, cLat1 := math.Sincos(a.Lat.Rad())
	sLat2, cLat2 := math.Sincos(b.Lat.Rad())
	dLon := b.Lon.Rad() - a.Lon.Rad()
	cosC := sLat1*sLat2 + cLat1*cLat2*math.Cos(dLon)
	c, err := numerics.Acos(cosC)
	if err != nil {
		c = 0
	}
	return unit.Angle(c)
}

// Convert rotates a sky position from its current frame to dst,
// composing through ICRS as the common reference (spec.md §4.4).
func Convert(p SkyPosition, dst ReferenceFrame) (SkyPosition, error) {
	x, y, z, err := toICRSCartesian(p)
	if err != nil {
		return SkyPosition{}, err
	}
	x, y, z, err = fromICRSCartesian(x, y, z, dst)
	if err != nil {
		return SkyPosition{}, err
	}
	lon, lat := cartesianToSpherical(x, y, z)
	return SkyPosition{Lon: unit.Angle(lon), Lat: unit.Angle(lat), Frame: dst}, nil
}

func toICRSCartesian(p SkyPosition) (x, y, z float64, err error) {
	x, y, z = sphericalToCartesian(p.Lon.Rad(), p.Lat.Rad())
	switch p.Frame.Kind {
	case ICRS:
		return x, y, z, nil
	case FK5:
		x, y, z = numerics.Apply3(PrecessFK5(requireEquinox(p.Frame), 2451545.0), x, y, z)
		x, y, z = numerics.Apply3(FK5J2000ToICRS(), x, y, z)
		return x, y, z, nil
	case FK4, FK4NoE:
		if p.Frame.Kind == FK4 {
			x, y, z = RemoveETerms(x, y, z)
		}
		x, y, z = numerics.Apply3(PrecessFK4(epoch.JDToBesselian(requireEquinox(p.Frame)), 1950.0), x, y, z)
		x, y, z = numerics.Apply3(frameBiasFK4B1950ToICRSApprox(), x, y, z)
		return x, y, z, nil
	case Galactic:
		x, y, z = numerics.Apply3(GalacticToICRS(), x, y, z)
		return x, y, z, nil
	case SuperGalactic:
		x, y, z = numerics.Apply3(SuperGalacticToGalactic(), x, y, z)
		x, y, z = numerics.Apply3(GalacticToICRS(), x, y, z)
		return x, y, z, nil
	case Ecliptic:
		t := (requireEquinox(p.Frame) - 2451545.0) / 36525
		x, y, z = numerics.Apply3(EclipticToEquatorial(Obliquity2000(t)), x, y, z)
		x, y, z = numerics.Apply3(PrecessFK5(requireEquinox(p.Frame), 2451545.0), x, y, z)
		x, y, z = numerics.Apply3(FK5J2000ToICRS(), x, y, z)
		return x, y, z, nil
	default:
		return 0, 0, 0, fmt.Errorf("%w: from %v", ErrUnsupportedConversion, p.Frame.Kind)
	}
}

func fromICRSCartesian(x, y, z float64, dst ReferenceFrame) (float64, float64, float64, error) {
	switch dst.Kind {
	case ICRS:
		return x, y, z, nil
	case FK5:
		x, y, z = numerics.Apply3(ICRSToFK5J2000(), x, y, z)
		x, y, z = numerics.Apply3(PrecessFK5(2451545.0, requireEquinox(dst)), x, y, z)
		return x, y, z, nil
	case FK4, FK4NoE:
		x, y, z = numerics.Apply3(numerics.Transpose3(frameBiasFK4B1950ToICRSApprox()), x, y, z)
		x, y, z = numerics.Apply3(PrecessFK4(1950.0, epoch.JDToBesselian(requireEquinox(dst))), x, y, z)
		if dst.Kind == FK4 {
			x, y, z = AddETerms(x, y, z)
		}
		return x, y, z, nil
	case Galactic:
		x, y, z = numerics.Apply3(ICRSToGalactic(), x, y, z)
		return x, y, z, nil
	case SuperGalactic:
		x, y, z = numerics.Apply3(ICRSToGalactic(), x, y, z)
		x, y, z = numerics.Apply3(GalacticToSuperGalactic(), x, y, z)
		return x, y, z, nil
	case Ecliptic:
		x, y, z = numerics.Apply3(ICRSToFK5J2000(), x, y, z)
		x, y, z = numerics.Apply3(PrecessFK5(2451545.0, requireEquinox(dst)), x, y, z)
		t := (requireEquinox(dst) - 2451545.0) / 36525
		x, y, z = numerics.Apply3(EquatorialToEcliptic(Obliquity2000(t)), x, y, z)
		return x, y, z, nil
	default:
		return 0, 0, 0, fmt.Errorf("%w: to %v", ErrUnsupportedConversion, dst.Kind)
	}
}

func requireEquinox(f ReferenceFrame) float64 {
	if f.Equinox != 0 {
		return f.Equinox
	}
	return epoch.JulianEpochToJD(2000.0)
}

// frameBiasFK4B1950ToICRSApprox composes the FK4 B1950 axes into
// ICRS via FK5 J2000 and the 1950->2000 FK5 precession, the
// conventional bridge used when no direct FK4<->ICRS rotation is
// tabulated. Galactic does not need this bridge: ICRSToGalactic
// (matrix.go) is built from the galactic pole expressed directly in
// ICRS, not composed through this FK4 path, since composing picks up
// enough rounding to miss a sub-arcsecond-tolerance round trip.
func frameBiasFK4B1950ToICRSApprox() [3][3]float64 {
	return numerics.Multiply3(FK5J2000ToICRS(), PrecessFK5(BesselianToJulianJD(1950.0), 2451545.0))
}

// BesselianToJulianJD converts a Besselian epoch year to a Julian
// date, reusing the epoch package's identity rather than duplicating
// the anchor constants here.
func BesselianToJulianJD(b float64) float64 {
	return epoch.BesselianToJD(b)
}
