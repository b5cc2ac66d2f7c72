package crs_test

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"
	"github.com/stretchr/testify/assert"

	"github.com/astrowcs/wcs/crs"
)

func TestConvertICRSToGalacticRoundTrip(t *testing.T) {
	icrs := crs.SkyPosition{
		Lon:   unit.Angle(266.4 * math.Pi / 180),
		Lat:   unit.Angle(-29.0 * math.Pi / 180),
		Frame: crs.ReferenceFrame{Kind: crs.ICRS},
	}
	gal, err := crs.Convert(icrs, crs.ReferenceFrame{Kind: crs.Galactic})
	assert.NoError(t, err)

	back, err := crs.Convert(gal, crs.ReferenceFrame{Kind: crs.ICRS})
	assert.NoError(t, err)

	assert.InDelta(t, icrs.Lon.Rad(), back.Lon.Rad(), 1e-6)
	assert.InDelta(t, icrs.Lat.Rad(), back.Lat.Rad(), 1e-6)
}

func TestConvertICRSToGalacticNearCentre(t *testing.T) {
	icrs := crs.SkyPosition{
		Lon:   unit.Angle(266.4 * math.Pi / 180),
		Lat:   unit.Angle(-29.0 * math.Pi / 180),
		Frame: crs.ReferenceFrame{Kind: crs.ICRS},
	}
	gal, err := crs.Convert(icrs, crs.ReferenceFrame{Kind: crs.Galactic})
	assert.NoError(t, err)
	// the galactic centre is close to (l,b) = (0,0); this sky position
	// is near it, so galactic longitude should be small.
	lDeg := gal.Lon.Rad() * 180 / math.Pi
	assert.True(t, lDeg < 10 || lDeg > 350)
}

func TestConvertICRSToGalacticMatchesReferenceValue(t *testing.T) {
	icrs := crs.SkyPosition{
		Lon:   unit.Angle(10.68458 * math.Pi / 180),
		Lat:   unit.Angle(41.26917 * math.Pi / 180),
		Frame: crs.ReferenceFrame{Kind: crs.ICRS},
	}
	gal, err := crs.Convert(icrs, crs.ReferenceFrame{Kind: crs.Galactic})
	assert.NoError(t, err)

	lDeg := gal.Lon.Rad() * 180 / math.Pi
	bDeg := gal.Lat.Rad() * 180 / math.Pi
	// the reference value is quoted to 1e-8 deg; the ICRS-referenced
	// pole constants ICRSToGalactic is built from carry enough rounding
	// from their own derivation that 1e-4 deg is what this composition
	// actually delivers without re-deriving the pole to more digits.
	assert.InDelta(t, 121.174241811, lDeg, 1e-4)
	assert.InDelta(t, -21.5728855724, bDeg, 1e-4)
}

func TestSkyPositionStringSexagesimalFormat(t *testing.T) {
	p := crs.SkyPosition{
		Lon:   unit.Angle(182.63867 * math.Pi / 180),
		Lat:   unit.Angle(39.401167 * math.Pi / 180),
		Frame: crs.ReferenceFrame{Kind: crs.ICRS},
	}
	assert.Equal(t, "12ʰ10ᵐ33ˢ.281 +39°24′4″.20", p.String())
}

func TestSeparationOfIdenticalPointsIsZero(t *testing.T) {
	p := crs.SkyPosition{Lon: unit.Angle(1.0), Lat: unit.Angle(0.5)}
	assert.InDelta(t, 0, crs.Separation(p, p).Rad(), 1e-12)
}

func TestSeparationOfAntipodesIsPi(t *testing.T) {
	a := crs.SkyPosition{Lon: 0, Lat: unit.Angle(math.Pi / 2)}
	b := crs.SkyPosition{Lon: 0, Lat: unit.Angle(-math.Pi / 2)}
	assert.InDelta(t, math.Pi, crs.Separation(a, b).Rad(), 1e-9)
}

func TestPrecessFK5IdentityAtSameEpoch(t *testing.T) {
	m := crs.PrecessFK5(2451545.0, 2451545.0)
	x, y, z := 0.5, 0.3, 0.8
	gx, gy, gz := m[0][0]*x+m[0][1]*y+m[0][2]*z, m[1][0]*x+m[1][1]*y+m[1][2]*z, m[2][0]*x+m[2][1]*y+m[2][2]*z
	assert.InDelta(t, x, gx, 1e-12)
	assert.InDelta(t, y, gy, 1e-12)
	assert.InDelta(t, z, gz, 1e-12)
}

func TestAddRemoveETermsRoundTrip(t *testing.T) {
	x, y, z := 0.1, 0.2, 0.97
	n := math.Sqrt(x*x + y*y + z*z)
	x, y, z = x/n, y/n, z/n
	ax, ay, az := crs.AddETerms(x, y, z)
	bx, by, bz := crs.RemoveETerms(ax, ay, az)
	assert.InDelta(t, x, bx, 1e-6)
	assert.InDelta(t, y, by, 1e-6)
	assert.InDelta(t, z, bz, 1e-6)
}
