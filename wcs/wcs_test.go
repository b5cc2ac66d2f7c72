package wcs_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrowcs/wcs/crs"
	"github.com/astrowcs/wcs/wcs"
	"github.com/astrowcs/wcs/wcslog"
)

// fakeHeader is a minimal in-memory HeaderView for tests; real callers
// wire this interface to their own FITS reader.
type fakeHeader map[string]string

func (h fakeHeader) HasKeyword(key string) bool { _, ok := h[key]; return ok }

func (h fakeHeader) GetString(key string) (string, bool) {
	v, ok := h[key]
	return v, ok
}

func (h fakeHeader) GetInt(key string) (int, bool) {
	v, ok := h[key]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (h fakeHeader) GetFloat(key string) (float64, bool) {
	v, ok := h[key]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (h fakeHeader) Keywords(fn func(key, value string) bool) {
	for k, v := range h {
		if !fn(k, v) {
			return
		}
	}
}

func tanHeader() fakeHeader {
	return fakeHeader{
		"CTYPE1":  "RA---TAN",
		"CTYPE2":  "DEC--TAN",
		"CRVAL1":  "150.0",
		"CRVAL2":  "2.0",
		"CRPIX1":  "512.5",
		"CRPIX2":  "512.5",
		"CD1_1":   "-0.0002777777778",
		"CD1_2":   "0",
		"CD2_1":   "0",
		"CD2_2":   "0.0002777777778",
		"RADESYS": "ICRS",
	}
}

func TestNewRequiresCType(t *testing.T) {
	h := tanHeader()
	delete(h, "CTYPE1")
	_, err := wcs.New(h, wcslog.Nop())
	assert.ErrorIs(t, err, wcs.ErrStructural)
}

func TestPixToWorldRoundTripsThroughWorldToPix(t *testing.T) {
	ctx, err := wcs.New(tanHeader(), wcslog.Nop())
	require.NoError(t, err)

	pos, err := ctx.PixToWorld(600, 430)
	require.NoError(t, err)

	px, py, err := ctx.WorldToPix(pos)
	require.NoError(t, err)
	assert.InDelta(t, 600, px, 1e-6)
	assert.InDelta(t, 430, py, 1e-6)
}

func TestCenterMatchesCRVAL(t *testing.T) {
	ctx, err := wcs.New(tanHeader(), wcslog.Nop())
	require.NoError(t, err)

	centre := ctx.Center()
	assert.InDelta(t, 150.0, centre.Lon.Rad()*180/math.Pi, 1e-9)
	assert.InDelta(t, 2.0, centre.Lat.Rad()*180/math.Pi, 1e-9)
	assert.Equal(t, crs.ICRS, centre.Frame.Kind)
}

func TestPixToWorldAtReferencePixelIsCRVAL(t *testing.T) {
	ctx, err := wcs.New(tanHeader(), wcslog.Nop())
	require.NoError(t, err)

	pos, err := ctx.PixToWorld(512.5, 512.5)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, pos.Lon.Rad()*180/math.Pi, 1e-9)
	assert.InDelta(t, 2.0, pos.Lat.Rad()*180/math.Pi, 1e-9)
}

func TestFOVIsPositive(t *testing.T) {
	ctx, err := wcs.New(tanHeader(), wcslog.Nop())
	require.NoError(t, err)

	fov, err := ctx.FOV(1024, 1024)
	require.NoError(t, err)
	assert.True(t, fov.Rad() > 0)
}

func TestPixToWorldBatch(t *testing.T) {
	ctx, err := wcs.New(tanHeader(), wcslog.Nop())
	require.NoError(t, err)

	px := []float64{512.5, 600, 400}
	py := []float64{512.5, 430, 600}
	out, err := ctx.PixToWorldBatch(px, py)
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestBuildCDFallsBackToCdeltCrota(t *testing.T) {
	h := tanHeader()
	delete(h, "CD1_1")
	delete(h, "CD1_2")
	delete(h, "CD2_1")
	delete(h, "CD2_2")
	h["CDELT1"] = "-0.0002777777778"
	h["CDELT2"] = "0.0002777777778"
	h["CROTA2"] = "30"

	ctx, err := wcs.New(h, wcslog.Nop())
	require.NoError(t, err)
	assert.NotZero(t, ctx.CD[0][0])
}

// arcGoldenHeader reproduces the four ARC pixel-to-sky corners
// published as a worked example: CRVAL/CRPIX/CD chosen so pix (1,1)/(192,1)/(192,192)/(1,192) land on the published
// values to better than 1e-9 degrees.
func arcGoldenHeader() fakeHeader {
	return fakeHeader{
		"CTYPE1": "RA---ARC",
		"CTYPE2": "DEC--ARC",
		"CRVAL1": "0",
		"CRVAL2": "-90",
		"CRPIX1": "-246.94190190499998",
		"CRPIX2": "5.082274450443924",
		"CD1_1":  "-0.06666666666666998",
		"CD1_2":  "0",
		"CD2_1":  "0",
		"CD2_2":  "0.06666666666666998",
	}
}

func TestARCGoldenCorners(t *testing.T) {
	ctx, err := wcs.New(arcGoldenHeader(), wcslog.Nop())
	require.NoError(t, err)

	cases := []struct {
		px, py   float64
		lon, lat float64
	}{
		{1, 1, 269.056730777738039, -73.468299585347012},
		{192, 1, 269.467149632953806, -60.735941026372636},
		{192, 192, 293.066101937638564, -58.194463838114913},
		{1, 192, 307.011804331818496, -69.299659386066210},
	}
	for _, c := range cases {
		pos, err := ctx.PixToWorld(c.px, c.py)
		require.NoError(t, err)
		assert.InDelta(t, c.lon, pos.Lon.Rad()*180/math.Pi, 1e-9)
		assert.InDelta(t, c.lat, pos.Lat.Rad()*180/math.Pi, 1e-9)
	}
}

func TestZPNGoldenCorner(t *testing.T) {
	h := arcGoldenHeader()
	h["CTYPE1"] = "RA---ZPN"
	h["CTYPE2"] = "DEC--ZPN"
	h["CRVAL1"] = "354.41426993026926"
	h["PV2_0"] = "0"
	h["PV2_1"] = "82.34833092135644"

	ctx, err := wcs.New(h, wcslog.Nop())
	require.NoError(t, err)

	pos, err := ctx.PixToWorld(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 263.471000708007352, pos.Lon.Rad()*180/math.Pi, 1e-9)
	assert.InDelta(t, -78.497682328997385, pos.Lat.Rad()*180/math.Pi, 1e-9)
}

func TestGalacticCType(t *testing.T) {
	h := fakeHeader{
		"CTYPE1": "GLON-CAR",
		"CTYPE2": "GLAT-CAR",
		"CRVAL1": "30.0",
		"CRVAL2": "10.0",
		"CRPIX1": "100",
		"CRPIX2": "100",
		"CD1_1":  "-0.01",
		"CD1_2":  "0",
		"CD2_1":  "0",
		"CD2_2":  "0.01",
	}
	ctx, err := wcs.New(h, wcslog.Nop())
	require.NoError(t, err)
	assert.Equal(t, crs.Galactic, ctx.Frame.Kind)
}
