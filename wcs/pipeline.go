// Copyright 2026 The astrowcs authors
// License: MIT

package wcs

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"

	"github.com/astrowcs/wcs/crs"
	"github.com/astrowcs/wcs/numerics"
	"github.com/astrowcs/wcs/projection"
)

// PixToWorld maps a pixel coordinate (1-indexed, FITS convention) to a
// sky position in the Context's reference frame (spec.md §6
// "pix2foc"/"p2s" composed into one call).
func (c *Context) PixToWorld(px, py float64) (crs.SkyPosition, error) {
	dx, dy := px-c.CRPIX1, py-c.CRPIX2
	xi, eta := numerics.Apply2(c.CD, dx, dy)
	phi, theta, err := c.Proj.Project(xi, eta)
	if err != nil {
		return crs.SkyPosition{}, err
	}
	alpha, delta := c.Pole.ToCelestial(phi, theta)
	return crs.SkyPosition{
		Lon:   unit.Angle(alpha),
		Lat:   unit.Angle(delta),
		Frame: c.Frame,
	}, nil
}

// WorldToPix is the inverse of PixToWorld: a sky position in the
// Context's frame maps back to a pixel coordinate. pos must already be
// expressed in c.Frame; callers crossing frames should crs.Convert
// first.
func (c *Context) WorldToPix(pos crs.SkyPosition) (px, py float64, err error) {
	phi, theta := c.Pole.ToNative(pos.Lon.Rad(), pos.Lat.Rad())
	if !c.Proj.Inside(phi, theta) {
		return 0, 0, fmt.Errorf("%w: native point (%.6f,%.6f) outside %s domain",
			projection.ErrBeyondDomain, phi, theta, c.Proj.Code())
	}
	xi, eta, err := c.Proj.ProjectInverse(phi, theta)
	if err != nil {
		return 0, 0, err
	}
	cdInv, err := numerics.Inverse2(c.CD)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: CD matrix is singular: %w", ErrStructural, err)
	}
	dx, dy := numerics.Apply2(cdInv, xi, eta)
	return dx + c.CRPIX1, dy + c.CRPIX2, nil
}

// Center returns the sky position at CRVAL1/CRVAL2 (spec.md §6
// "get_center"), the fiducial point every Context is built from.
func (c *Context) Center() crs.SkyPosition {
	return crs.SkyPosition{
		Lon:   unit.Angle(c.Pole.Alpha0),
		Lat:   unit.Angle(c.Pole.Delta0),
		Frame: c.Frame,
	}
}

// FOV returns the field of view (spec.md §6 "get_fov") of an image
// naxis1 x naxis2 pixels, as the angular radius from the image centre
// to its farthest corner. Pixel coordinates are 1-indexed.
func (c *Context) FOV(naxis1, naxis2 int) (unit.Angle, error) {
	cx, cy := float64(naxis1)/2+0.5, float64(naxis2)/2+0.5
	centre, err := c.PixToWorld(cx, cy)
	if err != nil {
		return 0, err
	}
	corners := [4][2]float64{
		{0.5, 0.5},
		{float64(naxis1) + 0.5, 0.5},
		{0.5, float64(naxis2) + 0.5},
		{float64(naxis1) + 0.5, float64(naxis2) + 0.5},
	}
	var maxSep float64
	for _, p := range corners {
		pos, err := c.PixToWorld(p[0], p[1])
		if err != nil {
			return 0, err
		}
		sep := crs.Separation(centre, pos).Rad()
		if sep > maxSep {
			maxSep = sep
		}
	}
	return unit.Angle(maxSep), nil
}

// PixToWorldBatch applies PixToWorld to parallel slices of pixel
// coordinates (spec.md §6 "all_pix2world"). px and py must have equal
// length; the error from the first failing point is returned together
// with however many positions were computed before it.
func (c *Context) PixToWorldBatch(px, py []float64) ([]crs.SkyPosition, error) {
	if len(px) != len(py) {
		return nil, fmt.Errorf("%w: px/py length mismatch (%d vs %d)", ErrStructural, len(px), len(py))
	}
	out := make([]crs.SkyPosition, len(px))
	for i := range px {
		pos, err := c.PixToWorld(px[i], py[i])
		if err != nil {
			return out[:i], fmt.Errorf("wcs: point %d: %w", i, err)
		}
		out[i] = pos
	}
	return out, nil
}

// WorldToPixBatch is the batch form of WorldToPix (spec.md §6
// "all_world2pix").
func (c *Context) WorldToPixBatch(positions []crs.SkyPosition) (px, py []float64, err error) {
	px = make([]float64, len(positions))
	py = make([]float64, len(positions))
	for i, pos := range positions {
		x, y, err := c.WorldToPix(pos)
		if err != nil {
			return px[:i], py[:i], fmt.Errorf("wcs: point %d: %w", i, err)
		}
		px[i], py[i] = x, y
	}
	return px, py, nil
}

// PixelScale returns the local linear pixel scale in degrees/pixel
// along each pixel axis (the length of each CD matrix column),
// ignoring sky curvature (spec.md §6
// "proj_plane_pixel_scales"): a flat-sky approximation valid near
// CRPIX.
func (c *Context) PixelScale() (scaleX, scaleY float64) {
	return math.Hypot(c.CD[0][0], c.CD[1][0]), math.Hypot(c.CD[0][1], c.CD[1][1])
}
