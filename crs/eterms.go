// Copyright 2026 The astrowcs authors
// License: MIT

package crs

import "math"

// eTerms is the constant E-terms-of-aberration vector (elliptic
// aberration due to the eccentricity of Earth's orbit) expressed in
// FK4 B1950 Cartesian direction cosines (Aoki et al. 1983 / AIPS memo
// 27 constants).
var eTerms = [3]float64{-1.62557e-6, -0.31919e-6, -0.13843e-6}

// AddETerms perturbs an FK4-NO-E Cartesian unit vector by the E-terms
// to produce the corresponding FK4 (with E-terms) direction,
// converging in a couple of fixed-point iterations since the
// perturbation is tiny relative to the unit sphere.
func AddETerms(x, y, z float64) (float64, float64, float64) {
	rx, ry, rz := x, y, z
	for i := 0; i < 3; i++ {
		dot := rx*eTerms[0] + ry*eTerms[1] + rz*eTerms[2]
		rx = x + eTerms[0] - dot*rx
		ry = y + eTerms[1] - dot*ry
		rz = z + eTerms[2] - dot*rz
		n := math.Sqrt(rx*rx + ry*ry + rz*rz)
		rx, ry, rz = rx/n, ry/n, rz/n
	}
	return rx, ry, rz
}

// RemoveETerms is the (approximate) inverse of AddETerms: it recovers
// the FK4-NO-E direction from an FK4 (with E-terms) direction.
func RemoveETerms(x, y, z float64) (float64, float64, float64) {
	dot := x*eTerms[0] + y*eTerms[1] + z*eTerms[2]
	rx := x - eTerms[0] + dot*x
	ry := y - eTerms[1] + dot*y
	rz := z - eTerms[2] + dot*z
	n := math.Sqrt(rx*rx + ry*ry + rz*rz)
	return rx / n, ry / n, rz / n
}
