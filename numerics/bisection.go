package numerics

import (
	"errors"
	"fmt"
)

// DefaultMaxIterations is the iteration bound used by the projections
// and by Bisect when the caller does not supply one (spec §5: the
// longest-running core operation terminates in microseconds).
const DefaultMaxIterations = 1000

// ErrNoBracket is returned by Bisect when f(lo) and f(hi) have the
// same sign, so no root is guaranteed to lie in [lo,hi].
var ErrNoBracket = errors.New("numerics: root not bracketed")

// ErrNoConverge is returned by Bisect when maxIter iterations were
// exhausted without reaching the requested tolerance.
var ErrNoConverge = errors.New("numerics: bisection failed to converge")

// Bisect finds a root of f in [lo,hi] by bisection. It requires
// sign(f(lo)) != sign(f(hi)). If maxIter <= 0, DefaultMaxIterations is
// used. The search stops once half the bracket width is below tol.
func Bisect(f func(float64) float64, lo, hi, tol float64, maxIter int) (float64, error) {
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if (flo < 0) == (fhi < 0) {
		return 0, fmt.Errorf("%w: f(%v)=%v f(%v)=%v", ErrNoBracket, lo, flo, hi, fhi)
	}
	for i := 0; i < maxIter; i++ {
		mid := (lo + hi) / 2
		fm := f(mid)
		if fm == 0 || (hi-lo)/2 < tol {
			return mid, nil
		}
		if (fm < 0) == (flo < 0) {
			lo, flo = mid, fm
		} else {
			hi, fhi = mid, fm
		}
	}
	return (lo + hi) / 2, fmt.Errorf("%w: after %d iterations", ErrNoConverge, maxIter)
}
