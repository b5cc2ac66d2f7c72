package numerics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astrowcs/wcs/numerics"
)

func TestAsinAcosClampWithinTolerance(t *testing.T) {
	v, err := numerics.Asin(1 + numerics.Tolerance/2)
	assert.NoError(t, err)
	assert.InDelta(t, math.Pi/2, v, 1e-12)

	v, err = numerics.Acos(-1 - numerics.Tolerance/2)
	assert.NoError(t, err)
	assert.InDelta(t, math.Pi, v, 1e-12)
}

func TestAsinBeyondToleranceFails(t *testing.T) {
	_, err := numerics.Asin(1.1)
	assert.ErrorIs(t, err, numerics.ErrDomain)
}

func TestAtan2ZeroZero(t *testing.T) {
	assert.Equal(t, 0.0, numerics.Atan2(0, 0))
}

func TestNormalizeLongitudeDeg(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-10, 350},
		{0, 0},
		{360, 0},
		{370, 10},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, numerics.NormalizeLongitudeDeg(tt.in), 1e-12)
	}
}

func TestPhiRange(t *testing.T) {
	assert.InDelta(t, math.Pi, numerics.PhiRange(math.Pi), 1e-12)
	assert.InDelta(t, -math.Pi+0.1, numerics.PhiRange(math.Pi+0.1), 1e-12)
}

func TestBisectFindsRoot(t *testing.T) {
	root, err := numerics.Bisect(func(x float64) float64 { return x*x - 2 }, 0, 2, 1e-14, 0)
	assert.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1e-9)
}

func TestBisectRequiresBracket(t *testing.T) {
	_, err := numerics.Bisect(func(x float64) float64 { return x*x + 1 }, 0, 2, 1e-12, 0)
	assert.ErrorIs(t, err, numerics.ErrNoBracket)
}

func TestInverse3RoundTrips(t *testing.T) {
	m := numerics.Matrix3{
		{2, 0, 0},
		{0, 3, 0},
		{0, 0, 4},
	}
	inv, err := numerics.Inverse3(m)
	assert.NoError(t, err)
	prod := numerics.Multiply3(m, inv)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, prod[i][j], 1e-12)
		}
	}
}

func TestInverse3Singular(t *testing.T) {
	_, err := numerics.Inverse3(numerics.Matrix3{})
	assert.ErrorIs(t, err, numerics.ErrSingular)
}
