package rotation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astrowcs/wcs/rotation"
)

func TestNewPoleFiducialAtNativePole(t *testing.T) {
	alpha0 := 30.0 * math.Pi / 180
	delta0 := 45.0 * math.Pi / 180
	p, err := rotation.NewPole(alpha0, delta0, 0, math.Pi/2, math.Pi, math.NaN())
	assert.NoError(t, err)
	assert.InDelta(t, alpha0, p.AlphaP, 1e-12)
	assert.InDelta(t, delta0, p.DeltaP, 1e-12)
}

func TestRotationRoundTrips(t *testing.T) {
	alpha0 := 10.0 * math.Pi / 180
	delta0 := -30.0 * math.Pi / 180
	p, err := rotation.NewPole(alpha0, delta0, 0, math.Pi/2, math.Pi, math.NaN())
	assert.NoError(t, err)

	for _, pt := range [][2]float64{
		{0.1, 0.2}, {-1.0, 0.5}, {2.5, -0.3}, {0, 0},
	} {
		alpha, delta := p.ToCelestial(pt[0], pt[1])
		phi, theta := p.ToNative(alpha, delta)
		gotAlpha, gotDelta := p.ToCelestial(phi, theta)
		assert.InDelta(t, alpha, gotAlpha, 1e-9)
		assert.InDelta(t, delta, gotDelta, 1e-9)
	}
}

func TestLongitudeNormalizedToRange(t *testing.T) {
	p, err := rotation.NewPole(0, 0, 0, math.Pi/2, math.Pi, math.NaN())
	assert.NoError(t, err)
	alpha, _ := p.ToCelestial(-10, 0.1)
	assert.True(t, alpha >= 0 && alpha < 2*math.Pi)
}
