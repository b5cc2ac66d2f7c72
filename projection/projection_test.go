package projection_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astrowcs/wcs/projection"
)

func TestARCRoundTrip(t *testing.T) {
	p := projection.ARC{}
	phi := 30.0 * math.Pi / 180
	theta := 60.0 * math.Pi / 180
	x, y, err := p.ProjectInverse(phi, theta)
	assert.NoError(t, err)
	gotPhi, gotTheta, err := p.Project(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, phi, gotPhi, 1e-9)
	assert.InDelta(t, theta, gotTheta, 1e-9)
}

func TestARCRadiusIsColatitudeInDegrees(t *testing.T) {
	p := projection.ARC{}
	x, y, err := p.ProjectInverse(0, 0)
	assert.NoError(t, err)
	assert.InDelta(t, 0.0, x, 1e-9)
	assert.InDelta(t, -90.0, y, 1e-9)
}

func TestTANRoundTrip(t *testing.T) {
	p := projection.TAN{}
	phi := -40.0 * math.Pi / 180
	theta := 80.0 * math.Pi / 180
	x, y, err := p.ProjectInverse(phi, theta)
	assert.NoError(t, err)
	gotPhi, gotTheta, err := p.Project(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, phi, gotPhi, 1e-9)
	assert.InDelta(t, theta, gotTheta, 1e-9)
}

func TestTANRejectsNonPositiveTheta(t *testing.T) {
	p := projection.TAN{}
	_, _, err := p.ProjectInverse(0, 0)
	assert.ErrorIs(t, err, projection.ErrBeyondDomain)
}

func TestSTGRoundTrip(t *testing.T) {
	p := projection.STG{}
	phi := 10.0 * math.Pi / 180
	theta := -20.0 * math.Pi / 180
	x, y, err := p.ProjectInverse(phi, theta)
	assert.NoError(t, err)
	gotPhi, gotTheta, err := p.Project(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, phi, gotPhi, 1e-9)
	assert.InDelta(t, theta, gotTheta, 1e-9)
}

func TestSINSimpleRoundTrip(t *testing.T) {
	p := projection.SIN{}
	phi := 15.0 * math.Pi / 180
	theta := 50.0 * math.Pi / 180
	x, y, err := p.ProjectInverse(phi, theta)
	assert.NoError(t, err)
	gotPhi, gotTheta, err := p.Project(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, phi, gotPhi, 1e-9)
	assert.InDelta(t, theta, gotTheta, 1e-9)
}

func TestZEARoundTrip(t *testing.T) {
	p := projection.ZEA{}
	phi := -60.0 * math.Pi / 180
	theta := 10.0 * math.Pi / 180
	x, y, err := p.ProjectInverse(phi, theta)
	assert.NoError(t, err)
	gotPhi, gotTheta, err := p.Project(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, phi, gotPhi, 1e-9)
	assert.InDelta(t, theta, gotTheta, 1e-9)
}

func TestZPNRoundTrip(t *testing.T) {
	p := projection.ZPN{Coeffs: []float64{0, 90, 0, -10}}
	theta := 70.0 * math.Pi / 180
	phi := 25.0 * math.Pi / 180
	x, y, err := p.ProjectInverse(phi, theta)
	assert.NoError(t, err)
	gotPhi, gotTheta, err := p.Project(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, phi, gotPhi, 1e-9)
	assert.InDelta(t, theta, gotTheta, 1e-6)
}

func TestCARIsLinear(t *testing.T) {
	p := projection.CAR{}
	phi := 0.5
	theta := -0.3
	x, y, err := p.ProjectInverse(phi, theta)
	assert.NoError(t, err)
	assert.InDelta(t, phi*projection.R0, x, 1e-9)
	assert.InDelta(t, theta*projection.R0, y, 1e-9)
	gotPhi, gotTheta, err := p.Project(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, phi, gotPhi, 1e-12)
	assert.InDelta(t, theta, gotTheta, 1e-12)
}

func TestCEARoundTrip(t *testing.T) {
	p := projection.CEA{Lambda: 1}
	phi := 1.0
	theta := 0.4
	x, y, err := p.ProjectInverse(phi, theta)
	assert.NoError(t, err)
	gotPhi, gotTheta, err := p.Project(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, phi, gotPhi, 1e-9)
	assert.InDelta(t, theta, gotTheta, 1e-9)
}

func TestMERRoundTrip(t *testing.T) {
	p := projection.MER{}
	phi := -1.2
	theta := 0.6
	x, y, err := p.ProjectInverse(phi, theta)
	assert.NoError(t, err)
	gotPhi, gotTheta, err := p.Project(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, phi, gotPhi, 1e-9)
	assert.InDelta(t, theta, gotTheta, 1e-9)
}

func TestAITRoundTrip(t *testing.T) {
	p := projection.AIT{}
	phi := 0.8
	theta := 0.3
	x, y, err := p.ProjectInverse(phi, theta)
	assert.NoError(t, err)
	gotPhi, gotTheta, err := p.Project(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, phi, gotPhi, 1e-9)
	assert.InDelta(t, theta, gotTheta, 1e-6)
}

func TestSFLRoundTrip(t *testing.T) {
	p := projection.SFL{}
	phi := -0.9
	theta := 0.25
	x, y, err := p.ProjectInverse(phi, theta)
	assert.NoError(t, err)
	gotPhi, gotTheta, err := p.Project(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, phi, gotPhi, 1e-9)
	assert.InDelta(t, theta, gotTheta, 1e-9)
}

func TestCOERoundTrip(t *testing.T) {
	p := projection.COE{Theta1: 15 * math.Pi / 180, Theta2: 45 * math.Pi / 180}
	phi := 0.3
	theta := 30 * math.Pi / 180
	x, y, err := p.ProjectInverse(phi, theta)
	assert.NoError(t, err)
	gotPhi, gotTheta, err := p.Project(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, phi, gotPhi, 1e-7)
	assert.InDelta(t, theta, gotTheta, 1e-7)
}

func TestCOORoundTrip(t *testing.T) {
	p := projection.COO{Theta1: 20 * math.Pi / 180, Theta2: 60 * math.Pi / 180}
	phi := -0.4
	theta := 35 * math.Pi / 180
	x, y, err := p.ProjectInverse(phi, theta)
	assert.NoError(t, err)
	gotPhi, gotTheta, err := p.Project(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, phi, gotPhi, 1e-6)
	assert.InDelta(t, theta, gotTheta, 1e-6)
}

func TestCODRoundTrip(t *testing.T) {
	p := projection.COD{Theta1: 20 * math.Pi / 180, Theta2: 50 * math.Pi / 180}
	phi := 0.2
	theta := 25 * math.Pi / 180
	x, y, err := p.ProjectInverse(phi, theta)
	assert.NoError(t, err)
	gotPhi, gotTheta, err := p.Project(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, phi, gotPhi, 1e-6)
	assert.InDelta(t, theta, gotTheta, 1e-6)
}

func TestBONRoundTrip(t *testing.T) {
	p := projection.BON{Theta1: 40 * math.Pi / 180}
	phi := 0.3
	theta := 20 * math.Pi / 180
	x, y, err := p.ProjectInverse(phi, theta)
	assert.NoError(t, err)
	gotPhi, gotTheta, err := p.Project(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, phi, gotPhi, 1e-7)
	assert.InDelta(t, theta, gotTheta, 1e-7)
}

func TestPCORoundTrip(t *testing.T) {
	p := projection.PCO{}
	phi := 0.3
	theta := 0.4
	x, y, err := p.ProjectInverse(phi, theta)
	assert.NoError(t, err)
	gotPhi, gotTheta, err := p.Project(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, phi, gotPhi, 1e-6)
	assert.InDelta(t, theta, gotTheta, 1e-6)
}

func TestNewByCode(t *testing.T) {
	p, err := projection.New("TAN", nil)
	assert.NoError(t, err)
	assert.Equal(t, "TAN", p.Code())

	_, err = projection.New("XYZ", nil)
	assert.ErrorIs(t, err, projection.ErrBadParameter)
}

func TestNewZPNParsesCoefficients(t *testing.T) {
	p, err := projection.New("ZPN", projection.PV{0: 0, 1: 90, 3: -10})
	assert.NoError(t, err)
	zpn := p.(projection.ZPN)
	assert.Equal(t, []float64{0, 90, 0, -10}, zpn.Coeffs)
}

// TestNewConicDecodesThetaAEtaPair guards against regressing the
// (θ_a, η) decoding: PV2_1/PV2_2 are θ_a and η, not θ1 and θ2
// directly, so the standard parallels must come out as θ_a∓η.
func TestNewConicDecodesThetaAEtaPair(t *testing.T) {
	pv := projection.PV{1: 35, 2: 10}
	wantTheta1 := (35 - 10) * math.Pi / 180
	wantTheta2 := (35 + 10) * math.Pi / 180

	coe, err := projection.New("COE", pv)
	assert.NoError(t, err)
	e := coe.(projection.COE)
	assert.InDelta(t, wantTheta1, e.Theta1, 1e-12)
	assert.InDelta(t, wantTheta2, e.Theta2, 1e-12)

	cod, err := projection.New("COD", pv)
	assert.NoError(t, err)
	d := cod.(projection.COD)
	assert.InDelta(t, wantTheta1, d.Theta1, 1e-12)
	assert.InDelta(t, wantTheta2, d.Theta2, 1e-12)

	coo, err := projection.New("COO", pv)
	assert.NoError(t, err)
	o := coo.(projection.COO)
	assert.InDelta(t, wantTheta1, o.Theta1, 1e-12)
	assert.InDelta(t, wantTheta2, o.Theta2, 1e-12)

	cop, err := projection.New("COP", pv)
	assert.NoError(t, err)
	p := cop.(projection.COP)
	assert.InDelta(t, wantTheta1, p.Theta1, 1e-12)
	assert.InDelta(t, wantTheta2, p.Theta2, 1e-12)
}

func TestNewCOPRejectsZeroEta(t *testing.T) {
	_, err := projection.New("COP", projection.PV{1: 40, 2: 0})
	assert.ErrorIs(t, err, projection.ErrBadParameter)
}
