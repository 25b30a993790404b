package Maxwell2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gofdtd/InputParameters"
)

// unitSource has sin(2*pi*f*0 + phase) = 1 at t = 0.
func unitSource(x, y float64, kind SourceKind) Source {
	return Source{ID: "u", X: x, Y: y, Frequency: 1e9, Amplitude: 1, Phase: math.Pi / 2, Kind: kind}
}

func injectOnce(s Source, t float64) (c *Solver) {
	c = NewSolver(testParams(60, 50))
	c.AddSource(s)
	c.injectSources(t)
	return
}

func TestPointSources(t *testing.T) {
	for _, kind := range []SourceKind{Dipole{}, PlaneWave{}, Antenna{}} {
		c := injectOnce(unitSource(30, 25, kind), 0)
		assert.InDelta(t, 1., c.FieldAt(30, 25).Ez, 1e-15)
		assert.InDelta(t, 1., floats.Sum(c.fields.Ez), 1e-15, kind.Type().String())
	}
	{ // Gaussian envelope peaks at 3/f
		s := unitSource(30, 25, Gaussian{})
		c := injectOnce(s, 3/s.Frequency)
		assert.InDelta(t, 1., c.FieldAt(30, 25).Ez, 1e-9)
		c = injectOnce(s, 0)
		assert.InDelta(t, math.Exp(-9), c.FieldAt(30, 25).Ez, 1e-12)
	}
	{ // Off grid sources are inert
		c := NewSolver(testParams(30, 30))
		c.AddSource(Source{ID: "a", X: -5, Y: 10, Frequency: 1e10, Amplitude: 1, Phase: 1})
		c.AddSource(Source{ID: "b", X: 1000, Y: 3, Frequency: 1e10, Amplitude: 1, Phase: 1})
		c.AddSource(Source{ID: "c", X: -0.5, Y: 3, Frequency: 1e10, Amplitude: 1, Phase: 1,
			Kind: CurrentLoop{}})
		c.Run(20)
		assert.True(t, allZero(c.fields.Ez))
		assert.Equal(t, FieldSample{}, c.FieldAt(-1, 4))
		assert.Equal(t, FieldSample{}, c.FieldAt(4, 30))
	}
	{ // Overlapping sources sum
		c := NewSolver(testParams(60, 50))
		c.AddSource(unitSource(30, 25, Dipole{}))
		c.AddSource(unitSource(30.5, 25.5, Antenna{}))
		c.injectSources(0)
		assert.InDelta(t, 2., c.FieldAt(30, 25).Ez, 1e-15)
	}
}

func TestWireSource(t *testing.T) {
	{
		c := injectOnce(unitSource(30, 25, Wire{Length: 5, Current: 2}), 0)
		for k := 0; k < 5; k++ {
			assert.InDelta(t, 1., c.FieldAt(float64(30+k), 25).Ez, 1e-15)
		}
		assert.Equal(t, 0., c.FieldAt(35, 25).Ez)
		assert.InDelta(t, 5., floats.Sum(c.fields.Ez), 1e-14)
	}
	{ // Vertical wire with default length and current, clipped at the top
		c := injectOnce(unitSource(10, 40, Wire{Angle: math.Pi / 2}), 0)
		for j := 40; j < 50; j++ {
			assert.InDelta(t, 0.5, c.FieldAt(10, float64(j)).Ez, 1e-15)
		}
		assert.InDelta(t, 10*0.5, floats.Sum(c.fields.Ez), 1e-14)
	}
}

func TestPointChargeSource(t *testing.T) {
	c := injectOnce(unitSource(30, 25, PointCharge{}), 0)
	r := 5 + radiusFloor
	assert.InEpsilon(t, 1e-9/(r*r), c.FieldAt(33, 29).Ez, 1e-12)
	assert.InEpsilon(t, 1e-9/(radiusFloor*radiusFloor), c.FieldAt(30, 25).Ez, 1e-9)
	r = math.Sqrt(200) + radiusFloor
	assert.InEpsilon(t, 1e-9/(r*r), c.FieldAt(40, 35).Ez, 1e-12)
	assert.Equal(t, 0., c.FieldAt(41, 25).Ez)

	c = injectOnce(unitSource(30, 25, PointCharge{Charge: -2e-9}), 0)
	r = 1 + radiusFloor
	assert.InEpsilon(t, -2e-9/(r*r), c.FieldAt(29, 25).Ez, 1e-12)
}

func TestMagnetSource(t *testing.T) {
	{
		c := injectOnce(unitSource(30, 25, Magnet{Polarity: NorthSouth}), 0)
		r := math.Sqrt(5) + radiusFloor
		assert.InEpsilon(t, 3*2*1/math.Pow(r, 5), c.FieldAt(32, 26).Ez, 1e-12)
		assert.InEpsilon(t, -3*2*1/math.Pow(r, 5), c.FieldAt(28, 26).Ez, 1e-12)
		assert.Equal(t, 0., c.FieldAt(30, 25).Ez)
		assert.Equal(t, 0., c.FieldAt(35, 25).Ez)
		assert.Equal(t, 0., c.FieldAt(30, 20).Ez)
	}
	{ // Reversed polarity and a quarter turn
		c := injectOnce(unitSource(30, 25, Magnet{Polarity: SouthNorth}), 0)
		r := math.Sqrt(5) + radiusFloor
		assert.InEpsilon(t, -3*2*1/math.Pow(r, 5), c.FieldAt(32, 26).Ez, 1e-12)
		c = injectOnce(unitSource(30, 25, Magnet{Angle: math.Pi / 2, Polarity: NorthSouth}), 0)
		// (2, 1) rotates to (-1, 2)
		assert.InEpsilon(t, -3*2*1/math.Pow(r, 5), c.FieldAt(32, 26).Ez, 1e-9)
	}
	{ // Anything but N-S drives with a negative sign, including no polarity at all
		r := math.Sqrt(5) + radiusFloor
		for _, label := range []string{"", "garbage", "S-N", "n-s"} {
			s, err := NewSourceFromSpec("m", InputParameters.SourceSpec{Type: "magnet", X: 30, Y: 25,
				Frequency: 1e9, Amplitude: 1, Phase: math.Pi / 2, Polarity: label})
			require.NoError(t, err)
			c := injectOnce(s, 0)
			expected := -3 * 2 * 1 / math.Pow(r, 5)
			if label == "n-s" {
				expected = -expected
			}
			assert.InEpsilon(t, expected, c.FieldAt(32, 26).Ez, 1e-12, label)
		}
		c := injectOnce(unitSource(30, 25, Magnet{}), 0)
		assert.InEpsilon(t, -3*2*1/math.Pow(r, 5), c.FieldAt(32, 26).Ez, 1e-12)
	}
	{ // Pattern is confined to +-15 cells
		c := injectOnce(unitSource(30, 25, Magnet{}), 0)
		assert.Equal(t, 0., c.FieldAt(46, 41).Ez)
		assert.NotEqual(t, 0., c.FieldAt(45, 40).Ez)
	}
}

func TestCurrentLoopSource(t *testing.T) {
	c := injectOnce(unitSource(30, 25, CurrentLoop{}), 0)
	numPoints := math.Floor(2 * math.Pi * 10)
	assert.InDelta(t, numPoints*0.3, floats.Sum(c.fields.Ez), 1e-12)
	assert.InDelta(t, 0.3, c.FieldAt(40, 25).Ez, 1e-15)
	assert.Equal(t, 0., c.FieldAt(30, 25).Ez)

	c = injectOnce(unitSource(30, 25, CurrentLoop{Radius: 3, Current: 2}), 0)
	assert.InDelta(t, math.Floor(6*math.Pi)*0.6, floats.Sum(c.fields.Ez), 1e-12)
}

func TestSourceLifecycle(t *testing.T) {
	c := NewSolver(testParams(30, 30))
	c.AddSource(Source{ID: "a", X: 10, Y: 10, Frequency: 1e10, Amplitude: 1})
	c.AddSource(Source{ID: "b", X: 20, Y: 20, Frequency: 1e10, Amplitude: 1, Kind: Gaussian{}})
	assert.Equal(t, Dipole{}, c.Sources()[0].Kind)

	amp, x := 3.0, 12.5
	assert.True(t, c.UpdateSource("a", SourceUpdate{Amplitude: &amp, X: &x, Kind: Antenna{}}))
	s := c.Sources()[0]
	assert.Equal(t, 3., s.Amplitude)
	assert.Equal(t, 12.5, s.X)
	assert.Equal(t, 10., s.Y)
	assert.Equal(t, 1e10, s.Frequency)
	assert.Equal(t, Antenna{}, s.Kind)
	assert.False(t, c.UpdateSource("zz", SourceUpdate{Amplitude: &amp}))

	held := c.Sources()
	c.RemoveSource("zz")
	assert.Len(t, c.Sources(), 2)
	c.RemoveSource("a")
	require.Len(t, c.Sources(), 1)
	assert.Equal(t, "b", c.Sources()[0].ID)
	assert.Equal(t, "a", held[0].ID)
}

func TestSourceSpecs(t *testing.T) {
	for i, name := range sourceTypeNames {
		st, err := NewSourceType(name)
		require.NoError(t, err)
		assert.Equal(t, SourceType(i), st)
		assert.Equal(t, name, st.String())
	}
	st, err := NewSourceType(" Current-Loop ")
	assert.NoError(t, err)
	assert.Equal(t, CURRENT_LOOP, st)
	_, err = NewSourceType("laser")
	assert.Error(t, err)

	specs := []InputParameters.SourceSpec{
		{ID: "w", Type: "wire", X: 1, Y: 2, Frequency: 3, Amplitude: 4, Length: 7, Angle: 0.5, Current: 2},
		{ID: "m", Type: "magnet", Angle: 1, Polarity: "S-N"},
		{ID: "l", Type: "current-loop", Width: 6, Current: 3},
		{ID: "q", Type: "point-charge", Charge: 4e-9},
		{ID: "g", Type: "gaussian", Phase: 0.1},
		{ID: "p", Type: "plane-wave"},
	}
	for _, spec := range specs {
		s, err := NewSourceFromSpec(spec.ID, spec)
		require.NoError(t, err)
		assert.Equal(t, spec, s.Spec())
	}
	s, _ := NewSourceFromSpec("m", specs[1])
	assert.Equal(t, Magnet{Angle: 1, Polarity: SouthNorth}, s.Kind)
	s, _ = NewSourceFromSpec("l", specs[2])
	assert.Equal(t, CurrentLoop{Radius: 6, Current: 3}, s.Kind)
	_, err = NewSourceFromSpec("x", InputParameters.SourceSpec{Type: "laser"})
	assert.Error(t, err)

	assert.Equal(t, NorthSouth, NewPolarity("N-S"))
	assert.Equal(t, SouthNorth, NewPolarity(""))
	assert.Equal(t, SouthNorth, NewPolarity("garbage"))
	assert.Equal(t, SouthNorth, NewPolarity("s-n"))
	assert.Equal(t, SouthNorth, Polarity(0))
}
