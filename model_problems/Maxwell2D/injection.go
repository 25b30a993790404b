package Maxwell2D

import (
	"math"

	"github.com/notargets/gofdtd/utils"
)

const (
	pointChargeReach = 10
	magnetReach      = 15
	radiusFloor      = 1e-6
)

// injectSources adds every active source into Ez at time t. Sources whose
// anchor cell is off the grid are skipped, and so are individual cells of an
// extended source that fall outside.
func (c *Solver) injectSources(t float64) {
	for _, s := range c.sources {
		i, j := cellOf(s.X), cellOf(s.Y)
		if !c.params.InBounds(i, j) {
			continue
		}
		osc := math.Sin(2*math.Pi*s.Frequency*t + s.Phase)
		switch k := s.Kind.(type) {
		case Dipole, PlaneWave, Antenna:
			c.addEz(i, j, s.Amplitude*osc)
		case Gaussian:
			c.addEz(i, j, s.Amplitude*gaussianEnvelope(s.Frequency, t)*osc)
		case Wire:
			c.injectWire(i, j, k.withDefaults(), s.Amplitude*osc)
		case PointCharge:
			c.injectPointCharge(i, j, k.withDefaults(), s.Amplitude*osc)
		case Magnet:
			c.injectMagnet(i, j, k, s.Amplitude*osc)
		case CurrentLoop:
			c.injectCurrentLoop(i, j, k.withDefaults(), s.Amplitude*osc)
		}
	}
}

func (c *Solver) addEz(i, j int, val float64) {
	if c.params.InBounds(i, j) {
		c.fields.Ez[c.params.Index(i, j)] += val
	}
}

func gaussianEnvelope(freq, t float64) float64 {
	var (
		t0  = 3 / freq
		tau = 1 / freq
		arg = (t - t0) / tau
	)
	return math.Exp(-arg * arg)
}

func (c *Solver) injectWire(i, j int, w Wire, drive float64) {
	var (
		cosA, sinA = math.Cos(w.Angle), math.Sin(w.Angle)
		val        = w.Current * drive * 0.5
	)
	for k := 0; k < int(w.Length); k++ {
		fk := float64(k)
		c.addEz(cellOf(float64(i)+fk*cosA), cellOf(float64(j)+fk*sinA), val)
	}
}

// injectPointCharge re-emits an inverse square pattern around the charge every step.
func (c *Solver) injectPointCharge(i, j int, pc PointCharge, drive float64) {
	for dj := -pointChargeReach; dj <= pointChargeReach; dj++ {
		for di := -pointChargeReach; di <= pointChargeReach; di++ {
			r := math.Hypot(float64(di), float64(dj)) + radiusFloor
			c.addEz(i+di, j+dj, pc.Charge/(r*r)*drive)
		}
	}
}

// injectMagnet applies a static dipole pattern rotated by the magnet angle,
// modulated in time.
func (c *Solver) injectMagnet(i, j int, m Magnet, drive float64) {
	var (
		cosA, sinA = math.Cos(m.Angle), math.Sin(m.Angle)
		sign       = m.Polarity.sign()
	)
	for dj := -magnetReach; dj <= magnetReach; dj++ {
		for di := -magnetReach; di <= magnetReach; di++ {
			fi, fj := float64(di), float64(dj)
			xRot := fi*cosA - fj*sinA
			yRot := fi*sinA + fj*cosA
			r := math.Hypot(fi, fj) + radiusFloor
			field := sign * 3 * xRot * yRot / utils.POW(r, 5)
			c.addEz(i+di, j+dj, field*drive)
		}
	}
}

func (c *Solver) injectCurrentLoop(i, j int, cl CurrentLoop, drive float64) {
	var (
		numPoints = int(math.Floor(2 * math.Pi * cl.Radius))
		val       = cl.Current * drive * 0.3
	)
	for p := 0; p < numPoints; p++ {
		theta := 2 * math.Pi * float64(p) / float64(numPoints)
		c.addEz(cellOf(float64(i)+cl.Radius*math.Cos(theta)),
			cellOf(float64(j)+cl.Radius*math.Sin(theta)), val)
	}
}
