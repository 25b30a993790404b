package Maxwell2D

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gofdtd/utils"
)

// FieldSample holds the field components at a single cell.
type FieldSample struct {
	Ez, Hx, Hy float64
}

// Finite is false when any component has overflowed or gone NaN.
func (fs FieldSample) Finite() bool {
	for _, v := range [3]float64{fs.Ez, fs.Hx, fs.Hy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// FieldAt truncates (x, y) to a cell and returns its field values, zero when
// the cell is off the grid.
func (c *Solver) FieldAt(x, y float64) (fs FieldSample) {
	i, j := cellOf(x), cellOf(y)
	if !c.params.InBounds(i, j) {
		return
	}
	ind := c.params.Index(i, j)
	fs = FieldSample{Ez: c.fields.Ez[ind], Hx: c.fields.Hx[ind], Hy: c.fields.Hy[ind]}
	return
}

// Poynting is the per cell magnitude approximation |Ez| * |H|.
func (c *Solver) Poynting() []float64 {
	return poynting(c.fields.Ez, c.fields.Hx, c.fields.Hy)
}

func poynting(Ez, Hx, Hy []float64) (S []float64) {
	S = make([]float64, len(Ez))
	for ind := range Ez {
		S[ind] = math.Abs(Ez[ind]) * math.Hypot(Hx[ind], Hy[ind])
	}
	return
}

// Intensity is Ez squared per cell.
func (c *Solver) Intensity() []float64 {
	return intensity(c.fields.Ez)
}

func intensity(Ez []float64) (I []float64) {
	I = make([]float64, len(Ez))
	for ind, ez := range Ez {
		I[ind] = ez * ez
	}
	return
}

type FieldStats struct {
	EzMin, EzMax   float64
	TotalIntensity float64
	MaxPoynting    float64
	NonFinite      int // NaN or Inf entries across Ez, Hx, Hy
}

// Stats summarizes the current fields for progress reporting and blow up
// detection. It never alters the fields.
func (c *Solver) Stats() (st FieldStats) {
	var (
		Ez, Hx, Hy = c.fields.Ez, c.fields.Hx, c.fields.Hy
	)
	st.NonFinite = utils.CountNonFinite(Ez) + utils.CountNonFinite(Hx) + utils.CountNonFinite(Hy)
	st.EzMin, st.EzMax = floats.Min(Ez), floats.Max(Ez)
	st.TotalIntensity = floats.Sum(intensity(Ez))
	st.MaxPoynting = floats.Max(poynting(Ez, Hx, Hy))
	return
}
