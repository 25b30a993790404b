package Maxwell2D

import (
	"gonum.org/v1/gonum/mat"
)

// FieldSnapshot is a copy of the fields taken after a completed step. It is
// safe to hold on to across later steps.
type FieldSnapshot struct {
	Step       int
	Time       float64
	Nx, Ny     int
	ez, hx, hy []float64
}

// Fields copies the live field arrays into a snapshot.
func (c *Solver) Fields() (fs FieldSnapshot) {
	fs = FieldSnapshot{
		Step: c.step,
		Time: c.Time(),
		Nx:   c.params.Nx,
		Ny:   c.params.Ny,
		ez:   make([]float64, len(c.fields.Ez)),
		hx:   make([]float64, len(c.fields.Hx)),
		hy:   make([]float64, len(c.fields.Hy)),
	}
	copy(fs.ez, c.fields.Ez)
	copy(fs.hx, c.fields.Hx)
	copy(fs.hy, c.fields.Hy)
	return
}

// Ez, Hx and Hy are Ny x Nx read only views, row j holds y = j.
func (fs FieldSnapshot) Ez() mat.Matrix { return fs.view(fs.ez) }
func (fs FieldSnapshot) Hx() mat.Matrix { return fs.view(fs.hx) }
func (fs FieldSnapshot) Hy() mat.Matrix { return fs.view(fs.hy) }

func (fs FieldSnapshot) view(data []float64) mat.Matrix {
	return mat.NewDense(fs.Ny, fs.Nx, data)
}

func (fs FieldSnapshot) At(i, j int) (s FieldSample) {
	if i < 0 || i >= fs.Nx || j < 0 || j >= fs.Ny {
		return
	}
	ind := j*fs.Nx + i
	return FieldSample{Ez: fs.ez[ind], Hx: fs.hx[ind], Hy: fs.hy[ind]}
}

func (fs FieldSnapshot) Intensity() []float64 { return intensity(fs.ez) }

func (fs FieldSnapshot) Poynting() []float64 { return poynting(fs.ez, fs.hx, fs.hy) }
