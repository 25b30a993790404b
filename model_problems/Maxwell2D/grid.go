package Maxwell2D

import (
	"fmt"
	"math"
)

// GridParams describes the uniform Yee lattice. Dt is not checked against the
// Courant bound, use CourantNumber to inspect it.
type GridParams struct {
	Nx, Ny int     // Cell counts in x and y
	Dx, Dy float64 // Spatial step, m
	Dt     float64 // Time step, s
}

func (gp GridParams) Validate() (err error) {
	switch {
	case gp.Nx < 1 || gp.Ny < 1:
		err = fmt.Errorf("grid dimensions must be positive, have Nx = %d, Ny = %d", gp.Nx, gp.Ny)
	case !(gp.Dx > 0) || !(gp.Dy > 0):
		err = fmt.Errorf("spatial steps must be positive, have Dx = %g, Dy = %g", gp.Dx, gp.Dy)
	case !(gp.Dt > 0):
		err = fmt.Errorf("time step must be positive, have Dt = %g", gp.Dt)
	}
	return
}

// CourantLimit is the largest stable time step for the 2D leapfrog scheme.
func (gp GridParams) CourantLimit() float64 {
	return math.Min(gp.Dx, gp.Dy) / (C0 * math.Sqrt2)
}

// CourantNumber is Dt relative to the Courant limit, the scheme is stable below 1.
func (gp GridParams) CourantNumber() float64 {
	return gp.Dt / gp.CourantLimit()
}

// StableDt returns CFL times the Courant limit.
func (gp GridParams) StableDt(CFL float64) float64 {
	return CFL * gp.CourantLimit()
}

func (gp GridParams) Size() int {
	return gp.Nx * gp.Ny
}

// Index is row major, i is the column (x) and j the row (y).
func (gp GridParams) Index(i, j int) int {
	return j*gp.Nx + i
}

func (gp GridParams) InBounds(i, j int) bool {
	return i >= 0 && i < gp.Nx && j >= 0 && j < gp.Ny
}

// cellOf truncates a real grid coordinate to its cell index.
func cellOf(x float64) int {
	return int(math.Floor(x))
}

type fieldState struct {
	Ez, Hx, Hy []float64
}

func newFieldState(size int) fieldState {
	return fieldState{
		Ez: make([]float64, size),
		Hx: make([]float64, size),
		Hy: make([]float64, size),
	}
}

func (fs fieldState) zero() {
	for _, f := range [][]float64{fs.Ez, fs.Hx, fs.Hy} {
		for i := range f {
			f[i] = 0
		}
	}
}

type materialMaps struct {
	Epsilon, Mu, Sigma []float64
}

func newMaterialMaps(size int) (mm materialMaps) {
	mm = materialMaps{
		Epsilon: make([]float64, size),
		Mu:      make([]float64, size),
		Sigma:   make([]float64, size),
	}
	for ind := 0; ind < size; ind++ {
		mm.set(ind, Vacuum)
	}
	return
}

func (mm materialMaps) set(ind int, m Material) {
	mm.Epsilon[ind], mm.Mu[ind], mm.Sigma[ind] = m.Epsilon, m.Mu, m.Sigma
}

func (mm materialMaps) get(ind int) Material {
	return Material{Epsilon: mm.Epsilon[ind], Mu: mm.Mu[ind], Sigma: mm.Sigma[ind]}
}
