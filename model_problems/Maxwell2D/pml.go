package Maxwell2D

import (
	"math"

	"github.com/notargets/gofdtd/utils"
)

// pmlThickness clamps the requested layer to a quarter of the smaller grid dimension.
func (c *Solver) pmlThickness() int {
	return min(c.pmlRequested, min(c.params.Nx, c.params.Ny)/4)
}

// pmlSigmaMax is the peak graded conductivity for a layer of T cells of width h.
func pmlSigmaMax(T int, h float64) float64 {
	return -float64(pmlOrder+1) * math.Log(pmlReflection) / (2 * Eta0 * float64(T) * h)
}

// pmlGrade is the polynomial loss ratio for a cell d cells in from the edge.
func pmlGrade(d, T int) float64 {
	if d >= T {
		return 0
	}
	return utils.POW(float64(T-d)/float64(T), pmlOrder)
}

// applyPML merges the graded boundary conductivity into the sigma map. A cell
// is only ever raised, conductivity painted by an obstacle is never lowered.
func (c *Solver) applyPML() {
	var (
		T      = c.pmlThickness()
		nx, ny = c.params.Nx, c.params.Ny
		sigma  = c.materials.Sigma
	)
	if T < 1 {
		return
	}
	sMaxX := pmlSigmaMax(T, c.params.Dx)
	sMaxY := pmlSigmaMax(T, c.params.Dy)
	for j := 0; j < ny; j++ {
		gy := sMaxY * pmlGrade(min(j, ny-1-j), T)
		for i := 0; i < nx; i++ {
			s := gy + sMaxX*pmlGrade(min(i, nx-1-i), T)
			ind := j*nx + i
			if s > sigma[ind] {
				sigma[ind] = s
			}
		}
	}
}
