package Maxwell2D

import "sync"

// Step advances the fields by one Dt: H update, source injection at the time
// of the current step, E update, then the rim clamp.
func (c *Solver) Step() {
	c.forEachRowBlock(c.updateH)
	c.injectSources(c.Time())
	c.forEachRowBlock(c.updateE)
	c.enforceBoundary()
	c.step++
}

// Run calls Step steps times, steps <= 0 does nothing.
func (c *Solver) Run(steps int) {
	for n := 0; n < steps; n++ {
		c.Step()
	}
}

// forEachRowBlock runs kernel over the row partitions. Each kernel writes one
// field from another, so the result does not depend on the partitioning.
func (c *Solver) forEachRowBlock(kernel func(jMin, jMax int)) {
	var (
		pm = c.Partitions
		wg sync.WaitGroup
	)
	if pm.ParallelDegree == 1 {
		kernel(0, c.params.Ny)
		return
	}
	for np := 0; np < pm.ParallelDegree; np++ {
		jMin, jMax := pm.GetBucketRange(np)
		wg.Add(1)
		go func(jMin, jMax int) {
			defer wg.Done()
			kernel(jMin, jMax)
		}(jMin, jMax)
	}
	wg.Wait()
}

func (c *Solver) updateH(jMin, jMax int) {
	var (
		nx, ny     = c.params.Nx, c.params.Ny
		dx, dy     = c.params.Dx, c.params.Dy
		Ez, Hx, Hy = c.fields.Ez, c.fields.Hx, c.fields.Hy
		Da, Db     = c.coeffs.Da, c.coeffs.Db
	)
	for j := jMin; j < jMax; j++ {
		for i := 0; i < nx; i++ {
			ind := j*nx + i
			if j < ny-1 {
				Hx[ind] = Da[ind]*Hx[ind] - Db[ind]*(Ez[ind+nx]-Ez[ind])/dy
			}
			if i < nx-1 {
				Hy[ind] = Da[ind]*Hy[ind] + Db[ind]*(Ez[ind+1]-Ez[ind])/dx
			}
		}
	}
}

func (c *Solver) updateE(jMin, jMax int) {
	var (
		nx         = c.params.Nx
		dx, dy     = c.params.Dx, c.params.Dy
		Ez, Hx, Hy = c.fields.Ez, c.fields.Hx, c.fields.Hy
		Ca, Cb     = c.coeffs.Ca, c.coeffs.Cb
	)
	for j := max(jMin, 1); j < jMax; j++ {
		for i := 1; i < nx; i++ {
			ind := j*nx + i
			curl := (Hy[ind]-Hy[ind-1])/dx - (Hx[ind]-Hx[ind-nx])/dy
			Ez[ind] = Ca[ind]*Ez[ind] + Cb[ind]*curl
		}
	}
}

// enforceBoundary clamps Ez to zero on the outer rim of the domain.
func (c *Solver) enforceBoundary() {
	var (
		nx, ny = c.params.Nx, c.params.Ny
		Ez     = c.fields.Ez
	)
	for i := 0; i < nx; i++ {
		Ez[i] = 0
		Ez[(ny-1)*nx+i] = 0
	}
	for j := 0; j < ny; j++ {
		Ez[j*nx] = 0
		Ez[j*nx+nx-1] = 0
	}
}
