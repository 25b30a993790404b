package Maxwell2D

// Obstacle is an axis aligned rectangle of material, in grid cell units. The
// ID is assigned by the owner of the solver.
type Obstacle struct {
	ID       string   `json:"id"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Material Material `json:"material"`
}

// footprint is the half open cell range [iMin,iMax) x [jMin,jMax) clipped to the grid.
func (o Obstacle) footprint(gp GridParams) (iMin, iMax, jMin, jMax int) {
	iMin, iMax = max(cellOf(o.X), 0), min(cellOf(o.X+o.Width), gp.Nx)
	jMin, jMax = max(cellOf(o.Y), 0), min(cellOf(o.Y+o.Height), gp.Ny)
	return
}

func (c *Solver) paint(o Obstacle, m Material) {
	iMin, iMax, jMin, jMax := o.footprint(c.params)
	for j := jMin; j < jMax; j++ {
		for i := iMin; i < iMax; i++ {
			c.materials.set(c.params.Index(i, j), m)
		}
	}
}

// AddObstacle paints the obstacle material, then regrades the PML and
// recompiles the coefficients over the whole grid.
func (c *Solver) AddObstacle(o Obstacle) {
	c.obstacles = append(c.obstacles, o)
	c.paint(o, o.Material)
	c.recompute()
}

// RemoveObstacle restores the obstacle footprint to vacuum and repaints the
// remaining obstacles in insertion order. Unknown ids are ignored.
func (c *Solver) RemoveObstacle(id string) {
	var (
		found bool
		kept  = c.obstacles[:0]
	)
	for _, o := range c.obstacles {
		if o.ID == id && !found {
			found = true
			c.paint(o, Vacuum)
			continue
		}
		kept = append(kept, o)
	}
	if !found {
		return
	}
	c.obstacles = kept
	for _, o := range c.obstacles {
		c.paint(o, o.Material)
	}
	c.recompute()
}

func (c *Solver) recompute() {
	c.applyPML()
	c.compileCoefficients()
}
