package Maxwell2D

import (
	"fmt"
	"runtime"

	"github.com/notargets/gofdtd/utils"
)

/*
	Solver is a 2D TE (Ez, Hx, Hy) finite difference time domain solver on a
	uniform Yee lattice. All arrays are row major with index j*Nx + i.

	The solver is single writer: Step, Run, Reset and the source and obstacle
	mutators must be serialized by the caller. Reads may interleave with other
	reads.
*/
type Solver struct {
	params       GridParams
	pmlRequested int
	Partitions   *utils.PartitionMap // Row partitions for the update kernels
	verbose      bool
	fields       fieldState
	materials    materialMaps
	coeffs       coefficientMaps
	sources      []Source
	obstacles    []Obstacle
	step         int
}

type Option func(c *Solver)

func WithPMLThickness(cells int) Option {
	return func(c *Solver) { c.pmlRequested = cells }
}

// WithParallelDegree sets the number of go routines used by the update
// kernels, 0 uses every CPU.
func WithParallelDegree(procLimit int) Option {
	return func(c *Solver) { c.setParallelDegree(procLimit) }
}

func WithVerbose(verbose bool) Option {
	return func(c *Solver) { c.verbose = verbose }
}

// NewSolver allocates the field, material and coefficient arrays, grades the
// boundary layer and compiles the coefficients. It panics on a malformed grid.
func NewSolver(gp GridParams, opts ...Option) (c *Solver) {
	if err := gp.Validate(); err != nil {
		panic(err)
	}
	size := gp.Size()
	c = &Solver{
		params:       gp,
		pmlRequested: DefaultPMLThickness,
		fields:       newFieldState(size),
		materials:    newMaterialMaps(size),
		coeffs:       newCoefficientMaps(size),
	}
	c.setParallelDegree(1)
	for _, opt := range opts {
		opt(c)
	}
	c.recompute()
	if c.verbose {
		c.PrintInitialization()
	}
	return
}

func (c *Solver) setParallelDegree(procLimit int) {
	degree := procLimit
	if procLimit == 0 {
		degree = runtime.NumCPU()
	}
	if degree < 1 || degree > c.params.Ny {
		degree = 1
	}
	c.Partitions = utils.NewPartitionMap(degree, c.params.Ny)
}

func (c *Solver) PrintInitialization() {
	gp := c.params
	fmt.Printf("FDTD TE Maxwell Equations in 2 Dimensions\n")
	fmt.Printf("Grid Nx, Ny = %d, %d, Dx, Dy = %8.4e, %8.4e m\n", gp.Nx, gp.Ny, gp.Dx, gp.Dy)
	fmt.Printf("Dt = %8.4e s, Courant Number = %8.5f\n", gp.Dt, gp.CourantNumber())
	fmt.Printf("PML Thickness = %d cells (requested %d)\n", c.pmlThickness(), c.pmlRequested)
	fmt.Printf("Using %d go routines in parallel\n", c.Partitions.ParallelDegree)
	if gp.CourantNumber() >= 1 {
		fmt.Printf("warning: Dt exceeds the Courant limit %8.4e s, the solution will diverge\n",
			gp.CourantLimit())
	}
	if bad := c.NonFiniteCoefficients(); len(bad) != 0 {
		fmt.Printf("warning: %d cells have non-finite update coefficients (zero epsilon or mu?)\n",
			len(bad))
	}
}

// Reset zeroes the fields and the step counter. Materials, sources and
// obstacles are kept.
func (c *Solver) Reset() {
	c.fields.zero()
	c.step = 0
	c.recompute()
}

func (c *Solver) Params() GridParams { return c.params }

// Time is the physical time of the current step, StepCount * Dt.
func (c *Solver) Time() float64 { return float64(c.step) * c.params.Dt }

func (c *Solver) StepCount() int { return c.step }

// PMLThickness is the effective boundary layer thickness in cells.
func (c *Solver) PMLThickness() int { return max(c.pmlThickness(), 0) }

func (c *Solver) Sources() (s []Source) {
	s = make([]Source, len(c.sources))
	copy(s, c.sources)
	return
}

func (c *Solver) Obstacles() (o []Obstacle) {
	o = make([]Obstacle, len(c.obstacles))
	copy(o, c.obstacles)
	return
}

func (c *Solver) MaterialAt(i, j int) (m Material, ok bool) {
	if ok = c.params.InBounds(i, j); ok {
		m = c.materials.get(c.params.Index(i, j))
	}
	return
}

func (c *Solver) CoefficientsAt(i, j int) (co Coefficients, ok bool) {
	if ok = c.params.InBounds(i, j); ok {
		co = c.coeffs.get(c.params.Index(i, j))
	}
	return
}
