package Maxwell2D

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/notargets/gofdtd/InputParameters"
	"github.com/notargets/gofdtd/utils"
)

// NewGridParams converts the input file parameters, deriving Dt from the CFL
// number when the file does not set it.
func NewGridParams(ip *InputParameters.InputParametersFDTD) (gp GridParams) {
	gp = GridParams{Nx: ip.Nx, Ny: ip.Ny, Dx: ip.Dx, Dy: ip.Dy, Dt: ip.Dt}
	if gp.Dt == 0 {
		gp.Dt = gp.StableDt(ip.CFL)
	}
	return
}

// NewSolverFromInput builds a solver with the sources and obstacles of the
// input file. Items without an id get one from their position in the file.
func NewSolverFromInput(ip *InputParameters.InputParametersFDTD, verbose bool) (c *Solver, err error) {
	gp := NewGridParams(ip)
	if err = gp.Validate(); err != nil {
		return
	}
	opts := []Option{WithParallelDegree(ip.ParallelDegree), WithVerbose(verbose)}
	if ip.PMLThickness != nil {
		opts = append(opts, WithPMLThickness(*ip.PMLThickness))
	}
	c = NewSolver(gp, opts...)
	for i, spec := range ip.Sources {
		id := spec.ID
		if len(id) == 0 {
			id = fmt.Sprintf("source-%d", i)
		}
		var s Source
		if s, err = NewSourceFromSpec(id, spec); err != nil {
			return nil, fmt.Errorf("Sources[%d]: %w", i, err)
		}
		c.AddSource(s)
	}
	for i, spec := range ip.Obstacles {
		id := spec.ID
		if len(id) == 0 {
			id = fmt.Sprintf("obstacle-%d", i)
		}
		c.AddObstacle(NewObstacleFromSpec(id, spec))
	}
	return
}

// Solve advances the solver by steps, printing progress and exporting a
// heatmap every pm.StepsBeforePlot steps.
func (c *Solver) Solve(steps int, pm *InputParameters.PlotMeta) (err error) {
	var (
		elapsed time.Duration
		start   time.Time
		every   = max(pm.StepsBeforePlot, 1)
		field   = PlotField(pm.Field)
	)
	c.PrintHeader()
	for n := 1; n <= steps; n++ {
		start = time.Now()
		c.Step()
		elapsed += time.Since(start)
		if n%every == 0 || n == steps || n == 1 {
			c.PrintUpdate()
			if len(pm.OutputDir) != 0 {
				fileName := filepath.Join(pm.OutputDir,
					fmt.Sprintf("%s_%08d.png", field, c.StepCount()))
				if err = SaveHeatmapPNG(c.Fields(), c.params, field, fileName); err != nil {
					return
				}
			}
			utils.SleepFor(int(pm.FrameTime.Milliseconds()))
		}
	}
	c.PrintFinal(elapsed, steps)
	return
}

func (c *Solver) PrintHeader() {
	fmt.Printf("    iter        time      Ez_min      Ez_max   Intensity    Poynting  NonFinite\n")
}

func (c *Solver) PrintUpdate() {
	st := c.Stats()
	fmt.Printf("%8d %11.4e %11.4e %11.4e %11.4e %11.4e %10d\n",
		c.step, c.Time(), st.EzMin, st.EzMax, st.TotalIntensity, st.MaxPoynting, st.NonFinite)
	if st.NonFinite != 0 {
		fmt.Printf("warning: non-finite field values, check Dt against the Courant limit and material epsilon\n")
	}
}

func (c *Solver) PrintFinal(elapsed time.Duration, steps int) {
	if steps < 1 {
		return
	}
	rate := float64(elapsed.Microseconds()) / float64(c.params.Size()*steps)
	fmt.Printf("\nRate of execution = %8.5f us/(cell*iteration) over %d iterations\n", rate, steps)
	fmt.Printf("%s\n", utils.GetMemUsage())
}
