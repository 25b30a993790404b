package Maxwell2D

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/notargets/gofdtd/utils"
)

type PlotField uint8

const (
	EzField PlotField = iota
	IntensityField
	PoyntingField
)

func (pf PlotField) String() string {
	switch pf {
	case IntensityField:
		return "Intensity"
	case PoyntingField:
		return "Poynting"
	default:
		return "Ez"
	}
}

// Data returns the requested scalar field of the snapshot.
func (fs FieldSnapshot) Data(pf PlotField) []float64 {
	switch pf {
	case IntensityField:
		return fs.Intensity()
	case PoyntingField:
		return fs.Poynting()
	default:
		return fs.ez
	}
}

// fieldGrid exposes a row major field as a plotter.GridXYZ in meters.
type fieldGrid struct {
	nx, ny int
	dx, dy float64
	data   []float64
}

func (g fieldGrid) Dims() (c, r int) { return g.nx, g.ny }
func (g fieldGrid) Z(c, r int) float64 { return g.data[r*g.nx+c] }
func (g fieldGrid) X(c int) float64 { return float64(c) * g.dx }
func (g fieldGrid) Y(r int) float64 { return float64(r) * g.dy }

// SaveHeatmapPNG renders one field of the snapshot as a 300 DPI heatmap.
func SaveHeatmapPNG(fs FieldSnapshot, gp GridParams, pf PlotField, fileName string) (err error) {
	data := fs.Data(pf)
	if n := utils.CountNonFinite(data); n != 0 {
		return fmt.Errorf("unable to plot %s at step %d: %d non-finite values", pf, fs.Step, n)
	}
	g := fieldGrid{nx: fs.Nx, ny: fs.Ny, dx: gp.Dx, dy: gp.Dy, data: data}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s, t = %8.4e s", pf, fs.Time)
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"

	hm := plotter.NewHeatMap(g, moreland.Kindlmann().Palette(255))
	if fMin, fMax := floats.Min(data), floats.Max(data); fMin == fMax {
		// A flat field has no color range
		hm.Min, hm.Max = fMin-1, fMax+1
	}
	p.Add(hm)
	return savePlotPNG(p, 8.0, 6.5, fileName)
}

func savePlotPNG(p *plot.Plot, widthIn, heightIn float64, fileName string) (err error) {
	if err = os.MkdirAll(filepath.Dir(fileName), 0o755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch),
		vgimg.UseDPI(300),
	)
	p.Draw(draw.New(c))

	var f *os.File
	if f, err = os.Create(fileName); err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	if _, err = (vgimg.PngCanvas{Canvas: c}).WriteTo(bw); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	return bw.Flush()
}

// Centerline returns the line segments of Ez along the middle row, scaled to
// meters, as x1,y1,x2,y2 quadruples.
func (fs FieldSnapshot) Centerline(dx float64) (line []float32) {
	j := fs.Ny / 2
	for i := 0; i < fs.Nx-1; i++ {
		ind := j*fs.Nx + i
		line = append(line,
			float32(float64(i)*dx), float32(fs.ez[ind]),
			float32(float64(i+1)*dx), float32(fs.ez[ind+1]),
		)
	}
	return
}

// PlotCenterline opens a chart of Ez along the middle row and blocks.
func PlotCenterline(fs FieldSnapshot, gp GridParams) {
	var (
		line       = fs.Centerline(gp.Dx)
		xMax       = float32(float64(fs.Nx-1) * gp.Dx)
		yMin, yMax = float32(-1), float32(1)
	)
	for i := 1; i < len(line); i += 2 {
		yMin = min(yMin, line[i])
		yMax = max(yMax, line[i])
	}
	if math.IsNaN(float64(yMin)) || math.IsNaN(float64(yMax)) {
		fmt.Printf("unable to chart Ez, the field contains NaN\n")
		return
	}
	ch := chart2d.NewChart2D(0, xMax, 1.1*yMin, 1.1*yMax,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	ch.AddLine(line, utils2.RED)
	select {}
}
