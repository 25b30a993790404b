package InputParameters

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML experiment file
type InputParametersFDTD struct {
	Title          string         `json:"Title"`
	Nx             int            `json:"Nx"`
	Ny             int            `json:"Ny"`
	Dx             float64        `json:"Dx"`
	Dy             float64        `json:"Dy"`
	Dt             float64        `json:"Dt"`           // 0 derives Dt from CFL
	CFL            float64        `json:"CFL"`          // Fraction of the Courant limit
	PMLThickness   *int           `json:"PMLThickness"` // nil means 20, 0 disables the layer
	Steps          int            `json:"Steps"`
	ParallelDegree int            `json:"ParallelDegree"` // 0 uses every CPU
	Sources        []SourceSpec   `json:"Sources"`
	Obstacles      []ObstacleSpec `json:"Obstacles"`
}

// SourceSpec is the flat, file level description of a source. Fields that do
// not apply to Type are ignored.
type SourceSpec struct {
	ID        string  `json:"id,omitempty"`
	Type      string  `json:"type"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Frequency float64 `json:"frequency"`
	Amplitude float64 `json:"amplitude"`
	Phase     float64 `json:"phase,omitempty"`
	Width     float64 `json:"width,omitempty"` // Loop radius for current-loop
	Length    float64 `json:"length,omitempty"`
	Angle     float64 `json:"angle,omitempty"`
	Charge    float64 `json:"charge,omitempty"`
	Current   float64 `json:"current,omitempty"`
	Polarity  string  `json:"polarity,omitempty"` // N-S or S-N
}

type ObstacleSpec struct {
	ID      string  `json:"id,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Epsilon float64 `json:"epsilon"`
	Mu      float64 `json:"mu"`
	Sigma   float64 `json:"sigma"`
}

// YAML 1.1 reads a bare y key as the boolean true, which reaches the JSON
// decoder as the key "true". SourceSpec and ObstacleSpec accept it as y.
type (
	sourceSpecFields   SourceSpec
	obstacleSpecFields ObstacleSpec
)

func (ss *SourceSpec) UnmarshalJSON(data []byte) (err error) {
	var fields struct {
		sourceSpecFields
		YBool *float64 `json:"true"`
	}
	if err = json.Unmarshal(data, &fields); err != nil {
		return
	}
	*ss = SourceSpec(fields.sourceSpecFields)
	if fields.YBool != nil {
		ss.Y = *fields.YBool
	}
	return
}

func (obs *ObstacleSpec) UnmarshalJSON(data []byte) (err error) {
	var fields struct {
		obstacleSpecFields
		YBool *float64 `json:"true"`
	}
	if err = json.Unmarshal(data, &fields); err != nil {
		return
	}
	*obs = ObstacleSpec(fields.obstacleSpecFields)
	if fields.YBool != nil {
		obs.Y = *fields.YBool
	}
	return
}

// PlotMeta controls progress output, heatmap export and the live chart.
type PlotMeta struct {
	Plot            bool
	Field           int // 0 = Ez, 1 = Intensity, 2 = Poynting
	StepsBeforePlot int
	OutputDir       string
	FrameTime       time.Duration
}

func (ip *InputParametersFDTD) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	ip.Defaults()
	return
}

// Defaults fills in the values an input file may leave out.
func (ip *InputParametersFDTD) Defaults() {
	if ip.Nx == 0 {
		ip.Nx = 200
	}
	if ip.Ny == 0 {
		ip.Ny = 200
	}
	if ip.Dx == 0 {
		ip.Dx = 1e-3
	}
	if ip.Dy == 0 {
		ip.Dy = ip.Dx
	}
	if ip.CFL == 0 {
		ip.CFL = 0.99
	}
	if ip.PMLThickness == nil {
		T := 20
		ip.PMLThickness = &T
	}
	for i := range ip.Obstacles {
		o := &ip.Obstacles[i]
		if o.Epsilon == 0 && o.Mu == 0 && o.Sigma == 0 {
			o.Epsilon, o.Mu = 1, 1
		}
	}
}

func (ip *InputParametersFDTD) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d, %d]\t\t= Nx, Ny\n", ip.Nx, ip.Ny)
	fmt.Printf("[%8.4e, %8.4e]\t= Dx, Dy\n", ip.Dx, ip.Dy)
	if ip.Dt == 0 {
		fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	} else {
		fmt.Printf("%8.4e\t\t= Dt\n", ip.Dt)
	}
	fmt.Printf("[%d]\t\t\t= PML Thickness\n", *ip.PMLThickness)
	fmt.Printf("[%d]\t\t\t= Steps\n", ip.Steps)
	fmt.Printf("[%d]\t\t\t\t= Parallel Degree\n", ip.ParallelDegree)
	for i, s := range ip.Sources {
		fmt.Printf("Sources[%d] = %s at (%g, %g), f = %g Hz, A = %g\n",
			i, s.Type, s.X, s.Y, s.Frequency, s.Amplitude)
	}
	for i, o := range ip.Obstacles {
		fmt.Printf("Obstacles[%d] = [%g, %g, %g x %g] eps = %g, mu = %g, sigma = %g\n",
			i, o.X, o.Y, o.Width, o.Height, o.Epsilon, o.Mu, o.Sigma)
	}
}
