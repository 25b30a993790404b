package Maxwell2D

import (
	"fmt"

	"github.com/notargets/gofdtd/InputParameters"
)

// NewSourceFromSpec builds a source from its file level description, id is
// assigned by the caller.
func NewSourceFromSpec(id string, spec InputParameters.SourceSpec) (s Source, err error) {
	var st SourceType
	if st, err = NewSourceType(spec.Type); err != nil {
		return
	}
	s = Source{
		ID:        id,
		X:         spec.X,
		Y:         spec.Y,
		Frequency: spec.Frequency,
		Amplitude: spec.Amplitude,
		Phase:     spec.Phase,
	}
	switch st {
	case DIPOLE:
		s.Kind = Dipole{}
	case PLANE_WAVE:
		s.Kind = PlaneWave{}
	case ANTENNA:
		s.Kind = Antenna{}
	case GAUSSIAN:
		s.Kind = Gaussian{}
	case WIRE:
		s.Kind = Wire{Length: spec.Length, Angle: spec.Angle, Current: spec.Current}
	case POINT_CHARGE:
		s.Kind = PointCharge{Charge: spec.Charge}
	case MAGNET:
		s.Kind = Magnet{Angle: spec.Angle, Polarity: NewPolarity(spec.Polarity)}
	case CURRENT_LOOP:
		s.Kind = CurrentLoop{Radius: spec.Width, Current: spec.Current}
	default:
		err = fmt.Errorf("source type %s has no model", st)
	}
	return
}

// Spec flattens a source back to its file level description.
func (s Source) Spec() (spec InputParameters.SourceSpec) {
	spec = InputParameters.SourceSpec{
		ID:        s.ID,
		X:         s.X,
		Y:         s.Y,
		Frequency: s.Frequency,
		Amplitude: s.Amplitude,
		Phase:     s.Phase,
	}
	if s.Kind == nil {
		return
	}
	spec.Type = s.Kind.Type().String()
	switch k := s.Kind.(type) {
	case Wire:
		spec.Length, spec.Angle, spec.Current = k.Length, k.Angle, k.Current
	case PointCharge:
		spec.Charge = k.Charge
	case Magnet:
		spec.Angle, spec.Polarity = k.Angle, k.Polarity.String()
	case CurrentLoop:
		spec.Width, spec.Current = k.Radius, k.Current
	}
	return
}

func NewObstacleFromSpec(id string, spec InputParameters.ObstacleSpec) Obstacle {
	return Obstacle{
		ID:     id,
		X:      spec.X,
		Y:      spec.Y,
		Width:  spec.Width,
		Height: spec.Height,
		Material: Material{
			Epsilon: spec.Epsilon,
			Mu:      spec.Mu,
			Sigma:   spec.Sigma,
		},
	}
}

// Report is a point in time record for export, the solver does not serialize it.
type Report struct {
	Params       GridParams                   `json:"params"`
	Step         int                          `json:"step"`
	Time         float64                      `json:"time"`
	PMLThickness int                          `json:"pmlThickness"`
	Stats        FieldStats                   `json:"stats"`
	Intensity    []float64                    `json:"intensity"`
	Poynting     []float64                    `json:"poynting"`
	Sources      []InputParameters.SourceSpec `json:"sources"`
	Obstacles    []Obstacle                   `json:"obstacles"`
}

func (c *Solver) Report() (r Report) {
	r = Report{
		Params:       c.params,
		Step:         c.step,
		Time:         c.Time(),
		PMLThickness: c.PMLThickness(),
		Stats:        c.Stats(),
		Intensity:    c.Intensity(),
		Poynting:     c.Poynting(),
		Sources:      make([]InputParameters.SourceSpec, len(c.sources)),
		Obstacles:    c.Obstacles(),
	}
	for i, s := range c.sources {
		r.Sources[i] = s.Spec()
	}
	return
}
