package Maxwell2D

import (
	"fmt"
	"strings"
)

// Source is a soft Ez excitation at cell (floor(X), floor(Y)). Kind selects
// the excitation model and carries its model specific parameters.
type Source struct {
	ID        string
	X, Y      float64 // Grid cell coordinates
	Frequency float64 // Hz
	Amplitude float64
	Phase     float64 // radians
	Kind      SourceKind
}

// SourceKind is implemented only by the excitation models in this package.
type SourceKind interface {
	Type() SourceType
	isSourceKind()
}

type SourceType uint8

const (
	DIPOLE SourceType = iota
	PLANE_WAVE
	ANTENNA
	GAUSSIAN
	WIRE
	POINT_CHARGE
	MAGNET
	CURRENT_LOOP
)

var sourceTypeNames = []string{
	"dipole",
	"plane-wave",
	"antenna",
	"gaussian",
	"wire",
	"point-charge",
	"magnet",
	"current-loop",
}

func (st SourceType) String() string {
	if int(st) < len(sourceTypeNames) {
		return sourceTypeNames[st]
	}
	return fmt.Sprintf("SourceType(%d)", st)
}

func NewSourceType(label string) (st SourceType, err error) {
	label = strings.ToLower(strings.TrimSpace(label))
	for i, name := range sourceTypeNames {
		if label == name {
			return SourceType(i), nil
		}
	}
	err = fmt.Errorf("unknown source type %q, must be one of %s",
		label, strings.Join(sourceTypeNames, ", "))
	return
}

type (
	Dipole    struct{}
	PlaneWave struct{} // Single point soft source, not a plane front
	Antenna   struct{}
	Gaussian  struct{} // Envelope centered at 3/f with width 1/f
	Wire      struct {
		Length  float64 // cells, 0 means 20
		Angle   float64 // radians
		Current float64 // 0 means 1
	}
	PointCharge struct {
		Charge float64 // 0 means 1e-9
	}
	Magnet struct {
		Angle    float64 // radians
		Polarity Polarity
	}
	CurrentLoop struct {
		Radius  float64 // cells, 0 means 10
		Current float64 // 0 means 1
	}
)

// Polarity of a magnet, only N-S drives with a positive sign. The zero value
// is SouthNorth, so an unset polarity behaves like any label other than N-S.
type Polarity uint8

const (
	SouthNorth Polarity = iota
	NorthSouth
)

func NewPolarity(label string) Polarity {
	if strings.EqualFold(strings.TrimSpace(label), "N-S") {
		return NorthSouth
	}
	return SouthNorth
}

func (p Polarity) String() string {
	if p == NorthSouth {
		return "N-S"
	}
	return "S-N"
}

func (p Polarity) sign() float64 {
	if p == NorthSouth {
		return 1
	}
	return -1
}

func (Dipole) Type() SourceType      { return DIPOLE }
func (PlaneWave) Type() SourceType   { return PLANE_WAVE }
func (Antenna) Type() SourceType     { return ANTENNA }
func (Gaussian) Type() SourceType    { return GAUSSIAN }
func (Wire) Type() SourceType        { return WIRE }
func (PointCharge) Type() SourceType { return POINT_CHARGE }
func (Magnet) Type() SourceType      { return MAGNET }
func (CurrentLoop) Type() SourceType { return CURRENT_LOOP }

func (Dipole) isSourceKind()      {}
func (PlaneWave) isSourceKind()   {}
func (Antenna) isSourceKind()     {}
func (Gaussian) isSourceKind()    {}
func (Wire) isSourceKind()        {}
func (PointCharge) isSourceKind() {}
func (Magnet) isSourceKind()      {}
func (CurrentLoop) isSourceKind() {}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func (w Wire) withDefaults() Wire {
	w.Length = orDefault(w.Length, 20)
	w.Current = orDefault(w.Current, 1)
	return w
}

func (pc PointCharge) withDefaults() PointCharge {
	pc.Charge = orDefault(pc.Charge, 1e-9)
	return pc
}

func (cl CurrentLoop) withDefaults() CurrentLoop {
	cl.Radius = orDefault(cl.Radius, 10)
	cl.Current = orDefault(cl.Current, 1)
	return cl
}

// SourceUpdate carries the fields to merge into an existing source, nil fields
// are left alone. A non nil Kind replaces the whole model payload, so changing
// one payload field (say Wire.Angle) means passing the full Wire with the
// other fields copied from Sources().
type SourceUpdate struct {
	X, Y      *float64
	Frequency *float64
	Amplitude *float64
	Phase     *float64
	Kind      SourceKind
}

func (su SourceUpdate) apply(s *Source) {
	for _, f := range []struct {
		src *float64
		dst *float64
	}{
		{su.X, &s.X},
		{su.Y, &s.Y},
		{su.Frequency, &s.Frequency},
		{su.Amplitude, &s.Amplitude},
		{su.Phase, &s.Phase},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
	if su.Kind != nil {
		s.Kind = su.Kind
	}
}

func (c *Solver) AddSource(s Source) {
	if s.Kind == nil {
		s.Kind = Dipole{}
	}
	c.sources = append(c.sources, s)
}

func (c *Solver) RemoveSource(id string) {
	kept := c.sources[:0]
	for _, s := range c.sources {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	c.sources = kept
}

// UpdateSource merges su into the source with the given id in place. It
// reports whether the id was found.
func (c *Solver) UpdateSource(id string, su SourceUpdate) (found bool) {
	for i := range c.sources {
		if c.sources[i].ID == id {
			su.apply(&c.sources[i])
			found = true
		}
	}
	return
}
