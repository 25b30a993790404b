package Maxwell2D

import "math"

const (
	C0   = 299792458.0         // Speed of light in vacuum, m/s
	Mu0  = 4 * math.Pi * 1e-7  // Vacuum permeability, H/m
	Eps0 = 1 / (Mu0 * C0 * C0) // Vacuum permittivity, F/m
)

var (
	Eta0 = math.Sqrt(Mu0 / Eps0) // Free space impedance, Ohm
)

const (
	DefaultPMLThickness = 20
	pmlOrder            = 3
	pmlReflection       = 1e-6
)
