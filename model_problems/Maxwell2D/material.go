package Maxwell2D

// Material holds relative permittivity and permeability and the conductivity
// in S/m. Negative Epsilon or Mu are allowed for metamaterial experiments.
type Material struct {
	Epsilon float64 `json:"epsilon"`
	Mu      float64 `json:"mu"`
	Sigma   float64 `json:"sigma"`
}

var Vacuum = Material{Epsilon: 1, Mu: 1, Sigma: 0}

// Coefficients are the per cell update coefficients of the leapfrog scheme.
type Coefficients struct {
	Ca, Cb float64 // Ez self decay and curl drive
	Da, Db float64 // H self decay and curl drive
}
