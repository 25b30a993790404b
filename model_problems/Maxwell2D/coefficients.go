package Maxwell2D

import "math"

type coefficientMaps struct {
	Ca, Cb, Da, Db []float64
}

func newCoefficientMaps(size int) coefficientMaps {
	return coefficientMaps{
		Ca: make([]float64, size),
		Cb: make([]float64, size),
		Da: make([]float64, size),
		Db: make([]float64, size),
	}
}

func (cm coefficientMaps) get(ind int) Coefficients {
	return Coefficients{Ca: cm.Ca[ind], Cb: cm.Cb[ind], Da: cm.Da[ind], Db: cm.Db[ind]}
}

// compileCoefficients rebuilds every coefficient from the material maps.
// Epsilon = 0 is not trapped here, it yields Inf/NaN coefficients that show up
// in NonFiniteCoefficients.
func (c *Solver) compileCoefficients() {
	var (
		dt = c.params.Dt
		mm = c.materials
		cm = c.coeffs
	)
	for ind := range mm.Epsilon {
		eps := mm.Epsilon[ind] * Eps0
		mu := mm.Mu[ind] * Mu0
		loss := mm.Sigma[ind] * dt / (2 * eps)
		cm.Ca[ind] = (1 - loss) / (1 + loss)
		cm.Cb[ind] = (dt / eps) / (1 + loss)
		cm.Da[ind] = 1
		cm.Db[ind] = dt / mu
	}
}

// NonFiniteCoefficients lists the cell indices whose coefficients are NaN or Inf.
func (c *Solver) NonFiniteCoefficients() (cells []int) {
	cm := c.coeffs
	for ind := range cm.Ca {
		for _, v := range [4]float64{cm.Ca[ind], cm.Cb[ind], cm.Da[ind], cm.Db[ind]} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				cells = append(cells, ind)
				break
			}
		}
	}
	return
}
