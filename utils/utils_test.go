package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPOW(t *testing.T) {
	for p := -10; p <= 10; p++ {
		assert.InEpsilon(t, math.Pow(1.37, float64(p)), POW(1.37, p), 1e-14)
	}
	assert.Equal(t, 1., POW(0, 0))
	assert.Equal(t, 0.125, POW(0.5, 3))
}

func TestSystem(t *testing.T) {
	assert.Equal(t, 0, CountNonFinite(nil))
	assert.Equal(t, 0, CountNonFinite([]float64{0, -1, 1e308}))
	assert.Equal(t, 3, CountNonFinite([]float64{math.NaN(), 1, math.Inf(1), math.Inf(-1)}))
	assert.Contains(t, GetMemUsage(), "Alloc = ")
}
