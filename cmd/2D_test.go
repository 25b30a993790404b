package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofdtd/InputParameters"
	"github.com/notargets/gofdtd/model_problems/Maxwell2D"
)

func TestRun2D(t *testing.T) {
	{ // The example file printed on bad usage must parse
		var input InputParameters.InputParametersFDTD
		require.NoError(t, input.Parse([]byte(exampleFile)))
		assert.Equal(t, 200, input.Nx)
		assert.Equal(t, 0.001, input.Dy)
		assert.Equal(t, 500, input.Steps)
		require.Len(t, input.Sources, 1)
		assert.Equal(t, "dipole", input.Sources[0].Type)
		require.Len(t, input.Obstacles, 1)
		assert.Equal(t, 1.e7, input.Obstacles[0].Sigma)
	}
	{ // The example experiment puts its dipole and plate where the file says and radiates
		var input InputParameters.InputParametersFDTD
		require.NoError(t, input.Parse([]byte(exampleFile)))
		assert.Equal(t, 100., input.Sources[0].Y)
		assert.Equal(t, 60., input.Obstacles[0].Y)
		c, err := Maxwell2D.NewSolverFromInput(&input, false)
		require.NoError(t, err)
		src := c.Sources()[0]
		assert.Equal(t, 60., src.X)
		assert.Equal(t, 100., src.Y)
		m, ok := c.MaterialAt(125, 100)
		require.True(t, ok)
		assert.Equal(t, 1.e7, m.Sigma)
		m, _ = c.MaterialAt(125, 50)
		assert.Equal(t, 0., m.Sigma)
		c.Run(30)
		assert.NotEqual(t, 0., c.FieldAt(60, 100).Ez)
		st := c.Stats()
		assert.Greater(t, st.TotalIntensity, 0.)
		assert.Greater(t, st.EzMax, 0.)
	}
	{ // Small run with a report
		fileInput := []byte(`
Title: Test Case
Nx: 40
Ny: 30
Dx: 0.001
CFL: 0.5
PMLThickness: 5
Steps: 12
Sources:
  - type: gaussian
    x: 20
    y: 15
    frequency: 1.e10
    amplitude: 1
  - id: coil
    type: current-loop
    x: 20
    y: 15
    width: 4
    frequency: 1.e10
    amplitude: 0.5
Obstacles:
  - x: 25
    y: 10
    width: 3
    height: 10
    epsilon: 4
    mu: 1
    sigma: 0.
`)
		var input InputParameters.InputParametersFDTD
		require.NoError(t, input.Parse(fileInput))
		dir := t.TempDir()
		m2d := &Model2D{
			PlotSteps:  5,
			ReportFile: filepath.Join(dir, "report.yaml"),
		}
		require.NoError(t, Run2D(m2d, &input))
		data, err := os.ReadFile(m2d.ReportFile)
		require.NoError(t, err)
		var report map[string]interface{}
		require.NoError(t, yaml.Unmarshal(data, &report))
		assert.Equal(t, float64(12), report["step"])
		sources := report["sources"].([]interface{})
		require.Len(t, sources, 2)
		assert.Equal(t, "source-0", sources[0].(map[string]interface{})["id"])
		assert.Equal(t, "coil", sources[1].(map[string]interface{})["id"])
		assert.Equal(t, "current-loop", sources[1].(map[string]interface{})["type"])
		obstacles := report["obstacles"].([]interface{})
		require.Len(t, obstacles, 1)
		assert.Equal(t, "obstacle-0", obstacles[0].(map[string]interface{})["id"])
	}
	{ // Unknown source types are rejected
		input := InputParameters.InputParametersFDTD{Steps: 1}
		input.Defaults()
		input.Nx, input.Ny = 10, 10
		input.Sources = []InputParameters.SourceSpec{{Type: "laser"}}
		assert.Error(t, Run2D(&Model2D{PlotSteps: 1}, &input))
	}
}
