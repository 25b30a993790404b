/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/ghodss/yaml"
	perf "github.com/hodgesds/perf-utils"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gofdtd/InputParameters"
	"github.com/notargets/gofdtd/model_problems/Maxwell2D"
)

type Model2D struct {
	ICFile     string
	Graph      bool
	GraphField int
	PlotSteps  int
	OutputDir  string
	ReportFile string
	Profile    bool
	Perf       bool
	Delay      time.Duration
}

const exampleFile = `
########################################
Title: "Dipole next to a conducting plate"
Nx: 200
Ny: 200
Dx: 0.001
CFL: 0.9
PMLThickness: 20
Steps: 500
Sources:
  - type: dipole # dipole, plane-wave, antenna, gaussian, wire, point-charge, magnet, current-loop
    x: 60
    y: 100
    frequency: 1.5e10
    amplitude: 1
Obstacles:
  - x: 120
    y: 60
    width: 10
    height: 80
    epsilon: 1
    mu: 1
    sigma: 1.e7
########################################
`

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Two dimensional FDTD solver, reads an experiment file and outputs field plots",
	Long:  `Two dimensional FDTD solver, reads an experiment file and outputs field plots`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("2D called")
		m2d := &Model2D{
			ICFile:     viper.GetString("inputConditionsFile"),
			Graph:      viper.GetBool("graph"),
			GraphField: viper.GetInt("graphField"),
			PlotSteps:  viper.GetInt("plotSteps"),
			OutputDir:  viper.GetString("outputDir"),
			ReportFile: viper.GetString("report"),
			Profile:    viper.GetBool("profile"),
			Perf:       viper.GetBool("perf"),
			Delay:      time.Duration(viper.GetInt("delay")) * time.Millisecond,
		}
		ip, err := processInput(m2d)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = Run2D(m2d, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func processInput(m2d *Model2D) (ip *InputParameters.InputParametersFDTD, err error) {
	if len(m2d.ICFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(m2d.ICFile); err != nil {
		return
	}
	ip = &InputParameters.InputParametersFDTD{}
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", m2d.ICFile, err)
	}
	ip.Print()
	return
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for the experiment: grid, sources and obstacles")
	TwoDCmd.Flags().BoolP("graph", "g", false, "display a chart of Ez along the center row after the run")
	TwoDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay after each progress update")
	TwoDCmd.Flags().IntP("plotSteps", "s", 50, "number of steps between progress lines and plots")
	TwoDCmd.Flags().IntP("graphField", "q", 0, "which field should be plotted - 0=Ez, 1=intensity, 2=Poynting")
	TwoDCmd.Flags().StringP("outputDir", "o", "", "directory for heatmap PNG snapshots, none when empty")
	TwoDCmd.Flags().StringP("report", "r", "", "YAML file for the final state report, none when empty")
	TwoDCmd.Flags().Bool("profile", false, "write a CPU profile of the run")
	TwoDCmd.Flags().Bool("perf", false, "count CPU cycles of the time stepping loop (Linux only)")
	if err := viper.BindPFlags(TwoDCmd.Flags()); err != nil {
		panic(err)
	}
}

func Run2D(m2d *Model2D, ip *InputParameters.InputParametersFDTD) (err error) {
	if m2d.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	var c *Maxwell2D.Solver
	if c, err = Maxwell2D.NewSolverFromInput(ip, true); err != nil {
		return
	}
	pm := &InputParameters.PlotMeta{
		Plot:            m2d.Graph,
		Field:           m2d.GraphField,
		StepsBeforePlot: m2d.PlotSteps,
		OutputDir:       m2d.OutputDir,
		FrameTime:       m2d.Delay,
	}
	var solved bool
	solve := func() error {
		solved = true
		return c.Solve(ip.Steps, pm)
	}
	if m2d.Perf {
		var pv *perf.ProfileValue
		if pv, err = perf.CPUCycles(solve); err != nil && !solved {
			fmt.Printf("perf counters unavailable (%s), running without them\n", err.Error())
			err = solve()
		} else if err == nil {
			fmt.Printf("CPU cycles = %d over %d iterations\n", pv.Value, ip.Steps)
		}
	} else {
		err = solve()
	}
	if err != nil {
		return
	}
	if len(m2d.ReportFile) != 0 {
		if err = writeReport(c, m2d.ReportFile); err != nil {
			return
		}
	}
	if pm.Plot {
		Maxwell2D.PlotCenterline(c.Fields(), c.Params())
	}
	return
}

func writeReport(c *Maxwell2D.Solver, fileName string) (err error) {
	var data []byte
	if data, err = yaml.Marshal(c.Report()); err != nil {
		return fmt.Errorf("unable to encode report: %w", err)
	}
	if err = os.WriteFile(fileName, data, 0o644); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	fmt.Printf("Report written to %s\n", fileName)
	return
}
