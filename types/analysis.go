package types

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

type DataSet interface{}

type Analyzer func(name string, traces []*Trace) DataSet

type Comparator func(run int, names []string, dataSets []DataSet)

// ReturnCurve computes the running mean of episode returns, one point per
// episode.
func ReturnCurve() Analyzer {
	return func(name string, traces []*Trace) DataSet {
		curve := make([]float64, len(traces))
		sum := 0.0
		for i, trace := range traces {
			sum += trace.Return()
			curve[i] = sum / float64(i+1)
		}
		return curve
	}
}

// ReturnCurvePlotter plots the return curves of the compared experiments
// into one figure per run.
func ReturnCurvePlotter(plotPath string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(run int, names []string, dataSets []DataSet) {
		p := plot.New()
		p.Title.Text = "Comparison"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = "Mean return"
		for i := 0; i < len(names); i++ {
			curve := dataSets[i].([]float64)
			points := make(plotter.XYs, len(curve))
			for j, v := range curve {
				points[j] = plotter.XY{
					X: float64(j),
					Y: v,
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
			fmt.Printf("Final mean return: %.2f for experiment: %s\n", curve[len(curve)-1], names[i])
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_returns.png"))
	}
}
