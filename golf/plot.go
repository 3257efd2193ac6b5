package golf

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// CourseGrid exposes a raster as a heat map data set.
type CourseGrid struct {
	Raster *Raster
}

var _ plotter.GridXYZ = &CourseGrid{}

func (c *CourseGrid) Dims() (int, int) {
	return c.Raster.Width(), c.Raster.Height()
}

func (c *CourseGrid) Z(col, row int) float64 {
	return float64(c.Raster.At(col, row))
}

func (c *CourseGrid) X(col int) float64 {
	return float64(col)
}

func (c *CourseGrid) Y(row int) float64 {
	return float64(row)
}

// SavePathPlot draws the course as a heat map with the episode's ball path
// on top and writes the figure to figPath.
func SavePathPlot(env *Env, figPath string) error {
	p := plot.New()
	p.Title.Text = "Ball path"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	p.Add(plotter.NewHeatMap(&CourseGrid{Raster: env.Map().Raster()}, palette.Heat(16, 1)))

	points := make(plotter.XYs, 0, len(env.Path()))
	for _, pos := range env.Path() {
		points = append(points, plotter.XY{X: pos.X, Y: pos.Y})
	}
	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}
	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return err
	}
	p.Add(line, scatter)

	return p.Save(8*vg.Inch, 8*vg.Inch, figPath)
}
