package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ImagePlot saves a profile with gonum/plot. The format follows the file
// extension of Path (.png, .svg, .pdf, ...).
type ImagePlot struct {
	Path  string
	Title string
	Size  vg.Length
}

func NewImagePlot(path, title string) *ImagePlot {
	return &ImagePlot{Path: path, Title: title, Size: 6 * vg.Inch}
}

func (p *ImagePlot) Render(grid, u []float64) error {
	if len(u) == 0 || len(grid) != len(u) {
		return fmt.Errorf("viz: grid has %d points, profile has %d", len(grid), len(u))
	}

	pl := plot.New()
	pl.Title.Text = p.Title
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "u"
	pl.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(u))
	for i := range u {
		pts[i].X = grid[i]
		pts[i].Y = u[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 220, A: 255}
	line.Width = vg.Points(1.5)
	pl.Add(line)

	lo, hi := Bounds(u)
	pl.X.Min, pl.X.Max = 0, grid[len(grid)-1]
	pl.Y.Min, pl.Y.Max = lo, hi

	size := p.Size
	if size <= 0 {
		size = 6 * vg.Inch
	}
	return pl.Save(size, size, p.Path)
}
