package viz

import (
	"fmt"
	"io"
	"math"

	"github.com/guptarohit/asciigraph"
)

// ASCIIPlot renders a profile as an asciigraph line chart.
type ASCIIPlot struct {
	W       io.Writer
	Width   int
	Height  int
	Caption string
}

func NewASCIIPlot(w io.Writer, caption string) *ASCIIPlot {
	return &ASCIIPlot{W: w, Width: 80, Height: 15, Caption: caption}
}

func (p *ASCIIPlot) Render(_, u []float64) error {
	if len(u) == 0 {
		return fmt.Errorf("viz: nothing to plot")
	}
	lo, hi := Bounds(u)
	graph := asciigraph.Plot(u,
		asciigraph.Height(p.Height),
		asciigraph.Width(p.Width),
		asciigraph.LowerBound(lo),
		asciigraph.UpperBound(hi),
		asciigraph.Caption(p.Caption),
	)
	_, err := fmt.Fprintln(p.W, graph)
	return err
}

// BraillePlot renders a profile on a braille Canvas.
type BraillePlot struct {
	W          io.Writer
	Cols, Rows int
}

func (p *BraillePlot) Render(grid, u []float64) error {
	if len(u) == 0 || len(grid) != len(u) {
		return fmt.Errorf("viz: grid has %d points, profile has %d", len(grid), len(u))
	}
	_, err := io.WriteString(p.W, ProfileCanvas(grid, u, p.Cols, p.Rows).String())
	return err
}

// ProfileCanvas draws u over grid on a new cols×rows canvas.
func ProfileCanvas(grid, u []float64, cols, rows int) *Canvas {
	c := NewCanvas(cols, rows)
	if len(grid) == 0 {
		return c
	}
	lo, hi := Bounds(u)
	c.Curve(grid, u, 0, math.Max(grid[len(grid)-1], 1e-12), lo, hi)
	return c
}

// Bounds returns plot limits covering [0, 1] and all of u.
func Bounds(u []float64) (float64, float64) {
	lo, hi := 0.0, 1.0
	for _, v := range u {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
