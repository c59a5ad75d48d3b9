package viz

import (
	"math"
	"strings"
)

const brailleBlank = 0x2800

// Braille cells hold 2x4 dots; dotBits[row][col] is the bit for each dot.
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a character grid addressed in braille sub-pixels, giving a
// resolution of (2·Cols)×(4·Rows) dots.
type Canvas struct {
	Cols, Rows int
	cells      [][]rune
}

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{Cols: cols, Rows: rows, cells: make([][]rune, rows)}
	for i := range c.cells {
		c.cells[i] = make([]rune, cols)
	}
	c.Clear()
	return c
}

// DotsX and DotsY return the canvas size in sub-pixels.
func (c *Canvas) DotsX() int { return 2 * c.Cols }
func (c *Canvas) DotsY() int { return 4 * c.Rows }

func (c *Canvas) Clear() {
	for i := range c.cells {
		for j := range c.cells[i] {
			c.cells[i][j] = brailleBlank
		}
	}
}

// Set lights the dot at (x, y); y grows downward. Out of range dots are
// ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.DotsX() || y >= c.DotsY() {
		return
	}
	c.cells[y/4][x/2] |= dotBits[y%4][x%2]
}

// IsSet reports whether the dot at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x >= c.DotsX() || y >= c.DotsY() {
		return false
	}
	return c.cells[y/4][x/2]&dotBits[y%4][x%2] != 0
}

// Line draws from (x0, y0) to (x1, y1) with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), -absInt(y1-y0)
	sx, sy := 1, 1
	if x1 < x0 {
		sx = -1
	}
	if y1 < y0 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Curve draws the polyline through (xs[i], ys[i]) scaled so that
// [xMin, xMax]×[yMin, yMax] fills the canvas.
func (c *Canvas) Curve(xs, ys []float64, xMin, xMax, yMin, yMax float64) {
	if len(xs) == 0 || len(xs) != len(ys) || xMax <= xMin || yMax <= yMin {
		return
	}
	w, h := float64(c.DotsX()-1), float64(c.DotsY()-1)
	px := func(x float64) int { return int(math.Round((x - xMin) / (xMax - xMin) * w)) }
	py := func(y float64) int { return int(math.Round((yMax - y) / (yMax - yMin) * h)) }

	x0, y0 := px(xs[0]), py(ys[0])
	c.Set(x0, y0)
	for i := 1; i < len(xs); i++ {
		x1, y1 := px(xs[i]), py(ys[i])
		c.Line(x0, y0, x1, y1)
		x0, y0 = x1, y1
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
