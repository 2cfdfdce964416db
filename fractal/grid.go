package fractal

import "math"

// Grid is a density histogram image.
//
// Cells is row-major: Height rows of Width columns. After rasterization every
// cell holds ln(1+count), where count is the number of points that landed in it.
type Grid struct {
	Width  int
	Height int
	Cells  []float64
}

// NewGrid creates an all-zero grid. Dimensions below 1 are raised to 1.
func NewGrid(width, height int) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]float64, width*height),
	}
}

// At returns the cell in column x, row y.
func (g *Grid) At(x, y int) float64 {
	return g.Cells[y*g.Width+x]
}

// Row returns row y as a slice sharing the grid storage.
func (g *Grid) Row(y int) []float64 {
	return g.Cells[y*g.Width : (y+1)*g.Width]
}

// Column returns a copy of column x, top to bottom.
func (g *Grid) Column(x int) []float64 {
	var col = make([]float64, g.Height)
	for y := range col {
		col[y] = g.Cells[y*g.Width+x]
	}
	return col
}

// Max returns the largest cell value, 0 for an empty grid.
func (g *Grid) Max() float64 {
	var max float64
	for _, v := range g.Cells {
		if v > max {
			max = v
		}
	}
	return max
}

// Count recovers the raw landing count of a cell.
func (g *Grid) Count(x, y int) int {
	return int(math.Round(math.Expm1(g.At(x, y))))
}

// Total returns the number of points accumulated into the grid.
func (g *Grid) Total() int {
	var total int
	for _, v := range g.Cells {
		total += int(math.Round(math.Expm1(v)))
	}
	return total
}

// Rasterize accumulates points into a width×height density grid.
//
// A point (x, y) lands in column floor(w/2 + x*w/4) mod w and row
// floor(h/2 + y*h/4) mod h. Indices wrap around instead of being clipped, so
// points far outside the visible window alias back onto the grid. Points with
// a non-finite coordinate are skipped. Counts are replaced by ln(1+count).
func Rasterize(points [][2]float64, width, height int) *Grid {
	g := NewGrid(width, height)

	var w, h = float64(g.Width), float64(g.Height)

	for _, p := range points {
		if math.IsNaN(p[0]) || math.IsNaN(p[1]) || math.IsInf(p[0], 0) || math.IsInf(p[1], 0) {
			continue
		}
		x := wrap(math.Floor(w/2+p[0]*w/4), g.Width)
		y := wrap(math.Floor(h/2+p[1]*h/4), g.Height)
		g.Cells[y*g.Width+x]++
	}

	for i := range g.Cells {
		g.Cells[i] = math.Log(1 + g.Cells[i])
	}
	return g
}

// wrap maps an integral float onto [0,n).
func wrap(v float64, n int) int {
	m := math.Mod(v, float64(n))
	if m < 0 {
		m += float64(n)
	}
	i := int(m)
	if i >= n || i < 0 {
		i = 0
	}
	return i
}
