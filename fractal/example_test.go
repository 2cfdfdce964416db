package fractal_test

import (
	"fmt"

	"github.com/neurlang/fractone/fractal"
)

// ExampleRasterize shows the toroidal mapping: a point four units to the right
// lands in the same column as the origin.
func ExampleRasterize() {
	points := [][2]float64{{0, 0}, {4, 0}, {-1, 1}}
	g := fractal.Rasterize(points, 4, 4)

	fmt.Println(g.Count(2, 2), g.Count(1, 3), g.Total())
	// Output:
	// 2 1 3
}

// ExampleFractal_Generate renders a small reproducible grid.
func ExampleFractal_Generate() {
	f := fractal.NewFractal()
	f.SeedCount = 4
	f.MaxIterations = 50
	f.Width, f.Height = 16, 8

	g := f.Generate(fractal.NewSeededSource(1))
	fmt.Println(g.Width, g.Height, len(g.Cells))
	// Output:
	// 16 8 128
}
