package fractal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_Clamps(t *testing.T) {
	f := NewFractal()
	f.SeedCount = 1000
	f.MaxIterations = -5
	f.Width = 0
	f.Height = -1
	f.Sigma = math.NaN()

	n := f.Normalize()
	require.Equal(t, MaxSeedCount, n.SeedCount)
	require.Equal(t, 1, n.MaxIterations)
	require.Equal(t, 1, n.Width)
	require.Equal(t, 1, n.Height)
	require.Equal(t, DefaultSigma, n.Sigma)

	// the receiver is left untouched
	require.Equal(t, 1000, f.SeedCount)

	f = NewFractal()
	f.SeedCount = 0
	f.MaxIterations = 1e6
	n = f.Normalize()
	require.Equal(t, 1, n.SeedCount)
	require.Equal(t, MaxIterationCount, n.MaxIterations)
}

func TestGenerate_Dimensions(t *testing.T) {
	tests := []struct {
		seeds, iters, w, h int
	}{
		{1, 1, 4, 4},
		{25, 500, 64, 48},
		{100, 2000, 16, 32},
		{500, 9000, 8, 8},
		{-1, 0, 5, 3},
	}
	for _, tt := range tests {
		g := Generate(NewSeededSource(42), tt.seeds, tt.iters, tt.w, tt.h)
		require.Equal(t, tt.w, g.Width)
		require.Equal(t, tt.h, g.Height)
		require.Len(t, g.Cells, tt.w*tt.h)
		for _, v := range g.Cells {
			require.GreaterOrEqual(t, v, 0.0)
		}
	}
}

func TestGenerate_SingleSeedSingleIteration(t *testing.T) {
	// every draw is 0.5: seed 0, exponent 2, jitter 0
	src := &scriptedSource{floats: []float64{0.5}, ints: []int{0}}
	g := Generate(src, 1, 1, 4, 4)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x == 2 && y == 2 {
				require.InDelta(t, math.Log(2), g.At(x, y), 1e-15)
			} else {
				require.Equal(t, 0.0, g.At(x, y))
			}
		}
	}
}

func TestGenerate_OnePointPerSeed(t *testing.T) {
	src := &scriptedSource{floats: []float64{0.75, 0.1, 0.6, 0.3, 0.9}, ints: []int{2, 0, 1}}
	g := Generate(src, 1, 1, 4, 4)
	require.Equal(t, 1, g.Total())

	var lit int
	for _, v := range g.Cells {
		if v != 0 {
			lit++
			require.InDelta(t, math.Log(2), v, 1e-15)
		}
	}
	require.Equal(t, 1, lit)
}

func TestPoints_Count(t *testing.T) {
	f := NewFractal()
	f.SeedCount = 3
	f.MaxIterations = 40
	points := f.Points(NewSeededSource(11))
	require.LessOrEqual(t, len(points), 3*40)
	require.NotEmpty(t, points)

	g := Rasterize(points, 32, 32)
	require.Equal(t, len(points), g.Total())
}

func TestGenerate_Reproducible(t *testing.T) {
	a := Generate(NewSeededSource(7), 10, 300, 40, 30)
	b := Generate(NewSeededSource(7), 10, 300, 40, 30)
	require.Equal(t, a.Cells, b.Cells)

	c := Generate(NewSeededSource(8), 10, 300, 40, 30)
	require.NotEqual(t, a.Cells, c.Cells)
}

func TestGenerate_NilSource(t *testing.T) {
	g := NewFractal()
	g.Width, g.Height = 10, 10
	g.SeedCount, g.MaxIterations = 2, 10
	out := g.Generate(nil)
	require.Equal(t, 10, out.Width)
	require.LessOrEqual(t, out.Total(), 20)
}

func TestNormalize_ExponentRange(t *testing.T) {
	f := NewFractal()
	f.ExponentMin, f.ExponentMax = 2, 1
	n := f.Normalize()
	require.Equal(t, 2.0, n.ExponentMax)

	src := &scriptedSource{floats: []float64{0.5}, ints: []int{0}}
	f.SeedCount, f.MaxIterations, f.Width, f.Height = 1, 1, 4, 4
	g := f.Generate(src)
	require.Equal(t, 1, g.Total())
}
