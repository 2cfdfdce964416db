package fractal

import "math"
import "time"

const (
	// MaxSeedCount caps the number of seeds per render.
	MaxSeedCount = 100
	// MaxIterationCount caps the trajectory length per seed.
	MaxIterationCount = 2000
	// DefaultSigma is the jitter amplitude applied to every trajectory.
	DefaultSigma = 0.01
)

// Fractal represents the configuration for generating density grids.
type Fractal struct {
	SeedCount     int
	MaxIterations int
	Width         int
	Height        int

	// jitter amplitude applied to every point
	Sigma float64

	// per seed exponents are drawn uniformly from [ExponentMin, ExponentMax)
	ExponentMin float64
	ExponentMax float64
}

// NewFractal creates a new Fractal instance with default values.
func NewFractal() *Fractal {
	return &Fractal{
		SeedCount:     25,
		MaxIterations: 500,
		Width:         500,
		Height:        500,
		Sigma:         DefaultSigma,
		ExponentMin:   1,
		ExponentMax:   3,
	}
}

// Normalize returns a copy of f with every parameter moved into its valid range.
// Out of range values are capped silently.
func (f *Fractal) Normalize() Fractal {
	n := *f
	n.SeedCount = clamp(n.SeedCount, 1, MaxSeedCount)
	n.MaxIterations = clamp(n.MaxIterations, 1, MaxIterationCount)
	if n.Width < 1 {
		n.Width = 1
	}
	if n.Height < 1 {
		n.Height = 1
	}
	if math.IsNaN(n.Sigma) || math.IsInf(n.Sigma, 0) {
		n.Sigma = DefaultSigma
	}
	if math.IsNaN(n.ExponentMin) || math.IsInf(n.ExponentMin, 0) {
		n.ExponentMin = 1
	}
	if math.IsNaN(n.ExponentMax) || math.IsInf(n.ExponentMax, 0) || n.ExponentMax < n.ExponentMin {
		n.ExponentMax = n.ExponentMin
	}
	return n
}

// Points generates the jittered point cloud of one render.
//
// All seeds are drawn first, real part before imaginary part. Then, seed by
// seed, an exponent is drawn and the trajectory is iterated and jittered.
func (f *Fractal) Points(src Source) [][2]float64 {
	if src == nil {
		src = NewSeededSource(uint32(time.Now().UnixNano()))
	}
	n := f.Normalize()

	var seeds = make([]complex128, n.SeedCount)
	for i := range seeds {
		re := src.Float64()*2 - 1
		im := src.Float64()*2 - 1
		seeds[i] = complex(re, im)
	}

	var cloud [][2]float64
	for _, seed := range seeds {
		exponent := n.ExponentMin + src.Float64()*(n.ExponentMax-n.ExponentMin)
		raw := Iterate(src, seed, exponent, n.MaxIterations)
		cloud = append(cloud, Jitter(src, raw, n.Sigma)...)
	}
	return cloud
}

// Generate renders a density grid. A nil src draws from a time seeded stream.
func (f *Fractal) Generate(src Source) *Grid {
	n := f.Normalize()
	return Rasterize(n.Points(src), n.Width, n.Height)
}

// Generate renders a width×height density grid from seedCount trajectories of
// at most maxIterations points, using the default jitter and exponent range.
func Generate(src Source, seedCount, maxIterations, width, height int) *Grid {
	f := NewFractal()
	f.SeedCount = seedCount
	f.MaxIterations = maxIterations
	f.Width = width
	f.Height = height
	return f.Generate(src)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
