package fractal

import "math/rand"

// Source is the randomness stream consumed by the generation pipeline.
// *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// Intn returns a uniform integer in [0,n).
	Intn(n int) int
}

// NewSource returns a math/rand backed Source seeded with seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// SeededSource is a Mulberry32 generator. Its stream is stable across Go
// releases, unlike math/rand, so it is what the tools use for -seed.
type SeededSource struct {
	state       uint32
	initialSeed uint32
}

// NewSeededSource creates a new Mulberry32 source.
func NewSeededSource(seed uint32) *SeededSource {
	return &SeededSource{
		state:       seed,
		initialSeed: seed,
	}
}

// Reset rewinds the generator to its initial seed.
func (r *SeededSource) Reset() {
	r.state = r.initialSeed
}

// Float64 returns the next value in [0,1).
func (r *SeededSource) Float64() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Intn returns the next integer in [0,n). It returns 0 when n <= 0.
func (r *SeededSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(r.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}
