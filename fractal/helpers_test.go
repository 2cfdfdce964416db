package fractal

// scriptedSource replays fixed draws, cycling when exhausted.
type scriptedSource struct {
	floats []float64
	ints   []int

	fi, ii int
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scriptedSource) Intn(n int) int {
	v := s.ints[s.ii%len(s.ints)] % n
	s.ii++
	return v
}
