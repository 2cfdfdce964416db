package sonify

import "math"

import "github.com/neurlang/fractone/fractal"

// MaxLength caps the number of samples one Sonify call produces,
// about 12.7 minutes at 44100 Hz.
const MaxLength = 1 << 25

// Sonifier represents the configuration for turning grids into sound.
type Sonifier struct {
	SampleRate int
	// length of the output in seconds
	Duration float64

	// voice frequency is BaseFreq + mean(normalized column) * FreqRange
	BaseFreq  float64
	FreqRange float64

	// overtones added to every voice at 1/n amplitude
	Harmonics []int

	// rate of the 0.5+0.5*sin amplitude envelope in Hz
	EnvelopeRate float64
}

// NewSonifier creates a new Sonifier instance with default values.
func NewSonifier() *Sonifier {
	return &Sonifier{
		SampleRate:   44100,
		Duration:     3,
		BaseFreq:     220,
		FreqRange:    880,
		Harmonics:    []int{2, 3, 4},
		EnvelopeRate: 0.1,
	}
}

// Sonify synthesizes duration seconds of audio at sampleRate from the grid
// using the default voice settings.
func Sonify(g *fractal.Grid, sampleRate int, duration float64) Buffer {
	s := NewSonifier()
	s.SampleRate = sampleRate
	s.Duration = duration
	return s.Sonify(g)
}

// Length returns the number of samples Sonify produces, round(SampleRate*Duration)
// capped at MaxLength.
func (s *Sonifier) Length() int {
	if s.SampleRate <= 0 || !(s.Duration > 0) || math.IsInf(s.Duration, 0) {
		return 0
	}
	n := math.Round(float64(s.SampleRate) * s.Duration)
	if n > MaxLength {
		return MaxLength
	}
	return int(n)
}

// Frequencies returns the voice frequency of every grid column, or nil when
// the grid carries no energy. Column x is the line of cells the rasterizer
// fills for a given X, so there are Width voices.
func (s *Sonifier) Frequencies(g *fractal.Grid) []float64 {
	if g == nil || len(g.Cells) == 0 {
		return nil
	}
	max := g.Max()
	if !(max > 0) || math.IsInf(max, 0) {
		return nil
	}

	var freqs = make([]float64, g.Width)
	for x := range freqs {
		var sum float64
		for _, v := range g.Column(x) {
			sum += v / max
		}
		freqs[x] = s.BaseFreq + sum/float64(g.Height)*s.FreqRange
	}
	return freqs
}

// Sonify synthesizes a buffer from the grid.
//
// Every column contributes a voice: a sine at the column frequency plus the
// configured harmonics, shaped by the amplitude envelope. Voices are summed,
// normalized to the peak and quantized to int16. A grid without energy gives
// Length() zero samples.
func (s *Sonifier) Sonify(g *fractal.Grid) Buffer {
	n := s.Length()
	buf := Buffer{Samples: make([]int16, n), SampleRate: s.SampleRate}

	freqs := s.Frequencies(g)
	if n == 0 || len(freqs) == 0 {
		return buf
	}

	// columns sharing a frequency are synthesized once
	var order []float64
	var voices = make(map[float64]int)
	for _, f := range freqs {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		if voices[f] == 0 {
			order = append(order, f)
		}
		voices[f]++
	}

	var signal = make([]float64, n)
	// a capped buffer holds the start of the full signal
	var step = s.Duration / math.Round(float64(s.SampleRate)*s.Duration)
	for _, f := range order {
		count := float64(voices[f])
		for i := range signal {
			signal[i] += count * s.voice(f, float64(i)*step)
		}
	}

	var peak float64
	for i := range signal {
		signal[i] *= s.envelope(float64(i) * step)
		if a := math.Abs(signal[i]); a > peak {
			peak = a
		}
	}
	if !(peak > 0) || math.IsInf(peak, 0) {
		return buf
	}

	for i, v := range signal {
		buf.Samples[i] = int16(v / peak * math.MaxInt16)
	}
	return buf
}

// voice is the unenveloped waveform of one column at time t.
func (s *Sonifier) voice(freq, t float64) float64 {
	v := math.Sin(2 * math.Pi * freq * t)
	for _, h := range s.Harmonics {
		if h <= 0 {
			continue
		}
		v += math.Sin(2*math.Pi*float64(h)*freq*t) / float64(h)
	}
	return v
}

func (s *Sonifier) envelope(t float64) float64 {
	return 0.5 + 0.5*math.Sin(2*math.Pi*s.EnvelopeRate*t)
}
