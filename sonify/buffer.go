package sonify

import "math"
import "time"

import "github.com/faiface/beep"

// Buffer is a mono signed 16-bit PCM signal.
type Buffer struct {
	Samples    []int16
	SampleRate int
}

// Len returns the number of samples.
func (b Buffer) Len() int {
	return len(b.Samples)
}

// Duration returns the playing time of the buffer.
func (b Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(b.Samples)) * time.Second / time.Duration(b.SampleRate)
}

// Float64 returns the samples scaled to [-1,1].
func (b Buffer) Float64() []float64 {
	var out = make([]float64, len(b.Samples))
	for i, s := range b.Samples {
		out[i] = float64(s) / math.MaxInt16
	}
	return out
}

// Peak returns the largest absolute sample value.
func (b Buffer) Peak() int {
	var peak int
	for _, s := range b.Samples {
		v := int(s)
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}

// Format returns the beep format matching the buffer.
func (b Buffer) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(b.SampleRate),
		NumChannels: 1,
		Precision:   2,
	}
}

// Streamer returns a beep streamer playing the buffer on both channels.
func (b Buffer) Streamer() beep.StreamSeeker {
	return &bufferStreamer{buf: b}
}

type bufferStreamer struct {
	buf Buffer
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf.Samples) {
		return 0, false
	}
	for n < len(samples) && s.pos < len(s.buf.Samples) {
		v := float64(s.buf.Samples[s.pos]) / math.MaxInt16
		samples[n] = [2]float64{v, v}
		n++
		s.pos++
	}
	return n, true
}

func (s *bufferStreamer) Err() error {
	return nil
}

func (s *bufferStreamer) Len() int {
	return len(s.buf.Samples)
}

func (s *bufferStreamer) Position() int {
	return s.pos
}

func (s *bufferStreamer) Seek(p int) error {
	if p < 0 {
		p = 0
	}
	if p > len(s.buf.Samples) {
		p = len(s.buf.Samples)
	}
	s.pos = p
	return nil
}
