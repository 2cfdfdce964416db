package sonify

import "image"
import "image/color"
import "image/png"
import "math"
import "math/cmplx"
import "os"

import "github.com/mjibson/go-dsp/fft"
import "github.com/r9y9/gossp/stft"

// PeakFrequency returns the frequency in Hz of the strongest non-DC bin of
// the buffer's magnitude spectrum, or 0 when there is nothing to analyze.
func PeakFrequency(buf Buffer) float64 {
	n := len(buf.Samples)
	if n < 2 || buf.SampleRate <= 0 {
		return 0
	}

	spectrum := fft.FFTReal(buf.Float64())

	var best int
	var bestMag float64
	for k := 1; k <= n/2; k++ {
		if mag := cmplx.Abs(spectrum[k]); mag > bestMag {
			best, bestMag = k, mag
		}
	}
	return float64(best) * float64(buf.SampleRate) / float64(n)
}

// Spectrogram represents the configuration for STFT analysis of a buffer.
type Spectrogram struct {
	// hop between frames in samples
	Window int
	// frame length in samples
	Resolut  int
	YReverse bool
}

// NewSpectrogram creates a new Spectrogram instance with default values.
func NewSpectrogram() *Spectrogram {
	return &Spectrogram{
		Window:   256,
		Resolut:  2048,
		YReverse: true,
	}
}

// Compute returns log-magnitude frames, each holding Resolut/2 bins.
func (m *Spectrogram) Compute(buf Buffer) [][]float64 {
	if len(buf.Samples) == 0 || m.Window <= 0 || m.Resolut <= 1 {
		return nil
	}

	stft := stft.New(m.Window, m.Resolut)

	spectrum := stft.STFT(pad(buf.Float64(), m.Resolut))

	var frames = make([][]float64, len(spectrum))
	for i := range spectrum {
		frames[i] = make([]float64, m.Resolut/2)
		for j := range frames[i] {
			mag := cmplx.Abs(spectrum[i][j])
			if mag < 1e-5 {
				mag = 1e-5
			}
			frames[i][j] = math.Log(mag)
		}
	}
	return frames
}

// ToPng computes the spectrogram of buf and saves it as a grayscale PNG image,
// one column per frame.
func (m *Spectrogram) ToPng(buf Buffer, outputFile string) error {
	frames := m.Compute(buf)
	if len(frames) == 0 {
		return ErrEmptyBuffer
	}
	return dumpimage(outputFile, frames, m.YReverse)
}

func dumpimage(name string, frames [][]float64, reverse bool) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	stride := len(frames)
	bins := len(frames[0])

	img := image.NewGray(image.Rect(0, 0, stride, bins))

	var mgc_max, mgc_min = math.Inf(-1), math.Inf(1)
	for x := range frames {
		for _, w := range frames[x] {
			if w > mgc_max {
				mgc_max = w
			}
			if w < mgc_min {
				mgc_min = w
			}
		}
	}
	var span = mgc_max - mgc_min
	if span <= 0 {
		span = 1
	}

	for x := 0; x < stride; x++ {
		for y := 0; y < bins; y++ {
			val := (frames[x][y] - mgc_min) / span
			col := color.Gray{Y: uint8(255 * val)}
			if reverse {
				img.SetGray(x, bins-y-1, col)
			} else {
				img.SetGray(x, y, col)
			}
		}
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// pad extends buf with trailing zeros to at least one frame.
func pad(buf []float64, frame int) []float64 {
	for len(buf) < frame {
		buf = append(buf, 0)
	}
	return buf
}
