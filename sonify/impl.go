package sonify

import "errors"
import "fmt"
import "io"
import "math"
import "os"

import "github.com/faiface/beep"
import "github.com/faiface/beep/wav"
import "github.com/mewkiz/flac"
import "github.com/mewkiz/flac/frame"
import "github.com/mewkiz/flac/meta"

// ErrFileNotLoaded is returned when an audio file cannot be decoded.
var ErrFileNotLoaded = errors.New("wavNotLoaded")

// ErrEmptyBuffer is returned when saving a buffer without samples or sample rate.
var ErrEmptyBuffer = errors.New("emptyBuffer")

const flacBlockSize = 4096

// SaveWav saves the buffer as a 16-bit mono wav file.
func SaveWav(outputFile string, buf Buffer) error {
	return dumpwav(outputFile, buf)
}

// LoadWav loads the first channel of a wav file.
func LoadWav(inputFile string) (Buffer, error) {
	return loadwav(inputFile)
}

// SaveFlac saves the buffer as a 16-bit mono flac file.
func SaveFlac(outputFile string, buf Buffer) error {
	return dumpflac(outputFile, buf)
}

// LoadFlac loads the first channel of a flac file.
func LoadFlac(inputFile string) (Buffer, error) {
	return loadflac(inputFile)
}

func dumpwav(name string, buf Buffer) error {
	if buf.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrEmptyBuffer, buf.SampleRate)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := wav.Encode(f, buf.Streamer(), buf.Format()); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func loadwav(name string) (out Buffer, err error) {
	file, err := os.Open(name)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrFileNotLoaded, err)
	}
	defer file.Close()

	stream, format, err := wav.Decode(file)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrFileNotLoaded, err)
	}
	defer stream.Close()

	out.SampleRate = int(format.SampleRate)

	// beep divides 16-bit pcm by 1<<16-1 when decoding
	var scale float64 = math.MaxInt16
	if format.Precision == 2 {
		scale = 1<<16 - 1
	}

	var samples = make([][2]float64, 512)
	for {
		n, ok := stream.Stream(samples)
		if !ok {
			break
		}
		for _, s := range samples[:n] {
			out.Samples = append(out.Samples, quantize(s[0], scale))
		}
	}
	if err := stream.Err(); err != nil {
		return out, fmt.Errorf("%w: %v", ErrFileNotLoaded, err)
	}
	return out, nil
}

func dumpflac(name string, buf Buffer) error {
	if len(buf.Samples) == 0 || buf.SampleRate <= 0 {
		return ErrEmptyBuffer
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}

	info := &meta.StreamInfo{
		BlockSizeMin:  flacBlockSize,
		BlockSizeMax:  flacBlockSize,
		SampleRate:    uint32(buf.SampleRate),
		NChannels:     1,
		BitsPerSample: 16,
		NSamples:      uint64(len(buf.Samples)),
	}

	enc, err := flac.NewEncoder(f, info)
	if err != nil {
		f.Close()
		return err
	}

	for num, start := 0, 0; start < len(buf.Samples); num, start = num+1, start+flacBlockSize {
		end := start + flacBlockSize
		if end > len(buf.Samples) {
			end = len(buf.Samples)
		}

		var block = make([]int32, end-start)
		for i, s := range buf.Samples[start:end] {
			block[i] = int32(s)
		}

		fr := &frame.Frame{
			Header: frame.Header{
				HasFixedBlockSize: true,
				BlockSize:         uint16(len(block)),
				SampleRate:        uint32(buf.SampleRate),
				Channels:          frame.ChannelsMono,
				BitsPerSample:     16,
				Num:               uint64(num),
			},
			Subframes: []*frame.Subframe{{
				SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
				Samples:   block,
				NSamples:  len(block),
			}},
		}
		if err := enc.WriteFrame(fr); err != nil {
			enc.Close()
			return err
		}
	}

	// closes the file as well
	return enc.Close()
}

func loadflac(name string) (out Buffer, err error) {
	stream, err := flac.Open(name)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrFileNotLoaded, err)
	}
	defer stream.Close()

	out.SampleRate = int(stream.Info.SampleRate)
	shift := int(stream.Info.BitsPerSample) - 16

	for {
		fr, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return out, fmt.Errorf("%w: %v", ErrFileNotLoaded, err)
		}
		for _, s := range fr.Subframes[0].Samples {
			if shift > 0 {
				s >>= uint(shift)
			} else if shift < 0 {
				s <<= uint(-shift)
			}
			out.Samples = append(out.Samples, int16(s))
		}
	}
	return out, nil
}

// quantize maps a decoded sample to int16 by scale, rounding to nearest.
func quantize(v, scale float64) int16 {
	v = math.Round(v * scale)
	if v > math.MaxInt16 {
		v = math.MaxInt16
	}
	if v < math.MinInt16 {
		v = math.MinInt16
	}
	return int16(v)
}

var _ beep.Streamer = (*bufferStreamer)(nil)
