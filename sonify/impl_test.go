package sonify

import (
	"path/filepath"
	"testing"

	"github.com/neurlang/fractone/fractal"
	"github.com/stretchr/testify/require"
)

func testBuffer(t *testing.T, rate int, duration float64) Buffer {
	t.Helper()
	g := fractal.Generate(fractal.NewSeededSource(21), 4, 200, 16, 16)
	buf := Sonify(g, rate, duration)
	require.NotZero(t, buf.Peak())
	return buf
}

func TestWav_RoundTrip(t *testing.T) {
	buf := testBuffer(t, 8000, 0.3)
	path := filepath.Join(t.TempDir(), "out.wav")

	require.NoError(t, SaveWav(path, buf))

	back, err := LoadWav(path)
	require.NoError(t, err)
	require.Equal(t, buf.SampleRate, back.SampleRate)
	require.Len(t, back.Samples, len(buf.Samples))
	for i := range buf.Samples {
		require.InDelta(t, buf.Samples[i], back.Samples[i], 1)
	}
}

func TestFlac_RoundTrip(t *testing.T) {
	buf := testBuffer(t, 8000, 1.1)
	require.Greater(t, len(buf.Samples), flacBlockSize)
	path := filepath.Join(t.TempDir(), "out.flac")

	require.NoError(t, SaveFlac(path, buf))

	back, err := LoadFlac(path)
	require.NoError(t, err)
	require.Equal(t, buf.SampleRate, back.SampleRate)
	require.Equal(t, buf.Samples, back.Samples)
}

func TestSave_EmptyBuffer(t *testing.T) {
	dir := t.TempDir()
	require.ErrorIs(t, SaveFlac(filepath.Join(dir, "a.flac"), Buffer{SampleRate: 8000}), ErrEmptyBuffer)
	require.ErrorIs(t, SaveWav(filepath.Join(dir, "a.wav"), Buffer{Samples: []int16{1}}), ErrEmptyBuffer)
}

func TestLoad_Missing(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadWav(filepath.Join(dir, "missing.wav"))
	require.ErrorIs(t, err, ErrFileNotLoaded)
	_, err = LoadFlac(filepath.Join(dir, "missing.flac"))
	require.ErrorIs(t, err, ErrFileNotLoaded)
}

func TestWav_RoundTripFullScale(t *testing.T) {
	buf := Buffer{Samples: []int16{16000, -16000, 32767, -32767, 1, 0}, SampleRate: 8000}
	path := filepath.Join(t.TempDir(), "full.wav")

	require.NoError(t, SaveWav(path, buf))

	back, err := LoadWav(path)
	require.NoError(t, err)
	require.Len(t, back.Samples, len(buf.Samples))
	for i := range buf.Samples {
		require.InDelta(t, buf.Samples[i], back.Samples[i], 1, "sample %d", i)
	}
	require.InDelta(t, 32767, back.Peak(), 1)
}

func TestQuantize(t *testing.T) {
	require.Equal(t, int16(32767), quantize(1, 32767))
	require.Equal(t, int16(32767), quantize(2, 32767))
	require.Equal(t, int16(-32768), quantize(-2, 32767))
	require.Equal(t, int16(0), quantize(0, 32767))
	require.Equal(t, int16(16384), quantize(0.5, 32767))
	require.Equal(t, int16(16000), quantize(16000.0/65535, 65535))
	require.Equal(t, int16(32767), quantize(1, 65535))
}
