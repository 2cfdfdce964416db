package fractal

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterate_ZeroIterations(t *testing.T) {
	out := Iterate(NewSeededSource(1), 0.5+0.5i, 2, 0)
	require.NotNil(t, out)
	require.Empty(t, out)

	out = Iterate(NewSeededSource(1), 0.5+0.5i, 2, -3)
	require.Empty(t, out)
}

func TestIterate_LengthBounded(t *testing.T) {
	src := NewSeededSource(2024)
	for _, n := range []int{1, 2, 17, 500} {
		out := Iterate(src, 0.3-0.7i, 2.4, n)
		require.LessOrEqual(t, len(out), n)
		for _, z := range out {
			require.False(t, isBad(z))
			require.LessOrEqual(t, cmplx.Abs(z), Bailout)
		}
	}
}

func TestIterate_SingleStep(t *testing.T) {
	// rot = i^2 = -1, a = 0.5
	src := &scriptedSource{floats: []float64{0.5}, ints: []int{1}}
	out := Iterate(src, 0.5, 2, 1)
	require.Len(t, out, 1)

	want := 0.25 + 0.25/math.Sqrt(1.5)
	require.InDelta(t, want, real(out[0]), 1e-12)
	require.InDelta(t, 0, imag(out[0]), 1e-12)
}

func TestIterate_Rotations(t *testing.T) {
	tests := []struct {
		name string
		k    int
		rot  complex128
	}{
		{"i", 0, 1i},
		{"minus one", 1, -1},
		{"minus i", 2, -1i},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &scriptedSource{floats: []float64{1}, ints: []int{tt.k}}
			out := Iterate(src, 1, 1, 1)
			require.Len(t, out, 1)

			want := 1 - tt.rot/complex(math.Sqrt2, 0)
			require.InDelta(t, real(want), real(out[0]), 1e-12)
			require.InDelta(t, imag(want), imag(out[0]), 1e-12)
		})
	}
}

func TestIterate_SoftClamp(t *testing.T) {
	src := &scriptedSource{floats: []float64{0}, ints: []int{0}}
	out := Iterate(src, 2000, 2, 3)
	require.Len(t, out, 3)
	require.InDelta(t, 1, cmplx.Abs(out[0]), 1e-12)
}

func TestIterate_OverflowTruncates(t *testing.T) {
	src := &scriptedSource{floats: []float64{0.5}, ints: []int{0}}
	out := Iterate(src, 1e200, 2.5, 10)
	require.Empty(t, out)
}

func TestPow_PrincipalBranch(t *testing.T) {
	require.Equal(t, complex128(0), pow(0, 2.5))

	z := pow(-1, 0.5)
	require.InDelta(t, 0, real(z), 1e-12)
	require.InDelta(t, 1, imag(z), 1e-12)

	z = pow(1i, 2)
	require.InDelta(t, -1, real(z), 1e-12)
	require.InDelta(t, 0, imag(z), 1e-12)
}
