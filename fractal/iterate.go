package fractal

import "math"
import "math/cmplx"

// Bailout is the magnitude above which an iterate is rescaled to the unit circle.
const Bailout = 1e6

// rotations holds i^1, i^2 and i^3 exactly.
var rotations = [3]complex128{1i, -1, -1i}

// Iterate runs the randomized recurrence for one seed and returns the visited points.
//
// Each step draws a rotation from {i, -1, -i} and a scale a in [0,1) from src,
// then computes z = z^exponent - seed*rot*a/sqrt(1+|seed|). Points whose
// magnitude exceeds Bailout are divided by their magnitude. The trajectory
// ends early when the recurrence overflows; the points gathered so far are kept.
func Iterate(src Source, seed complex128, exponent float64, maxIterations int) []complex128 {
	if maxIterations <= 0 {
		return []complex128{}
	}

	var out = make([]complex128, 0, maxIterations)
	var damp = complex(math.Sqrt(1+cmplx.Abs(seed)), 0)

	z := seed
	for i := 0; i < maxIterations; i++ {
		rot := rotations[src.Intn(len(rotations))]
		a := src.Float64()

		z = pow(z, exponent) - seed*rot*complex(a, 0)/damp
		if isBad(z) {
			break
		}

		abs := cmplx.Abs(z)
		if math.IsInf(abs, 0) {
			break
		}
		if abs > Bailout {
			z /= complex(abs, 0)
		}

		out = append(out, z)
	}
	return out
}

// pow raises z to a real power on the principal branch using polar form.
func pow(z complex128, exponent float64) complex128 {
	if z == 0 {
		return 0
	}
	r, theta := cmplx.Polar(z)
	return cmplx.Rect(math.Pow(r, exponent), theta*exponent)
}

func isBad(z complex128) bool {
	return math.IsNaN(real(z)) || math.IsNaN(imag(z)) ||
		math.IsInf(real(z), 0) || math.IsInf(imag(z), 0)
}
