package fractal

// Jitter perturbs every point by sigma*(u-0.5) on each axis, u uniform in [0,1).
// The real part is drawn before the imaginary part. Length and order are kept.
func Jitter(src Source, points []complex128, sigma float64) [][2]float64 {
	var out = make([][2]float64, len(points))
	for i, z := range points {
		x := real(z) + sigma*(src.Float64()-0.5)
		y := imag(z) + sigma*(src.Float64()-0.5)
		out[i] = [2]float64{x, y}
	}
	return out
}
