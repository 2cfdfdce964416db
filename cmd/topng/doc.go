// Command topng renders a stochastic fractal density grid to a PNG image.
//
// This tool iterates randomly rotated power-law maps from a batch of random seeds,
// rasterizes the point cloud into a log-compressed density grid and saves it as a
// grayscale PNG image. The grid can also be saved as a float16 dump for towav and toflac.
//
// Usage:
//
//	topng [-seeds 25] [-iters 500] [-width 500] [-height 500] [-seed n] [-grid out.f16] [-preview] <png_file>
package main
