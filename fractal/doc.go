// Package fractal provides stochastic fractal generation and density rasterization.
//
// This package implements a pipeline that turns random complex seeds into a
// log-compressed density histogram image. It supports:
//   - Iterating a randomly rotated power-law map z = z^λ - c·rot·a/√(1+|c|) per seed
//   - Jittering the resulting point cloud with uniform noise
//   - Toroidal rasterization of the point cloud into a ln(1+count) density grid
//   - Exporting grids as PNG images, float16 dumps and terminal previews
//
// All randomness flows through an explicit Source so renders can be reproduced.
package fractal
