// Command towav converts fractal density grids to audio files (WAV).
//
// This tool renders a new density grid, or loads one saved by topng, and sonifies it:
// every grid column becomes a harmonic voice whose pitch follows the column's mean density.
// The summed voices are peak normalized and written as a 16-bit mono WAV file.
//
// Usage:
//
//	towav [-grid in.f16] [-rate 44100] [-duration 3] [generation flags] <wav_file>
package main
