// Command toflac converts fractal density grids to lossless audio files (FLAC).
//
// This tool works like towav but writes the sonified grid as a 16-bit mono FLAC
// file with verbatim subframes.
//
// Usage:
//
//	toflac [-grid in.f16] [-rate 44100] [-duration 3] [generation flags] <flac_file>
package main
