// Package sonify provides additive synthesis of audio from density grids.
//
// This package implements a deterministic mapping from a fractal.Grid to a mono
// 16-bit PCM buffer, where every grid column becomes one harmonic voice. It supports:
//   - Mapping the mean column density to a voice frequency between 220 and 1100 Hz
//   - Harmonic enrichment and slow amplitude modulation of every voice
//   - Peak normalization and quantization to signed 16-bit samples
//   - Writing and reading WAV and FLAC files
//   - Spectral inspection via FFT peak detection and STFT spectrogram images
package sonify
