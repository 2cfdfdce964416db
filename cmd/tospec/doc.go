// Command tospec converts audio files (WAV/FLAC) to spectrogram images (PNG).
//
// This tool computes a short-time Fourier transform of the audio, saves the log
// magnitude as a grayscale PNG image and reports the dominant frequency. It is
// handy for checking what towav and toflac produced.
//
// Usage:
//
//	tospec [-hop 256] [-frame 2048] <audio_file>
//
// The output PNG file will be named <audio_file>.png
//
// Supported input formats: .wav, .flac
package main
