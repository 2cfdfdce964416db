package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/neurlang/fractone/sonify"
)

func main() {
	// Create a new instance of Spectrogram
	var m = sonify.NewSpectrogram()

	flag.IntVar(&m.Window, "hop", m.Window, "hop between frames in samples")
	flag.IntVar(&m.Resolut, "frame", m.Resolut, "frame length in samples")
	flag.BoolVar(&m.YReverse, "reverse", m.YReverse, "low frequencies at the bottom")
	flag.Parse()

	// Check if the filename argument is provided
	if flag.NArg() < 1 {
		fmt.Println("Usage: tospec [flags] <audio_filename>")
		os.Exit(1)
	}

	// Get the filename from the command-line arguments
	var filename = flag.Arg(0)

	var buf sonify.Buffer
	var err error
	if strings.HasSuffix(filename, ".flac") {
		buf, err = sonify.LoadFlac(filename)
	} else {
		buf, err = sonify.LoadWav(filename)
	}
	if err != nil {
		fmt.Printf("Error loading audio: %v\n", err)
		os.Exit(1)
	}

	outputFile := filename + ".png"
	if err := m.ToPng(buf, outputFile); err != nil {
		fmt.Printf("Error generating spectrogram: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: peak at %.1f Hz\n", outputFile, sonify.PeakFrequency(buf))
}
