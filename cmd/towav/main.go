package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/neurlang/fractone/fractal"
	"github.com/neurlang/fractone/sonify"
)

func main() {
	// Create new instances of Fractal and Sonifier
	var f = fractal.NewFractal()
	var s = sonify.NewSonifier()

	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	gridFile := flag.String("grid", "", "sonify this float16 grid instead of rendering a new one")
	flag.IntVar(&f.SeedCount, "seeds", f.SeedCount, "number of seeds (1-100)")
	flag.IntVar(&f.MaxIterations, "iters", f.MaxIterations, "iterations per seed (1-2000)")
	flag.IntVar(&f.Width, "width", f.Width, "grid width, one voice per column")
	flag.IntVar(&f.Height, "height", f.Height, "grid height")
	flag.IntVar(&s.SampleRate, "rate", s.SampleRate, "sample rate in Hz")
	flag.Float64Var(&s.Duration, "duration", s.Duration, "duration in seconds")
	flag.Parse()

	// Check if the filename argument is provided
	if flag.NArg() < 1 {
		fmt.Println("Usage: towav [flags] <wav_filename>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	var outputFile = flag.Arg(0)

	var g *fractal.Grid
	if *gridFile != "" {
		var err error
		g, err = fractal.LoadGrid(*gridFile)
		if err != nil {
			fmt.Printf("Error loading density grid: %v\n", err)
			os.Exit(1)
		}
	} else {
		if *seed == 0 {
			*seed = time.Now().UnixNano()
		}
		g = f.Generate(fractal.NewSeededSource(uint32(*seed)))
	}

	buf := s.Sonify(g)

	if err := sonify.SaveWav(outputFile, buf); err != nil {
		fmt.Printf("Error generating wave from fractal: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d samples, %v, peak at %.1f Hz\n", buf.Len(), buf.Duration(), sonify.PeakFrequency(buf))
}
