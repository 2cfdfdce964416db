package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/neurlang/fractone/fractal"
	"golang.org/x/term"
)

func main() {
	// Create a new instance of Fractal
	var f = fractal.NewFractal()

	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	gridFile := flag.String("grid", "", "also save the density grid as float16 to this file")
	reverse := flag.Bool("reverse", false, "flip the image vertically")
	preview := flag.Bool("preview", false, "print a terminal preview of the grid")
	flag.IntVar(&f.SeedCount, "seeds", f.SeedCount, "number of seeds (1-100)")
	flag.IntVar(&f.MaxIterations, "iters", f.MaxIterations, "iterations per seed (1-2000)")
	flag.IntVar(&f.Width, "width", f.Width, "image width")
	flag.IntVar(&f.Height, "height", f.Height, "image height")
	flag.Parse()

	// Check if the filename argument is provided
	if flag.NArg() < 1 {
		fmt.Println("Usage: topng [flags] <png_filename>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	var outputFile = flag.Arg(0)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	g := f.Generate(fractal.NewSeededSource(uint32(*seed)))

	if err := fractal.SavePng(outputFile, g, *reverse); err != nil {
		fmt.Printf("Error saving fractal image: %v\n", err)
		os.Exit(1)
	}

	if *gridFile != "" {
		if err := fractal.SaveGrid(*gridFile, g); err != nil {
			fmt.Printf("Error saving density grid: %v\n", err)
			os.Exit(1)
		}
	}

	if *preview {
		cols, rows := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			cols, rows = w, h-1
		}
		fmt.Print(fractal.ASCII(g, cols, rows))
	}

	fmt.Printf("seed %d: %dx%d, %d points\n", uint32(*seed), g.Width, g.Height, g.Total())
}
