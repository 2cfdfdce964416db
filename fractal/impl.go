package fractal

import "bufio"
import "encoding/binary"
import "errors"
import "fmt"
import "image"
import "image/color"
import "image/png"
import "io"
import "os"
import "strings"

import "github.com/x448/float16"

// ErrGridNotLoaded is returned when a grid file cannot be read.
var ErrGridNotLoaded = errors.New("gridNotLoaded")

// ErrBadGridHeader is returned when a grid file does not start with a valid header.
var ErrBadGridHeader = errors.New("badGridHeader")

var gridMagic = [4]byte{'F', '1', '6', 'G'}

// densityRamp orders glyphs from empty to dense.
var densityRamp = []byte(" .:-=+*#%@")

// SavePng saves the grid as a grayscale PNG scaled by the grid maximum.
func SavePng(outputFile string, g *Grid, reverse bool) error {
	return dumpimage(outputFile, g, reverse)
}

// SaveGrid saves the grid as a float16 dump that LoadGrid reads back.
func SaveGrid(outputFile string, g *Grid) error {
	return dumpgrid(outputFile, g)
}

// LoadGrid loads a grid saved by SaveGrid.
func LoadGrid(inputFile string) (*Grid, error) {
	return loadgrid(inputFile)
}

// Image returns the cells as float16 bit patterns, row-major.
func (g *Grid) Image() []uint16 {
	return dumpbuffer(g.Cells)
}

// Gray converts the grid to an 8-bit image, 255*cell/max. An empty grid is black.
func (g *Grid) Gray(reverse bool) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))

	max := g.Max()
	if max <= 0 {
		return img
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			col := color.Gray{Y: uint8(255 * g.At(x, y) / max)}
			if reverse {
				img.SetGray(x, g.Height-y-1, col)
			} else {
				img.SetGray(x, y, col)
			}
		}
	}
	return img
}

// ASCII renders a cols×rows preview of the grid using a density ramp.
// Each glyph shows the densest cell of the block it covers.
func ASCII(g *Grid, cols, rows int) string {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols > g.Width {
		cols = g.Width
	}
	if rows > g.Height {
		rows = g.Height
	}

	max := g.Max()

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		y0, y1 := r*g.Height/rows, (r+1)*g.Height/rows
		for c := 0; c < cols; c++ {
			x0, x1 := c*g.Width/cols, (c+1)*g.Width/cols

			var peak float64
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					if v := g.At(x, y); v > peak {
						peak = v
					}
				}
			}

			var idx int
			if max > 0 {
				idx = int(peak / max * float64(len(densityRamp)-1))
			}
			sb.WriteByte(densityRamp[idx])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func dumpimage(name string, g *Grid, reverse bool) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := png.Encode(f, g.Gray(reverse)); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func dumpbuffer(cells []float64) []uint16 {
	var out = make([]uint16, len(cells))
	for i, v := range cells {
		out[i] = float16.Fromfloat32(float32(v)).Bits()
	}
	return out
}

func dumpgrid(name string, g *Grid) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := writegrid(w, g); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func writegrid(w io.Writer, g *Grid) error {
	if _, err := w.Write(gridMagic[:]); err != nil {
		return err
	}
	var dims = [2]uint32{uint32(g.Width), uint32(g.Height)}
	if err := binary.Write(w, binary.LittleEndian, dims); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, g.Image())
}

func loadgrid(name string) (*Grid, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGridNotLoaded, err)
	}
	defer f.Close()

	return readgrid(bufio.NewReader(f))
}

func readgrid(r io.Reader) (*Grid, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil || magic != gridMagic {
		return nil, ErrBadGridHeader
	}

	var dims [2]uint32
	if err := binary.Read(r, binary.LittleEndian, &dims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadGridHeader, err)
	}
	if dims[0] == 0 || dims[1] == 0 || uint64(dims[0])*uint64(dims[1]) > 1<<28 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrBadGridHeader, dims[0], dims[1])
	}

	g := NewGrid(int(dims[0]), int(dims[1]))
	var bits = make([]uint16, len(g.Cells))
	if err := binary.Read(r, binary.LittleEndian, bits); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGridNotLoaded, err)
	}
	for i, b := range bits {
		g.Cells[i] = float64(float16.Frombits(b).Float32())
	}
	return g, nil
}
