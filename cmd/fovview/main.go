// Command fovview computes the field of view described by a scenario
// file and prints it, optionally also rendering it to a PNG image.
//
// Usage:
//
//	fovview [flags] scenario.yaml
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"

	"deedles.dev/xfov/grid"
	"deedles.dev/xfov/scenario"
)

var (
	radiusFlag = flag.Int("radius", -1, "override the scenario's radius if not negative")
	originFlag = flag.String("origin", "", "override the scenario's origin, as x,y")
	pngFlag    = flag.String("png", "", "also write the result as a PNG image to this path")
	scaleFlag  = flag.Int("scale", 8, "size in pixels of a cell in the PNG image")
	checkFlag  = flag.Bool("check", false, "compare the result with the scenario's expectation and fail on a mismatch")
)

var palette = map[rune]color.Color{
	scenario.Unseen: color.Black,
	scenario.Self:   color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF},
	'#':             color.RGBA{R: 0x60, G: 0x60, B: 0x70, A: 0xFF},
}

func parseOrigin(s string) (*scenario.Origin, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return nil, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return nil, fmt.Errorf("y: %w", err)
	}
	return &scenario.Origin{X: x, Y: y}, nil
}

func writePNG(path string, g *grid.Grid[rune]) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer file.Close()

	img := grid.Image[rune]{
		Grid:    g,
		Palette: grid.Palette(palette, color.RGBA{R: 0xD8, G: 0xD0, B: 0xB0, A: 0xFF}),
		Scale:   *scaleFlag,
	}
	err = png.Encode(file, &img)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return file.Close()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("fovview: ")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [flags] scenario.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	s, err := scenario.DecodeFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("load %q: %v", flag.Arg(0), err)
	}
	if *radiusFlag >= 0 {
		s.Radius = *radiusFlag
	}
	if *originFlag != "" {
		origin, err := parseOrigin(*originFlag)
		if err != nil {
			log.Fatalf("origin: %v", err)
		}
		if !s.Grid().In(origin.Point()) {
			log.Fatalf("origin %v is outside of the map", origin.Point())
		}
		s.Origin = origin
	}

	out, err := s.Run()
	if err != nil {
		log.Fatalf("run: %v", err)
	}
	if *checkFlag {
		err := s.Compare(out)
		if err != nil {
			log.Fatal(err)
		}
	}
	fmt.Println(grid.Format(out))

	if *pngFlag != "" {
		err := writePNG(*pngFlag, out)
		if err != nil {
			log.Fatalf("write %q: %v", *pngFlag, err)
		}
	}
}
