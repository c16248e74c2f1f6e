package grid_test

import (
	"image/color"
	"testing"

	"deedles.dev/xfov"
	"deedles.dev/xfov/geom"
	"deedles.dev/xfov/grid"
	"github.com/stretchr/testify/require"
)

func TestGrid(t *testing.T) {
	g := grid.New(geom.Rt(2, 3, 5, 5), 0)
	require.Len(t, g.Cells, 6)
	require.Equal(t, 3, g.Stride())

	g.Set(geom.Pt(4, 4), 7)
	require.Equal(t, 7, g.At(geom.Pt(4, 4)))
	require.Equal(t, 7, g.Cells[5])
	require.Equal(t, 5, g.Offset(geom.Pt(4, 4)))

	g.Set(geom.Pt(0, 0), 9)
	require.Equal(t, 0, g.At(geom.Pt(0, 0)))
	require.False(t, g.In(geom.Pt(5, 4)))
}

func TestGridAll(t *testing.T) {
	g := grid.New(geom.Rt(0, 0, 2, 2), 0)
	for i := range g.Cells {
		g.Cells[i] = i
	}

	var points []geom.Point[int]
	for p, c := range g.All() {
		require.Equal(t, g.Offset(p), c)
		points = append(points, p)
	}
	require.Equal(t, []geom.Point[int]{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(1, 1)}, points)
}

func TestParse(t *testing.T) {
	g, err := grid.Parse("\n\n.#.\r\n..#\n\n")
	require.Nil(t, err)
	require.Equal(t, geom.Rt(0, 0, 3, 2), g.Bounds())
	require.Equal(t, '#', g.At(geom.Pt(1, 0)))
	require.Equal(t, '#', g.At(geom.Pt(2, 1)))
	require.Equal(t, ".#.\n..#", grid.Format(g))
}

func TestParseErrors(t *testing.T) {
	_, err := grid.Parse("\n\n")
	require.ErrorIs(t, err, grid.ErrEmpty)

	_, err = grid.Parse("...\n..\n...")
	require.ErrorIs(t, err, grid.ErrRagged)
}

func TestParseUnicode(t *testing.T) {
	g, err := grid.Parse("·█·\n···")
	require.Nil(t, err)
	require.Equal(t, 3, g.Bounds().Dx())
	require.Equal(t, '█', g.At(geom.Pt(1, 0)))
}

func TestOpacity(t *testing.T) {
	g, err := grid.Parse(".#\n..")
	require.Nil(t, err)

	opacity := grid.Opacity(g, func(c rune) bool { return c == '#' })
	require.True(t, opacity.Opaque(geom.Pt(1, 0)))
	require.False(t, opacity.Opaque(geom.Pt(0, 0)))
	require.True(t, opacity.Opaque(geom.Pt(2, 0)))
}

func TestMark(t *testing.T) {
	g, err := grid.Parse("...\n.#.\n...\n...")
	require.Nil(t, err)

	seen := grid.New(g.Bounds(), false)
	err = xfov.Visit(geom.Pt(1, 0), g.Bounds(), 5, grid.Opacity(g, func(c rune) bool { return c == '#' }), grid.Mark(seen))
	require.Nil(t, err)
	require.True(t, seen.At(geom.Pt(1, 1)))
	require.False(t, seen.At(geom.Pt(1, 2)))
	require.True(t, seen.At(geom.Pt(0, 3)))
}

func TestImage(t *testing.T) {
	g, err := grid.Parse(".#\n#.")
	require.Nil(t, err)

	red := color.RGBA{R: 0xFF, A: 0xFF}
	img := grid.Image[rune]{
		Grid:    g,
		Palette: grid.Palette(map[rune]color.Color{'#': red}, color.White),
		Scale:   3,
	}

	require.Equal(t, 6, img.Bounds().Dx())
	require.Equal(t, 6, img.Bounds().Dy())
	require.Equal(t, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, img.At(2, 2))
	require.Equal(t, red, img.At(3, 0))
	require.Equal(t, red, img.At(0, 5))
	require.Equal(t, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, img.At(5, 5))
	require.Equal(t, color.RGBA{}, img.At(6, 0))
}
