package grid

import (
	"image"
	"image/color"
)

// Image draws a grid as an image, filling a Scale×Scale block of
// pixels for every cell with the color that Palette picks for it.
type Image[C any] struct {
	Grid    *Grid[C]
	Palette func(C) color.Color

	// Scale is the size of a cell in pixels. Values less than 1 are
	// treated as 1.
	Scale int
}

func (img *Image[C]) scale() int {
	return max(img.Scale, 1)
}

func (img *Image[C]) Bounds() image.Rectangle {
	r, s := img.Grid.Rect, img.scale()
	return image.Rect(r.Min.X*s, r.Min.Y*s, r.Max.X*s, r.Max.Y*s)
}

func (img *Image[C]) ColorModel() color.Model { return color.RGBAModel }

func (img *Image[C]) At(x, y int) color.Color {
	b := img.Bounds()
	if !(image.Point{x, y}.In(b)) {
		return color.RGBA{}
	}

	s := img.scale()
	p := img.Grid.Rect.Min
	p.X += (x - b.Min.X) / s
	p.Y += (y - b.Min.Y) / s

	c := img.Grid.Cells[img.Grid.Offset(p)]
	return img.ColorModel().Convert(img.Palette(c))
}

// Palette returns a palette function that looks colors up in m,
// falling back to def for anything not in it.
func Palette[C comparable](m map[C]color.Color, def color.Color) func(C) color.Color {
	return func(c C) color.Color {
		if v, ok := m[c]; ok {
			return v
		}
		return def
	}
}
