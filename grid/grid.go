// Package grid provides a dense, rectangular container of cells for
// use as the map that a field of view is computed over, along with
// helpers for converting such maps to and from text and images.
package grid

import (
	"iter"

	"deedles.dev/xfov"
	"deedles.dev/xfov/geom"
)

// Grid stores one C for every point of Rect in row-major order.
type Grid[C any] struct {
	Rect  geom.Rect[int]
	Cells []C
}

// New returns a grid covering r with every cell set to fill.
func New[C any](r geom.Rect[int], fill C) *Grid[C] {
	r = r.Canon()
	cells := make([]C, r.Area())
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[C]{Rect: r, Cells: cells}
}

func (g *Grid[C]) Bounds() geom.Rect[int] { return g.Rect }

// In reports whether p is inside of the grid.
func (g *Grid[C]) In(p geom.Point[int]) bool {
	return p.In(g.Rect)
}

// Stride returns the distance between vertically adjacent cells in
// Cells.
func (g *Grid[C]) Stride() int {
	return g.Rect.Dx()
}

// Offset returns the index into Cells of the cell at p.
func (g *Grid[C]) Offset(p geom.Point[int]) int {
	p = p.Sub(g.Rect.Min)
	return (g.Stride() * p.Y) + p.X
}

// At returns the cell at p, or the zero value if p is not in the grid.
func (g *Grid[C]) At(p geom.Point[int]) C {
	if !g.In(p) {
		var zero C
		return zero
	}
	return g.Cells[g.Offset(p)]
}

// Set sets the cell at p. It does nothing if p is not in the grid.
func (g *Grid[C]) Set(p geom.Point[int], c C) {
	if !g.In(p) {
		return
	}
	g.Cells[g.Offset(p)] = c
}

// All returns an iterator over every cell of the grid along with its
// location, in row-major order.
func (g *Grid[C]) All() iter.Seq2[geom.Point[int], C] {
	return func(yield func(geom.Point[int], C) bool) {
		for i, p := range geom.IndexedPoints(g.Rect) {
			if !yield(p, g.Cells[i]) {
				return
			}
		}
	}
}

// Opacity returns an Opacity that considers a cell opaque if blocks
// returns true for it. Points outside of the grid are opaque.
func Opacity[C any](g *Grid[C], blocks func(C) bool) xfov.OpacityFunc[int] {
	return func(p geom.Point[int]) bool {
		if !g.In(p) {
			return true
		}
		return blocks(g.Cells[g.Offset(p)])
	}
}

// Mark returns a Sink that sets every cell that it sees in g to true.
func Mark(g *Grid[bool]) xfov.SinkFunc[int] {
	return func(p geom.Point[int]) error {
		g.Set(p, true)
		return nil
	}
}
