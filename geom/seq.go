package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// Diagonal returns an iterator over the points p with p.X+p.Y == i
// that lie in the inclusive box [0, extent.X]×[0, extent.Y], in order
// of increasing Y. In other words, for an extent of (3, 3),
//
//	.
//	.
//	9
//	5  8
//	2  4  7
//	@  1  3  6
//
// Diagonal(1) yields 1 and 2, Diagonal(2) yields 3, 4 and 5, and so
// on, with @ being the origin.
func Diagonal[T Integer](i T, extent Point[T]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		start := T(0)
		if i > extent.X {
			start = i - extent.X
		}
		end := min(i, extent.Y)

		for j := start; j <= end; j++ {
			if !yield(Pt(i-j, j)) {
				return
			}
		}
	}
}

// Diagonals returns an iterator over every diagonal of the box
// described by extent, excluding the origin itself, starting with the
// one nearest to the origin. Each yielded pair is the diagonal's
// index along with an iterator over it as returned by [Diagonal].
func Diagonals[T Integer](extent Point[T]) iter.Seq2[T, iter.Seq[Point[T]]] {
	return func(yield func(T, iter.Seq[Point[T]]) bool) {
		for i := T(1); i <= extent.X+extent.Y; i++ {
			if !yield(i, Diagonal(i, extent)) {
				return
			}
		}
	}
}

// Points returns an iterator over every point in r in row-major
// order.
func Points[T Integer](r Rect[T]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if !yield(Pt(x, y)) {
					return
				}
			}
		}
	}
}

// IndexedPoints is like [Points] but also yields the row-major
// offset of each point relative to r.Min, suitable for indexing a
// slice holding one element per point of r.
func IndexedPoints[T Integer](r Rect[T]) iter.Seq2[int, Point[T]] {
	return xiter.Enumerate(Points(r))
}
