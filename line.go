package xfov

import (
	"deedles.dev/xfov/geom"
	"golang.org/x/exp/constraints"
)

// line is a directed segment from i to f. It is never drawn, only
// used to classify points against the infinite line through its
// endpoints. All comparisons are exact; slopes are never divided out.
type line[T constraints.Signed] struct {
	i, f geom.Point[T]
}

func ln[T constraints.Signed](ix, iy, fx, fy T) line[T] {
	return line[T]{i: geom.Pt(ix, iy), f: geom.Pt(fx, fy)}
}

// relativeSlope is the cross product of the line's direction with the
// vector from p to f. Positive means the line passes below p,
// negative above it, and zero through it. Each term grows with the
// square of the coordinates, so it is computed in int64 whatever T is.
func (l line[T]) relativeSlope(p geom.Point[T]) int64 {
	dx := int64(l.f.X) - int64(l.i.X)
	dy := int64(l.f.Y) - int64(l.i.Y)
	return dy*(int64(l.f.X)-int64(p.X)) - dx*(int64(l.f.Y)-int64(p.Y))
}

func (l line[T]) below(p geom.Point[T]) bool {
	return l.relativeSlope(p) > 0
}

func (l line[T]) belowOrCollinear(p geom.Point[T]) bool {
	return l.relativeSlope(p) >= 0
}

func (l line[T]) above(p geom.Point[T]) bool {
	return l.relativeSlope(p) < 0
}

func (l line[T]) aboveOrCollinear(p geom.Point[T]) bool {
	return l.relativeSlope(p) <= 0
}

func (l line[T]) collinear(p geom.Point[T]) bool {
	return l.relativeSlope(p) == 0
}

// collinearWith reports whether both endpoints of o lie on l.
func (l line[T]) collinearWith(o line[T]) bool {
	return l.collinear(o.i) && l.collinear(o.f)
}
