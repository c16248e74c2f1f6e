// Package xfov computes fields of view on 2D grids.
//
// The algorithm is a precise permissive one: a cell is visible from
// the origin if any unobstructed straight line connects some point of
// the origin cell with some point of the target cell. This avoids the
// gaps that casting rays between cell centers leaves behind, and makes
// visibility symmetric.
//
// All geometry is done with exact integer arithmetic, so results do
// not depend on floating point rounding near cell corners.
package xfov

import (
	"errors"
	"fmt"
	"iter"

	"deedles.dev/xfov/geom"
	"golang.org/x/exp/constraints"
)

// ErrStop can be returned by a Sink to end a scan early. Visit then
// returns nil.
var ErrStop = errors.New("stop")

// Opacity reports whether cells block sight.
//
// Opaque is only ever called for points inside of the bounds passed
// to Visit. It must not modify the grid that it is querying while a
// scan is in progress.
type Opacity[T constraints.Signed] interface {
	Opaque(geom.Point[T]) bool
}

// OpacityFunc is an adapter to allow the use of ordinary functions as
// an Opacity.
type OpacityFunc[T constraints.Signed] func(geom.Point[T]) bool

func (f OpacityFunc[T]) Opaque(p geom.Point[T]) bool { return f(p) }

// Sink receives the cells found to be visible.
//
// See is called at most once per cell per scan. If it returns an
// error, the scan stops immediately and the error is returned from
// Visit, unless it is ErrStop.
type Sink[T constraints.Signed] interface {
	See(geom.Point[T]) error
}

// SinkFunc is an adapter to allow the use of ordinary functions as a
// Sink.
type SinkFunc[T constraints.Signed] func(geom.Point[T]) error

func (f SinkFunc[T]) See(p geom.Point[T]) error { return f(p) }

// quadrants lists the quadrants in the order that they are scanned.
// Y grows downwards, so the first is the bottom-right one.
var quadrants = [...]geom.Edges{
	geom.EdgeBottom | geom.EdgeRight,
	geom.EdgeTop | geom.EdgeRight,
	geom.EdgeTop | geom.EdgeLeft,
	geom.EdgeBottom | geom.EdgeLeft,
}

// Visit reports every cell in bounds that is visible from origin to
// sink. Cells further than radius from origin along either axis are
// never reported, so the largest possible field of view is a square.
//
// If origin itself is opaque, nothing is reported. Otherwise origin is
// always reported first. Beyond that, the order in which cells are
// reported is deterministic but should not be relied upon. Opaque
// cells are reported if they are visible; they block sight of what is
// behind them, not themselves.
//
// Cell coordinates are computed in T, so the width plus the height of
// bounds must be representable in T. Slopes are compared in int64
// regardless of T.
//
// Visit panics if origin is not in bounds, if radius is negative, if
// bounds is too large for T, or if either opacity or sink is nil.
func Visit[T constraints.Signed](origin geom.Point[T], bounds geom.Rect[T], radius T, opacity Opacity[T], sink Sink[T]) (err error) {
	switch {
	case opacity == nil:
		panic("xfov: nil Opacity")
	case sink == nil:
		panic("xfov: nil Sink")
	case radius < 0:
		panic(fmt.Sprintf("xfov: negative radius %v", radius))
	case !origin.In(bounds):
		panic(fmt.Sprintf("xfov: origin %v is not in %v", origin, bounds))
	case !fits(bounds):
		panic(fmt.Sprintf("xfov: bounds %v are too large for %T", bounds, radius))
	}

	if opacity.Opaque(origin) {
		return nil
	}

	s := scanner[T]{
		origin:  origin,
		opacity: opacity,
		sink:    sink,
		visited: make(map[geom.Point[T]]struct{}),
	}
	defer s.catch(&err)

	s.see(origin)
	for _, q := range quadrants {
		s.quadrant(geom.Delta[T](q), extent(bounds, origin, radius, q))
	}

	return nil
}

// fits reports whether the diagonals of every quadrant of bounds can
// be indexed in T.
func fits[T constraints.Signed](bounds geom.Rect[T]) bool {
	n := int64(bounds.Max.X) - int64(bounds.Min.X) + int64(bounds.Max.Y) - int64(bounds.Min.Y)
	return int64(T(n)) == n
}

// extent returns how far a scan of quadrant q may reach from origin
// along each axis without leaving bounds or exceeding radius.
func extent[T constraints.Signed](bounds geom.Rect[T], origin geom.Point[T], radius T, q geom.Edges) geom.Point[T] {
	e := geom.Pt(bounds.Max.X-1-origin.X, bounds.Max.Y-1-origin.Y)
	if q.Has(geom.EdgeLeft) {
		e.X = origin.X - bounds.Min.X
	}
	if q.Has(geom.EdgeTop) {
		e.Y = origin.Y - bounds.Min.Y
	}
	return geom.Pt(min(e.X, radius), min(e.Y, radius))
}

// Cells returns an iterator over the cells visible from origin. See
// Visit for details.
func Cells[T constraints.Signed](origin geom.Point[T], bounds geom.Rect[T], radius T, opacity Opacity[T]) iter.Seq[geom.Point[T]] {
	return func(yield func(geom.Point[T]) bool) {
		Visit(origin, bounds, radius, opacity, SinkFunc[T](func(p geom.Point[T]) error {
			if !yield(p) {
				return ErrStop
			}
			return nil
		}))
	}
}

// IsVisible reports whether target can be seen from origin. It stops
// scanning as soon as target is found. Targets outside of bounds or
// out of range are never visible.
func IsVisible[T constraints.Signed](origin, target geom.Point[T], bounds geom.Rect[T], radius T, opacity Opacity[T]) bool {
	if !target.In(bounds) {
		return false
	}
	d := target.Sub(origin)
	if max(d.X, -d.X, d.Y, -d.Y) > radius {
		return false
	}

	for p := range Cells(origin, bounds, radius, opacity) {
		if p == target {
			return true
		}
	}
	return false
}
