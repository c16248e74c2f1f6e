package xfov

import (
	"slices"

	"deedles.dev/xfov/geom"
	"golang.org/x/exp/constraints"
)

// view is a wedge of a quadrant that may still contain visible cells.
// It lies between the shallow and the steep line. The bumps are the
// corners of obstructions that have pushed those lines inwards,
// oldest first.
type view[T constraints.Signed] struct {
	shallow, steep           line[T]
	shallowBumps, steepBumps []geom.Point[T]
}

// quadrantView returns a view covering the whole of a quadrant with
// the given extent. The lines always reach at least one cell out so
// that a quadrant that is flat along one axis can still see along the
// other.
func quadrantView[T constraints.Signed](extent geom.Point[T]) view[T] {
	return view[T]{
		shallow: ln(0, 1, max(extent.X, 1), 0),
		steep:   ln(1, 0, 0, max(extent.Y, 1)),
	}
}

func (v view[T]) clone() view[T] {
	v.shallowBumps = slices.Clone(v.shallowBumps)
	v.steepBumps = slices.Clone(v.steepBumps)
	return v
}

// addShallowBump raises the shallow line so that it passes through p.
// The line is then re-anchored on any earlier steep bump that it would
// otherwise have swung past.
func (v *view[T]) addShallowBump(p geom.Point[T]) {
	v.shallow.f = p
	v.shallowBumps = append(v.shallowBumps, p)

	for _, b := range slices.Backward(v.steepBumps) {
		if v.shallow.above(b) {
			v.shallow.i = b
		}
	}
}

// addSteepBump is the mirror image of addShallowBump.
func (v *view[T]) addSteepBump(p geom.Point[T]) {
	v.steep.f = p
	v.steepBumps = append(v.steepBumps, p)

	for _, b := range slices.Backward(v.shallowBumps) {
		if v.steep.below(b) {
			v.steep.i = b
		}
	}
}

// pinched reports whether the view has narrowed to nothing: both
// lines coincide and run through one of the quadrant's extremities.
func (v view[T]) pinched() bool {
	return v.shallow.collinearWith(v.steep) &&
		(v.shallow.collinear(geom.Pt[T](0, 1)) || v.shallow.collinear(geom.Pt[T](1, 0)))
}
