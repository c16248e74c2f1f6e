package xfov

import (
	"errors"
	"slices"

	"deedles.dev/xfov/geom"
	"golang.org/x/exp/constraints"
)

// scanner holds the state of a single call to Visit. The visited set
// is shared by all four quadrants so that cells lying on the axes are
// only reported once. The views are reset for every quadrant.
type scanner[T constraints.Signed] struct {
	origin  geom.Point[T]
	opacity Opacity[T]
	sink    Sink[T]
	visited map[geom.Point[T]]struct{}

	// views is ordered from shallowest to steepest.
	views []view[T]
}

// quadrant scans the quadrant that delta points into. Cells are
// visited in quadrant-local coordinates, diagonal by diagonal, so that
// the two cells that could cast a shadow onto a cell have always been
// visited before it.
func (s *scanner[T]) quadrant(delta, extent geom.Point[T]) {
	s.views = append(s.views[:0], quadrantView(extent))

	for _, diag := range geom.Diagonals(extent) {
		for c := range diag {
			if len(s.views) == 0 {
				return
			}
			s.visit(c, delta)
		}
	}
}

func (s *scanner[T]) visit(c, delta geom.Point[T]) {
	topLeft := geom.Pt(c.X, c.Y+1)
	bottomRight := geom.Pt(c.X+1, c.Y)

	i := 0
	for i < len(s.views) && s.views[i].steep.belowOrCollinear(bottomRight) {
		i++
	}
	if i == len(s.views) || s.views[i].shallow.aboveOrCollinear(topLeft) {
		return
	}

	p := s.origin.Add(c.MulPt(delta))
	s.see(p)
	if !s.opacity.Opaque(p) {
		return
	}

	shallowHit := s.views[i].shallow.above(bottomRight)
	steepHit := s.views[i].steep.below(topLeft)
	switch {
	case shallowHit && steepHit:
		s.views = slices.Delete(s.views, i, i+1)

	case shallowHit:
		s.views[i].addShallowBump(topLeft)
		s.prune(i)

	case steepHit:
		s.views[i].addSteepBump(bottomRight)
		s.prune(i)

	default:
		// The cell sits strictly inside the view, so it is split in
		// two around it. The new view below is the shallow half.
		s.views = slices.Insert(s.views, i, s.views[i].clone())
		steep := i + 1

		s.views[i].addSteepBump(bottomRight)
		if !s.prune(i) {
			steep = i
		}

		s.views[steep].addShallowBump(topLeft)
		s.prune(steep)
	}
}

// prune removes the view at i if it has been pinched shut and reports
// whether it is still there.
func (s *scanner[T]) prune(i int) bool {
	if !s.views[i].pinched() {
		return true
	}
	s.views = slices.Delete(s.views, i, i+1)
	return false
}

func (s *scanner[T]) see(p geom.Point[T]) {
	if _, ok := s.visited[p]; ok {
		return
	}
	s.visited[p] = struct{}{}
	s.throw(s.sink.See(p))
}

type scanError struct {
	err error
}

func (s *scanner[T]) throw(err error) {
	if err != nil {
		panic(scanError{err: err})
	}
}

func (s *scanner[T]) catch(err *error) {
	switch r := recover().(type) {
	case scanError:
		*err = r.err
		if errors.Is(r.err, ErrStop) {
			*err = nil
		}
	case nil:
	default:
		panic(r)
	}
}
