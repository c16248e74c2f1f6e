package xfov

import (
	"testing"

	"deedles.dev/xfov/geom"
	"github.com/stretchr/testify/require"
)

func TestExtent(t *testing.T) {
	bounds := geom.Rt(0, 0, 7, 5)
	origin := geom.Pt(1, 3)

	tests := []struct {
		q      geom.Edges
		extent geom.Point[int]
	}{
		{geom.EdgeBottom | geom.EdgeRight, geom.Pt(2, 1)},
		{geom.EdgeTop | geom.EdgeRight, geom.Pt(2, 2)},
		{geom.EdgeTop | geom.EdgeLeft, geom.Pt(1, 2)},
		{geom.EdgeBottom | geom.EdgeLeft, geom.Pt(1, 1)},
	}
	for _, test := range tests {
		t.Run(test.q.String(), func(t *testing.T) {
			require.Equal(t, test.extent, extent(bounds, origin, 2, test.q))
		})
	}
}

func TestExtentOffsetBounds(t *testing.T) {
	bounds := geom.Rt(-10, -10, -5, -5)
	origin := geom.Pt(-9, -6)

	require.Equal(t, geom.Pt(3, 0), extent(bounds, origin, 100, geom.EdgeBottom|geom.EdgeRight))
	require.Equal(t, geom.Pt(1, 4), extent(bounds, origin, 100, geom.EdgeTop|geom.EdgeLeft))
}

func TestScannerSplit(t *testing.T) {
	// A single pillar well inside of the quadrant splits the initial
	// view in two.
	s := scanner[int]{
		opacity: OpacityFunc[int](func(p geom.Point[int]) bool { return p == geom.Pt(2, 2) }),
		sink:    SinkFunc[int](func(geom.Point[int]) error { return nil }),
		visited: make(map[geom.Point[int]]struct{}),
	}
	s.views = append(s.views, quadrantView(geom.Pt(5, 5)))

	s.visit(geom.Pt(2, 2), geom.Pt(1, 1))
	require.Len(t, s.views, 2)
	require.Equal(t, []geom.Point[int]{geom.Pt(3, 2)}, s.views[0].steepBumps)
	require.Empty(t, s.views[0].shallowBumps)
	require.Equal(t, []geom.Point[int]{geom.Pt(2, 3)}, s.views[1].shallowBumps)
	require.Empty(t, s.views[1].steepBumps)
	require.Contains(t, s.visited, geom.Pt(2, 2))
}

func TestScannerCloseCorner(t *testing.T) {
	// Walls on both axes next to the origin leave only a sliver through
	// the diagonal cell, which is itself a wall.
	s := scanner[int]{
		opacity: OpacityFunc[int](func(geom.Point[int]) bool { return true }),
		sink:    SinkFunc[int](func(geom.Point[int]) error { return nil }),
		visited: make(map[geom.Point[int]]struct{}),
	}
	s.views = append(s.views, quadrantView(geom.Pt(5, 5)))

	s.visit(geom.Pt(1, 0), geom.Pt(1, 1))
	require.Len(t, s.views, 1)
	s.visit(geom.Pt(0, 1), geom.Pt(1, 1))
	require.Len(t, s.views, 1)
	s.visit(geom.Pt(1, 1), geom.Pt(1, 1))
	require.Empty(t, s.views)
}
