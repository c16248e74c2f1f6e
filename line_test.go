package xfov

import (
	"testing"

	"deedles.dev/xfov/geom"
	"github.com/stretchr/testify/require"
)

func TestLineClassify(t *testing.T) {
	diag := ln(0, 0, 2, 2)

	above := geom.Pt(0, 1)
	require.True(t, diag.below(above))
	require.True(t, diag.belowOrCollinear(above))
	require.False(t, diag.above(above))

	below := geom.Pt(1, 0)
	require.True(t, diag.above(below))
	require.True(t, diag.aboveOrCollinear(below))
	require.False(t, diag.below(below))

	on := geom.Pt(5, 5)
	require.True(t, diag.collinear(on))
	require.True(t, diag.belowOrCollinear(on))
	require.True(t, diag.aboveOrCollinear(on))
	require.False(t, diag.below(on))
	require.False(t, diag.above(on))
}

func TestLineAxisAligned(t *testing.T) {
	vertical := ln(1, 0, 1, 2)
	require.True(t, vertical.collinear(geom.Pt(1, 7)))
	require.True(t, vertical.below(geom.Pt(0, 1)))
	require.True(t, vertical.above(geom.Pt(2, 1)))

	horizontal := ln(0, 1, 3, 1)
	require.True(t, horizontal.collinear(geom.Pt(-4, 1)))
	require.True(t, horizontal.below(geom.Pt(0, 2)))
	require.True(t, horizontal.above(geom.Pt(0, 0)))
}

func TestLineCollinearWith(t *testing.T) {
	l := ln(0, 1, 1, 0)
	require.True(t, l.collinearWith(ln(1, 0, 0, 1)))
	require.True(t, l.collinearWith(ln(2, -1, -1, 2)))
	require.False(t, l.collinearWith(ln(1, 0, 0, 2)))
}

func TestLineSmallInts(t *testing.T) {
	l := line[int8]{i: geom.Pt[int8](0, 1), f: geom.Pt[int8](3, 0)}
	require.True(t, l.below(geom.Pt[int8](3, 1)))
	require.True(t, l.collinear(geom.Pt[int8](6, -1)))

	// 100*3 does not fit in an int8.
	wide := ln[int8](0, 1, 100, 0)
	require.True(t, wide.below(geom.Pt[int8](0, 3)))
	require.True(t, wide.above(geom.Pt[int8](100, -1)))
	require.True(t, wide.collinear(geom.Pt[int8](100, 0)))
}
