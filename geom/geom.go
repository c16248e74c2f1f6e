// Package geom provides utilities for manipulating points and
// rectangles on integer and real grids.
//
// It is patterned heavily after image.Rectangle and image.Point, but
// is generic over the coordinate type.
package geom

import "strings"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	~float32 | ~float64 | Integer
}

// Integer is a constraint for any integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed is a constraint for signed numbers, the types for which
// Edges.Delta is meaningful.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Edges is a bitmask representing zero or more edges of a rectangle.
//
// Following image.Rectangle, Y grows towards the bottom edge.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Has reports whether every edge in o is also in e.
func (e Edges) Has(o Edges) bool {
	return e&o == o
}

func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}

	var parts []string
	for _, n := range [...]struct {
		e    Edges
		name string
	}{
		{EdgeTop, "top"},
		{EdgeBottom, "bottom"},
		{EdgeLeft, "left"},
		{EdgeRight, "right"},
	} {
		if e.Has(n.e) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Delta returns a unit step in the direction of the edges in e.
// Opposite edges cancel each other out.
func Delta[T Signed](e Edges) Point[T] {
	var d Point[T]
	if e.Has(EdgeLeft) {
		d.X--
	}
	if e.Has(EdgeRight) {
		d.X++
	}
	if e.Has(EdgeTop) {
		d.Y--
	}
	if e.Has(EdgeBottom) {
		d.Y++
	}
	return d
}
