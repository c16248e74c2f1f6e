package geom

// Rect is a rectangle with corners at Min and Max. Like
// image.Rectangle, it contains the points with Min.X <= X < Max.X,
// Min.Y <= Y < Max.Y. A rectangle is well-formed if Min.X <= Max.X
// and likewise for Y.
type Rect[T Scalar] struct {
	Min, Max Point[T]
}

// Rt is shorthand for Rect[T]{Pt(x0, y0), Pt(x1, y1)}. The returned
// rectangle has the coordinates swapped if necessary so that it is
// well-formed.
func Rt[T Scalar](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{Min: Pt(x0, y0), Max: Pt(x1, y1)}.Canon()
}

func (r Rect[T]) String() string {
	return r.Min.String() + "-" + r.Max.String()
}

// Dx returns the width of r.
func (r Rect[T]) Dx() T {
	return r.Max.X - r.Min.X
}

// Dy returns the height of r.
func (r Rect[T]) Dy() T {
	return r.Max.Y - r.Min.Y
}

// Area returns the area of r.
func (r Rect[T]) Area() T {
	return r.Dx() * r.Dy()
}

// Canon returns the canonical version of r, swapping coordinates
// where necessary so that it is well-formed.
func (r Rect[T]) Canon() Rect[T] {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Add returns r translated by p.
func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

// Center returns the point at the middle of r. For integer
// coordinates this rounds towards Min.
func (r Rect[T]) Center() Point[T] {
	return Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
}
