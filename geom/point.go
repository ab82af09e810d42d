package geom

import "image"

// Point is a 2D coordinate pair.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func FromImagePoint(p image.Point) Point[int] {
	return Point[int]{X: p.X, Y: p.Y}
}

// PConv converts a Point[In] to a Point[Out] with possible loss of
// precision.
func PConv[Out, In Scalar](p Point[In]) Point[Out] {
	return Point[Out]{X: Out(p.X), Y: Out(p.Y)}
}

func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point[T]) Mul(n T) Point[T] {
	return Point[T]{X: p.X * n, Y: p.Y * n}
}

func (p Point[T]) Div(n T) Point[T] {
	return Point[T]{X: p.X / n, Y: p.Y / n}
}

// In reports whether p lies inside r, boundaries included. It is
// equivalent to r.ContainsPoint(p).
func (p Point[T]) In(r Rect[T]) bool {
	return r.ContainsPoint(p)
}

func (p Point[T]) IsZero() bool {
	return p == Point[T]{}
}

func (p Point[T]) ImagePoint() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}
