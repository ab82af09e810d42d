package geom

import "image"

// A Rect is an axis-aligned rectangle with its bottom-left corner at
// (X, Y). It contains the points with X <= x <= X+Width and
// Y <= y <= Y+Height. A Rect built by Rt always has a non-negative
// Width and Height.
type Rect[T Scalar] struct {
	X, Y          T
	Width, Height T
}

// Rt returns a rectangle with a corner at (x, y) and the given
// dimensions. A negative width or height extends the rectangle to the
// left or downwards from that corner, and the result is normalized so
// that (X, Y) is the bottom-left corner and both dimensions are
// non-negative.
func Rt[T Scalar](x, y, width, height T) Rect[T] {
	if width < 0 {
		width = -width
		x -= width
	}
	if height < 0 {
		height = -height
		y -= height
	}
	return Rect[T]{X: x, Y: y, Width: width, Height: height}
}

func FromImageRect(r image.Rectangle) Rect[int] {
	return Rt(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

// RConv converts a Rect[In] to a Rect[Out] with possible loss of
// precision.
func RConv[Out, In Scalar](r Rect[In]) Rect[Out] {
	return Rect[Out]{
		X:      Out(r.X),
		Y:      Out(r.Y),
		Width:  Out(r.Width),
		Height: Out(r.Height),
	}
}

func (r Rect[T]) Left() T   { return r.X }
func (r Rect[T]) Right() T  { return r.X + r.Width }
func (r Rect[T]) Bottom() T { return r.Y }
func (r Rect[T]) Top() T    { return r.Y + r.Height }

func (r Rect[T]) BottomLeft() Point[T]  { return Pt(r.X, r.Y) }
func (r Rect[T]) BottomRight() Point[T] { return Pt(r.X+r.Width, r.Y) }
func (r Rect[T]) TopLeft() Point[T]     { return Pt(r.X, r.Y+r.Height) }
func (r Rect[T]) TopRight() Point[T]    { return Pt(r.X+r.Width, r.Y+r.Height) }

// Size returns the width and height of r as a Point.
func (r Rect[T]) Size() Point[T] {
	return Pt(r.Width, r.Height)
}

// Center returns the point at the middle of r. For integer types the
// half-dimensions are truncated.
func (r Rect[T]) Center() Point[T] {
	return Pt(r.X+r.Width/2, r.Y+r.Height/2)
}

// Adjusted returns a copy of r with its bottom-left corner moved by
// (dx1, dy1) and its top-right corner moved by (dx2, dy2). If the
// corners cross on an axis, they are swapped on that axis so that the
// result has a non-negative size.
func (r Rect[T]) Adjusted(dx1, dy1, dx2, dy2 T) Rect[T] {
	bl := r.BottomLeft().Add(Pt(dx1, dy1))
	tr := r.TopRight().Add(Pt(dx2, dy2))
	if bl.X > tr.X {
		bl.X, tr.X = tr.X, bl.X
	}
	if bl.Y > tr.Y {
		bl.Y, tr.Y = tr.Y, bl.Y
	}
	return Rect[T]{X: bl.X, Y: bl.Y, Width: tr.X - bl.X, Height: tr.Y - bl.Y}
}

// Adjust is like Adjusted but modifies r in place.
func (r *Rect[T]) Adjust(dx1, dy1, dx2, dy2 T) {
	*r = r.Adjusted(dx1, dy1, dx2, dy2)
}

// ContainsPoint reports whether p lies inside r. Points on an edge or
// a corner are inside.
func (r Rect[T]) ContainsPoint(p Point[T]) bool {
	return r.X <= p.X && p.X <= r.X+r.Width &&
		r.Y <= p.Y && p.Y <= r.Y+r.Height
}

// ContainsRect reports whether s starts at or above and to the right
// of r's bottom-left corner and is no larger than r in either
// dimension.
//
// It compares sizes, not far edges, so an s that is small enough but
// offset past r's right or top edge is still reported as contained.
func (r Rect[T]) ContainsRect(s Rect[T]) bool {
	return s.X >= r.X && s.Y >= r.Y &&
		s.Height <= r.Height && s.Width <= r.Width
}

// Intersects reports whether any corner of s lies inside r or the
// bottom-left corner of r lies inside s. The second check covers r
// being entirely inside of s.
//
// Overlaps in which no corner of either rectangle is inside the
// other, such as two thin rectangles crossing each other, are not
// detected.
func (r Rect[T]) Intersects(s Rect[T]) bool {
	return r.ContainsPoint(s.BottomLeft()) ||
		r.ContainsPoint(s.BottomRight()) ||
		r.ContainsPoint(s.TopLeft()) ||
		r.ContainsPoint(s.TopRight()) ||
		s.ContainsPoint(r.BottomLeft())
}

// Intersected returns the overlapping region of r and s. If r and s
// do not intersect according to Intersects, the zero Rect is
// returned.
func (r Rect[T]) Intersected(s Rect[T]) Rect[T] {
	if !r.Intersects(s) {
		return Rect[T]{}
	}

	x := max(r.X, s.X)
	y := max(r.Y, s.Y)
	right := min(r.Right(), s.Right())
	top := min(r.Top(), s.Top())
	return Rt(x, y, right-x, top-y)
}

// Intersect sets r to r.Intersected(s).
func (r *Rect[T]) Intersect(s Rect[T]) {
	*r = r.Intersected(s)
}

// United returns the smallest rectangle that contains both r and s.
func (r Rect[T]) United(s Rect[T]) Rect[T] {
	x := min(r.X, s.X)
	y := min(r.Y, s.Y)
	right := max(r.Right(), s.Right())
	top := max(r.Top(), s.Top())
	return Rt(x, y, right-x, top-y)
}

// Unite sets r to r.United(s).
func (r *Rect[T]) Unite(s Rect[T]) {
	*r = r.United(s)
}

// Transposed returns r with its width and height swapped. The
// bottom-left corner stays where it is.
func (r Rect[T]) Transposed() Rect[T] {
	return Rect[T]{X: r.X, Y: r.Y, Width: r.Height, Height: r.Width}
}

// Canon returns r normalized as if it had been built with Rt.
func (r Rect[T]) Canon() Rect[T] {
	return Rt(r.X, r.Y, r.Width, r.Height)
}

func (r Rect[T]) Add(p Point[T]) Rect[T] {
	r.X += p.X
	r.Y += p.Y
	return r
}

func (r Rect[T]) Sub(p Point[T]) Rect[T] {
	r.X -= p.X
	r.Y -= p.Y
	return r
}

// Resize returns a rectangle with the same bottom-left corner as r
// but with the given size.
func (r Rect[T]) Resize(size Point[T]) Rect[T] {
	return Rt(r.X, r.Y, size.X, size.Y)
}

// CenterAt returns a rectangle with the same size as r but centered
// at p.
func (r Rect[T]) CenterAt(p Point[T]) Rect[T] {
	return Rect[T]{
		X:      p.X - r.Width/2,
		Y:      p.Y - r.Height/2,
		Width:  r.Width,
		Height: r.Height,
	}
}

// Inset shrinks r by n on every side. If a dimension is less than 2n,
// r collapses to its center on that axis.
func (r Rect[T]) Inset(n T) Rect[T] {
	if r.Width < 2*n {
		r.X += r.Width / 2
		r.Width = 0
	} else {
		r.X += n
		r.Width -= 2 * n
	}
	if r.Height < 2*n {
		r.Y += r.Height / 2
		r.Height = 0
	} else {
		r.Y += n
		r.Height -= 2 * n
	}
	return r
}

// Empty reports whether r has no area.
func (r Rect[T]) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect[T]) IsZero() bool {
	return r == Rect[T]{}
}

func (r Rect[T]) ImageRect() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.Right()), int(r.Top()))
}
