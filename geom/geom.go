// Package geom provides generic axis-aligned rectangle geometry.
//
// Rectangles are stored as a bottom-left corner plus a width and a
// height. Every operation is a pure function of its inputs and is
// total: degenerate results are represented by zero-sized rectangles
// rather than errors. Arithmetic follows the semantics of the
// coordinate type, so integer types truncate on division and may
// overflow.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)
