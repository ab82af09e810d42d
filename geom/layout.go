package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// hsplit splits a rectangle into two rectangles arranged
// horizontally.
func hsplit[T Scalar](r Rect[T], w T) (left, right Rect[T]) {
	left = r.Resize(Pt(w, r.Height))
	right = r.Resize(Pt(r.Width-w, r.Height)).Add(Pt(w, 0))
	return left, right
}

func hsplitHalf[T Scalar](r Rect[T]) (left, right Rect[T]) {
	return hsplit(r, r.Width/2)
}

// vsplit splits a rectangle into two rectangles arranged vertically.
func vsplit[T Scalar](r Rect[T], h T) (bottom, top Rect[T]) {
	bottom = r.Resize(Pt(r.Width, h))
	top = r.Resize(Pt(r.Width, r.Height-h)).Add(Pt(0, h))
	return bottom, top
}

func vsplitHalf[T Scalar](r Rect[T]) (bottom, top Rect[T]) {
	return vsplit(r, r.Height/2)
}

// TileRightThenUp arranges and resizes the elements of tiles in order
// to split r into a series of rectangles that recursively split each
// remaining section halfway to the right and then upwards. In other
// words,
//
//	tiles := make([]geom.Rect[float64], 4)
//	TileRightThenUp(tiles, r)
//
// will produce
//
//	------------
//	|    |  |  |
//	|    -------
//	|    |     |
//	------------
func TileRightThenUp[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledRightThenUp(len(tiles), r))
}

// TiledRightThenUp is the same as [TileRightThenUp] but yields the
// successive tiles from an interator instead of inserting them into a
// slice.
func TiledRightThenUp[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		split, next := hsplitHalf[T], vsplitHalf[T]

		var c Rect[T]
		n := r
		for range numtiles - 1 {
			c, n = split(n)
			if !yield(c) {
				return
			}
			split, next = next, split
		}

		yield(n)
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the result are a series of rectangles where the first is
// two-thirds the width of r and the rest are arranged vertically in
// an even split in the remaining space.
func TileTwoThirdsSidebar[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledTwoThirdsSidebar(len(tiles), r))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive rectangles from an iterator instead
// of inserting them into a slice. A single tile covers all of r.
func TiledTwoThirdsSidebar[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		switch {
		case numtiles <= 0:
			return
		case numtiles == 1:
			yield(r)
			return
		}

		first, rem := hsplit(r, 2*r.Width/3)
		if !yield(first) {
			return
		}

		for t := range TiledEvenVertically(numtiles-1, rem) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// vertical splitting of r, starting from the bottom. In other words,
//
//	tiles := make([]geom.Rect[float64], 3)
//	TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|   2    |
//	----------
//	|   1    |
//	----------
//	|   0    |
//	----------
func TileEvenVertically[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		size := Pt(0, r.Height/T(numtiles))
		c, _ := vsplit(r, size.Y)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(size)
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// horizontal splitting of r, starting from the left. In other words,
//
//	tiles := make([]geom.Rect[float64], 3)
//	TileEvenHorizontally(tiles, r)
//
// will produce
//
//	----------
//	|  |  |  |
//	----------
func TileEvenHorizontally[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

func TiledEvenHorizontally[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		size := Pt(r.Width/T(numtiles), 0)
		c, _ := hsplit(r, size.X)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(size)
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. Rows
// are filled from the bottom up and the final row is split evenly
// into at most cols columns. When that number is exceeded, a new row
// is added above it instead.
func TileRows[T Scalar](tiles []Rect[T], r Rect[T], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[T Scalar](numtiles int, r Rect[T], cols int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if (numtiles <= 0) || (cols <= 0) {
			return
		}

		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}
		rows := TiledEvenVertically(numrows, r)

		for row := range rows {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields the rectangle
// provided and then identical copies shifted upwards by its height
// repeatedly, thus producing an infinite vertical stack of rectangles
// above the first.
func VerticalStack[T Scalar](first Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		first = first.Canon()
		shift := Pt(0, first.Height)
		for {
			if !yield(first) {
				return
			}
			first = first.Add(shift)
		}
	}
}

// ArrangeVerticalStack arranges the subsequent rectangles of rects on
// top of the first, expanding all for which it is necessary so that
// they are all the same width including the first.
func ArrangeVerticalStack[T Scalar](rects []Rect[T]) {
	if len(rects) <= 1 {
		return
	}

	prev := rects[0].Canon()
	for _, rect := range rects {
		prev.Width = max(prev.Width, rect.Canon().Width)
	}
	rects[0] = prev

	for i := 1; i < len(rects); i++ {
		rects[i] = Rt(
			prev.X,
			prev.Top(),
			prev.Width,
			rects[i].Canon().Height,
		)
		prev = rects[i]
	}
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle as
// necessary if opposite edges are specified. Axes with no specified
// edges are centered in outer.
func Align[T Scalar](outer, inner Rect[T], edges Edges) Rect[T] {
	inner = inner.CenterAt(outer.Center())
	switch {
	case edges&EdgeBottom != 0:
		inner.Y = outer.Y
		if edges&EdgeTop != 0 {
			inner.Height = outer.Height
		}
	case edges&EdgeTop != 0:
		inner.Y = outer.Top() - inner.Height
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.X = outer.X
		if edges&EdgeRight != 0 {
			inner.Width = outer.Width
		}
	case edges&EdgeRight != 0:
		inner.X = outer.Right() - inner.Width
	}

	return inner
}

func insertTilesFromSeq[T Scalar](tiles []Rect[T], s iter.Seq[Rect[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
