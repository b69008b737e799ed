package geom

import (
	"iter"

	"deedles.dev/xdim"
	"deedles.dev/xiter"
)

// num returns v as a dimensionless scalar, for use as a scale factor.
func num[F Number](v F) xdim.Scalar[xdim.Dimless] {
	return xdim.Dimensionless(float64(v))
}

// hsplit splits a rectangle into two rectangles arranged
// horizontally.
func hsplit[U xdim.Unit](r Rect[U], w xdim.Scalar[U]) (left, right Rect[U]) {
	left = r.Resize(PtOf(w, r.Dy()))
	right = r.Resize(PtOf(r.Dx().Sub(w), r.Dy())).Add(PtOf(w, xdim.Zero[U]()))
	return left, right
}

func hsplitHalf[U xdim.Unit](r Rect[U]) (left, right Rect[U]) {
	return hsplit(r, r.Dx().Div(num(2)))
}

// vsplit splits a rectangle into two rectangles arranged vertically.
func vsplit[U xdim.Unit](r Rect[U], h xdim.Scalar[U]) (top, bottom Rect[U]) {
	top = r.Resize(PtOf(r.Dx(), h))
	bottom = r.Resize(PtOf(r.Dx(), r.Dy().Sub(h))).Add(PtOf(xdim.Zero[U](), h))
	return top, bottom
}

func vsplitHalf[U xdim.Unit](r Rect[U]) (top, bottom Rect[U]) {
	return vsplit(r, r.Dy().Div(num(2)))
}

// TileRightThenDown arranges and resizes the elements of tiles in
// order to split r into a series of rectangles that recursively split
// each section halfway to the right and then downwards. In other
// words,
//
//	tiles := make([]geom.Rect[xdim.Length], 4)
//	TileRightThenDown(tiles, r)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileRightThenDown[U xdim.Unit](tiles []Rect[U], r Rect[U]) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an iterator instead of inserting them
// into a slice.
func TiledRightThenDown[U xdim.Unit](numtiles int, r Rect[U]) iter.Seq[Rect[U]] {
	return func(yield func(Rect[U]) bool) {
		split, next := hsplitHalf[U], vsplitHalf[U]

		for range numtiles - 1 {
			var t Rect[U]
			t, r = split(r)
			if !yield(t) {
				return
			}
			split, next = next, split
		}

		yield(r)
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the result are a series of rectangles where the first is
// two-thirds the width of r and the rest are arranged vertically in
// an even split in the remaining space.
func TileTwoThirdsSidebar[U xdim.Unit](tiles []Rect[U], r Rect[U]) {
	insertTilesFromSeq(tiles, TiledTwoThirdsSidebar(len(tiles), r))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive rectangles from an iterator instead
// of inserting them into a slice.
func TiledTwoThirdsSidebar[U xdim.Unit](numtiles int, r Rect[U]) iter.Seq[Rect[U]] {
	return func(yield func(Rect[U]) bool) {
		first, rem := hsplit(r, r.Dx().Mul(num(2)).Div(num(3)))
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
// vertical splitting of r. In other words,
//
//	tiles := make([]geom.Rect[xdim.Length], 3)
//	TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically[U xdim.Unit](tiles []Rect[U], r Rect[U]) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically[U xdim.Unit](numtiles int, r Rect[U]) iter.Seq[Rect[U]] {
	return func(yield func(Rect[U]) bool) {
		size := PtOf(xdim.Zero[U](), r.Dy().Div(num(numtiles)))
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
// horizontal splitting of r. In other words,
//
//	tiles := make([]geom.Rect[xdim.Length], 3)
//	TileEvenHorizontally(tiles, r)
//
// will produce
//
// ----------
// |  |  |  |
// ----------
func TileEvenHorizontally[U xdim.Unit](tiles []Rect[U], r Rect[U]) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

func TiledEvenHorizontally[U xdim.Unit](numtiles int, r Rect[U]) iter.Seq[Rect[U]] {
	return func(yield func(Rect[U]) bool) {
		size := PtOf(r.Dx().Div(num(numtiles)), xdim.Zero[U]())
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
// series of rows and columns the union of which reproduces r. The
// final row of the table is split evenly into at most cols columns.
// When that number is exceeded, a new row is added below it instead.
func TileRows[U xdim.Unit](tiles []Rect[U], r Rect[U], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[U xdim.Unit](numtiles int, r Rect[U], cols int) iter.Seq[Rect[U]] {
	return func(yield func(Rect[U]) bool) {
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
// provided and then identical copies shifted downwards by its height
// repeatedly, thus producing an infinite vertical stack of rectangles
// below the first.
func VerticalStack[U xdim.Unit](first Rect[U]) iter.Seq[Rect[U]] {
	return func(yield func(Rect[U]) bool) {
		r := first.Canon()
		shift := PtOf(xdim.Zero[U](), r.Dy())
		for {
			if !yield(first) {
				return
			}
			first = first.Add(shift)
		}
	}
}

// ArrangeVerticalStack arranges the subsequent rectangles of rects
// underneath the first vertically, expanding all for which it is
// necessary so that they are all the same width including the first.
func ArrangeVerticalStack[U xdim.Unit](rects []Rect[U]) {
	if len(rects) <= 1 {
		return
	}

	prev := rects[0].Canon()
	for _, rect := range rects {
		if rect.Dx().Greater(prev.Dx()) {
			prev.Max.X = prev.Min.X.Add(rect.Dx())
		}
	}
	rects[0] = prev

	for i := 1; i < len(rects); i++ {
		rects[i] = RtOf(
			PtOf(prev.Min.X, prev.Max.Y),
			PtOf(prev.Max.X, prev.Max.Y.Add(rects[i].Dy())),
		)
		prev = rects[i]
	}
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle as
// necessary if opposite edges are specified.
func Align[U xdim.Unit](outer, inner Rect[U], edges Edges) Rect[U] {
	inner = inner.CenterAt(outer.Center())
	switch {
	case edges&EdgeTop != 0:
		inner.Min.Y, inner.Max.Y = outer.Min.Y, outer.Min.Y.Add(inner.Dy())
		if edges&EdgeBottom != 0 {
			inner.Max.Y = outer.Max.Y
		}
	case edges&EdgeBottom != 0:
		inner.Min.Y, inner.Max.Y = outer.Max.Y.Sub(inner.Dy()), outer.Max.Y
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.Min.X, inner.Max.X = outer.Min.X, outer.Min.X.Add(inner.Dx())
		if edges&EdgeRight != 0 {
			inner.Max.X = outer.Max.X
		}
	case edges&EdgeRight != 0:
		inner.Min.X, inner.Max.X = outer.Max.X.Sub(inner.Dx()), outer.Max.X
	}

	return inner
}

func insertTilesFromSeq[U xdim.Unit](tiles []Rect[U], s iter.Seq[Rect[U]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
