// Package geom provides unit-tagged rectangular geometry for layout
// work.
//
// It is patterned after image.Point and image.Rectangle, but every
// coordinate is carried as an xdim.Scalar so that positions and sizes
// keep their units through layout arithmetic. Raw numbers enter
// through [Pt] and [Rt] and leave through [Point.Strip] and
// [Rect.Strip].
package geom

import (
	"deedles.dev/xdim"
	"golang.org/x/exp/constraints"
)

// Number is a constraint for the raw numeric types accepted by the
// convenience constructors.
type Number interface {
	constraints.Integer | constraints.Float
}

// A Point is an X, Y coordinate pair with unit U.
type Point[U xdim.Unit] struct {
	X, Y xdim.Scalar[U]
}

// Pt returns the point (x, y) at unit U.
func Pt[U xdim.Unit, F Number](x, y F) Point[U] {
	return PtOf(xdim.New[U](float64(x)), xdim.New[U](float64(y)))
}

// PtOf returns the point (x, y).
func PtOf[U xdim.Unit](x, y xdim.Scalar[U]) Point[U] {
	return Point[U]{X: x, Y: y}
}

// Add returns the vector sum p+q.
func (p Point[U]) Add(q Point[U]) Point[U] {
	return Point[U]{X: p.X.Add(q.X), Y: p.Y.Add(q.Y)}
}

// Sub returns the vector difference p-q.
func (p Point[U]) Sub(q Point[U]) Point[U] {
	return Point[U]{X: p.X.Sub(q.X), Y: p.Y.Sub(q.Y)}
}

// Mul scales both coordinates by the dimensionless factor k.
func (p Point[U]) Mul(k xdim.Scalar[xdim.Dimless]) Point[U] {
	return Point[U]{X: p.X.Mul(k), Y: p.Y.Mul(k)}
}

// Div scales both coordinates by the inverse of the dimensionless
// factor k.
func (p Point[U]) Div(k xdim.Scalar[xdim.Dimless]) Point[U] {
	return Point[U]{X: p.X.Div(k), Y: p.Y.Div(k)}
}

// Strip discards the unit tag from both coordinates.
func (p Point[U]) Strip() Point[xdim.Dimless] {
	return Point[xdim.Dimless]{X: p.X.Strip(), Y: p.Y.Strip()}
}

// A Rect is a rectangle with corners Min and Max at unit U.
type Rect[U xdim.Unit] struct {
	Min, Max Point[U]
}

// Rt returns the rectangle (x0, y0)-(x1, y1) at unit U.
func Rt[U xdim.Unit, F Number](x0, y0, x1, y1 F) Rect[U] {
	return RtOf(Pt[U](x0, y0), Pt[U](x1, y1))
}

// RtOf returns the rectangle with the given corners.
func RtOf[U xdim.Unit](min, max Point[U]) Rect[U] {
	return Rect[U]{Min: min, Max: max}
}

// Dx returns the rectangle's width.
func (r Rect[U]) Dx() xdim.Scalar[U] { return r.Max.X.Sub(r.Min.X) }

// Dy returns the rectangle's height.
func (r Rect[U]) Dy() xdim.Scalar[U] { return r.Max.Y.Sub(r.Min.Y) }

// Size returns the rectangle's width and height as a point.
func (r Rect[U]) Size() Point[U] { return r.Max.Sub(r.Min) }

// Add returns the rectangle translated by p.
func (r Rect[U]) Add(p Point[U]) Rect[U] {
	return Rect[U]{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

// Sub returns the rectangle translated by -p.
func (r Rect[U]) Sub(p Point[U]) Rect[U] {
	return Rect[U]{Min: r.Min.Sub(p), Max: r.Max.Sub(p)}
}

// Canon returns the canonical version of r, with Min above and to the
// left of Max.
func (r Rect[U]) Canon() Rect[U] {
	if r.Max.X.Less(r.Min.X) {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y.Less(r.Min.Y) {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Center returns the rectangle's midpoint.
func (r Rect[U]) Center() Point[U] {
	return r.Min.Add(r.Size().Div(xdim.Dimensionless(2)))
}

// CenterAt returns the rectangle translated so that its center is p.
func (r Rect[U]) CenterAt(p Point[U]) Rect[U] {
	return r.Add(p.Sub(r.Center()))
}

// Resize returns the rectangle with the same Min and its size set to
// sz.
func (r Rect[U]) Resize(sz Point[U]) Rect[U] {
	return Rect[U]{Min: r.Min, Max: r.Min.Add(sz)}
}

// Contains reports whether p is inside r, borders included. r must be
// canonical.
func (r Rect[U]) Contains(p Point[U]) bool {
	return p.X.GreaterEq(r.Min.X) && p.X.LessEq(r.Max.X) &&
		p.Y.GreaterEq(r.Min.Y) && p.Y.LessEq(r.Max.Y)
}

// Strip discards the unit tag from all four coordinates.
func (r Rect[U]) Strip() Rect[xdim.Dimless] {
	return Rect[xdim.Dimless]{Min: r.Min.Strip(), Max: r.Max.Strip()}
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
