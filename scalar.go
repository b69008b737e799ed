// Package xdim provides float64 scalars tagged with physical units at
// the type level. Arithmetic that would mix incompatible units does
// not compile: values of the same unit combine through methods, while
// products, quotients, squares, and roots that change the unit of
// their operands exist only as the generated functions in ops-gen.go,
// and only for combinations whose result unit is part of the package's
// unit set.
package xdim

import (
	"fmt"
	"math"
)

// Scalar is a float64 payload tagged with the unit U. The tag is a
// phantom type parameter: a Scalar occupies exactly the space of its
// payload and is copied by value. The zero value is 0 at unit U.
//
// Special float values propagate through arithmetic at any unit
// following the usual IEEE 754 rules. Division by zero yields an
// infinity and the square root of a negative value yields a NaN; no
// operation returns an error.
type Scalar[U Unit] struct {
	v float64
}

// New returns a scalar of unit U with payload v.
func New[U Unit](v float64) Scalar[U] { return Scalar[U]{v: v} }

// Zero returns the additive identity at unit U.
func Zero[U Unit]() Scalar[U] { return Scalar[U]{} }

// NaN returns a quiet NaN at unit U.
func NaN[U Unit]() Scalar[U] { return Scalar[U]{v: math.NaN()} }

// Inf returns an infinity at unit U: positive if sign >= 0, negative
// otherwise.
func Inf[U Unit](sign int) Scalar[U] {
	if sign < 0 {
		return Scalar[U]{v: math.Inf(-1)}
	}
	return Scalar[U]{v: math.Inf(1)}
}

// InfDir returns the infinity at unit U whose sign matches the payload
// of dir. A zero or positive payload, NaN included, selects +Inf.
func InfDir[U Unit](dir Scalar[U]) Scalar[U] {
	if dir.v < 0 {
		return Inf[U](-1)
	}
	return Inf[U](1)
}

// Float returns the raw payload.
func (s Scalar[U]) Float() float64 { return s.v }

// Strip discards the unit tag, returning the payload as a
// dimensionless scalar. It is the single sanctioned escape hatch from
// the unit discipline, for call sites where a bare number is genuinely
// required, such as handing a coordinate to a renderer.
func (s Scalar[U]) Strip() Scalar[Dimless] { return Scalar[Dimless]{v: s.v} }

// Dims returns the exponents of the scalar's unit.
func (s Scalar[U]) Dims() Dims { return DimsOf[U]() }

func (s Scalar[U]) String() string {
	d := DimsOf[U]()
	if d == (Dims{}) {
		return fmt.Sprintf("%v", s.v)
	}
	return fmt.Sprintf("%v %v", s.v, d)
}

// IsNaN reports whether the payload is a NaN.
func (s Scalar[U]) IsNaN() bool { return math.IsNaN(s.v) }

// IsInf reports whether the payload is an infinity of either sign.
func (s Scalar[U]) IsInf() bool { return math.IsInf(s.v, 0) }

// IsZero reports whether the payload is exactly zero.
func (s Scalar[U]) IsZero() bool { return s.v == 0 }

// NonZero reports whether the payload is anything other than zero,
// NaN and the infinities included.
func (s Scalar[U]) NonZero() bool { return s.v != 0 }

// Neg returns the scalar with its sign flipped.
func (s Scalar[U]) Neg() Scalar[U] { return Scalar[U]{v: -s.v} }

// Abs returns the absolute value.
func (s Scalar[U]) Abs() Scalar[U] { return Scalar[U]{v: math.Abs(s.v)} }

// Add returns s + t.
func (s Scalar[U]) Add(t Scalar[U]) Scalar[U] { return Scalar[U]{v: s.v + t.v} }

// Sub returns s - t.
func (s Scalar[U]) Sub(t Scalar[U]) Scalar[U] { return Scalar[U]{v: s.v - t.v} }

// Mod returns the floating-point remainder of s/t. The result keeps
// the unit and takes the sign of s.
func (s Scalar[U]) Mod(t Scalar[U]) Scalar[U] { return Scalar[U]{v: math.Mod(s.v, t.v)} }

// Mul scales s by the dimensionless factor k. Unlike the generated
// product functions, Mul cannot change the unit of s, so the result
// can always be rebound in place: s = s.Mul(k).
func (s Scalar[U]) Mul(k Scalar[Dimless]) Scalar[U] { return Scalar[U]{v: s.v * k.v} }

// Div scales s by the inverse of the dimensionless factor k.
func (s Scalar[U]) Div(k Scalar[Dimless]) Scalar[U] { return Scalar[U]{v: s.v / k.v} }

// The comparisons follow IEEE 754: every ordering against a NaN is
// false, and a NaN is not equal to anything, itself included.

func (s Scalar[U]) Less(t Scalar[U]) bool      { return s.v < t.v }
func (s Scalar[U]) LessEq(t Scalar[U]) bool    { return s.v <= t.v }
func (s Scalar[U]) Greater(t Scalar[U]) bool   { return s.v > t.v }
func (s Scalar[U]) GreaterEq(t Scalar[U]) bool { return s.v >= t.v }
func (s Scalar[U]) Equal(t Scalar[U]) bool     { return s.v == t.v }
