package xdim

import "math"

// The transcendental functions accept and return dimensionless
// scalars only. Exponentiating or taking the logarithm of a quantity
// that still carries a unit is not meaningful, so those calls do not
// compile; divide by a reference quantity first.

// Pi returns the mathematical constant π as a dimensionless scalar.
func Pi() Scalar[Dimless] { return Scalar[Dimless]{v: math.Pi} }

// Pow returns x**y.
func Pow(x, y Scalar[Dimless]) Scalar[Dimless] { return Scalar[Dimless]{v: math.Pow(x.v, y.v)} }

// Exp returns e**x.
func Exp(x Scalar[Dimless]) Scalar[Dimless] { return Scalar[Dimless]{v: math.Exp(x.v)} }

// Log returns the natural logarithm of x.
func Log(x Scalar[Dimless]) Scalar[Dimless] { return Scalar[Dimless]{v: math.Log(x.v)} }

// Sin returns the sine of the angle x, in radians.
func Sin(x Scalar[Dimless]) Scalar[Dimless] { return Scalar[Dimless]{v: math.Sin(x.v)} }

// Cos returns the cosine of the angle x, in radians.
func Cos(x Scalar[Dimless]) Scalar[Dimless] { return Scalar[Dimless]{v: math.Cos(x.v)} }

// Tan returns the tangent of the angle x, in radians.
func Tan(x Scalar[Dimless]) Scalar[Dimless] { return Scalar[Dimless]{v: math.Tan(x.v)} }
