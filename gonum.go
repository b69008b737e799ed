package xdim

import (
	"fmt"

	"gonum.org/v1/gonum/unit"
)

// ToUnit converts s to a gonum unit.Unit carrying the same value and
// dimensions. The result is runtime-dimensioned; the static unit
// discipline ends at this boundary.
func ToUnit[U Unit](s Scalar[U]) *unit.Unit {
	return unit.New(s.v, dimensions(DimsOf[U]()))
}

// FromUnit converts a gonum quantity to a scalar of unit U. It fails
// if the quantity's dimensions do not match U.
func FromUnit[U Unit](q unit.Uniter) (Scalar[U], error) {
	u := q.Unit()
	if !unit.DimensionsMatch(u, ToUnit(Zero[U]())) {
		return Scalar[U]{}, fmt.Errorf("dimension mismatch: %v is not %v", u.Dimensions(), DimsOf[U]())
	}
	return Scalar[U]{v: u.Value()}, nil
}

func dimensions(d Dims) unit.Dimensions {
	dims := make(unit.Dimensions, 3)
	if d.Length != 0 {
		dims[unit.LengthDim] = d.Length
	}
	if d.Mass != 0 {
		dims[unit.MassDim] = d.Mass
	}
	if d.Time != 0 {
		dims[unit.TimeDim] = d.Time
	}
	return dims
}
