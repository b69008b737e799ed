package xdim

//go:generate go run ./generate.go

import (
	"fmt"
	"strings"
)

// Unit is a type-level unit tag: a set of integer exponents over the
// base dimensions, encoded as a zero-size type. A tag carries no
// runtime state; it exists only to drive type checking. The tags
// themselves, and the operations between them, are generated by
// generate.go.
type Unit interface {
	dims() Dims
}

// Dims holds the exponents of a unit over the base dimensions.
type Dims struct {
	Length, Mass, Time int
}

// DimsOf returns the exponents of the unit tag U.
func DimsOf[U Unit]() Dims {
	var u U
	return u.dims()
}

// String formats the dimensions in conventional symbol order, e.g.
// "kg m s^-2". Dimensionless Dims format as the empty string.
func (d Dims) String() string {
	var sb strings.Builder
	for _, c := range []struct {
		sym string
		exp int
	}{{"kg", d.Mass}, {"m", d.Length}, {"s", d.Time}} {
		if c.exp == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.sym)
		if c.exp != 1 {
			fmt.Fprintf(&sb, "^%d", c.exp)
		}
	}
	return sb.String()
}
