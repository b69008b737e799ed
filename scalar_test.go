package xdim_test

import (
	"math"
	"testing"

	"deedles.dev/xdim"
	"github.com/stretchr/testify/require"
)

func TestZero(t *testing.T) {
	z := xdim.Zero[xdim.Length]()
	require.True(t, z.IsZero())
	require.False(t, z.IsNaN())
	require.False(t, z.IsInf())
	require.False(t, z.NonZero())

	var d xdim.Scalar[xdim.Length]
	require.Equal(t, z, d)
}

func TestNaN(t *testing.T) {
	n := xdim.NaN[xdim.Time]()
	require.True(t, n.IsNaN())
	require.False(t, n.IsZero())
	require.False(t, n.IsInf())
	require.True(t, n.NonZero())

	require.False(t, n.Equal(n))
	require.False(t, n.Less(n))
	require.False(t, n.Greater(n))
	require.False(t, n.LessEq(n))
	require.False(t, n.GreaterEq(n))
}

func TestInf(t *testing.T) {
	require.True(t, xdim.Inf[xdim.Mass](1).IsInf())
	require.True(t, xdim.Inf[xdim.Mass](-1).IsInf())
	require.True(t, xdim.Inf[xdim.Mass](1).Greater(xdim.Inf[xdim.Mass](-1)))

	require.Equal(t, xdim.Inf[xdim.Time](1), xdim.InfDir(xdim.Seconds(3)))
	require.Equal(t, xdim.Inf[xdim.Time](1), xdim.InfDir(xdim.Zero[xdim.Time]()))
	require.Equal(t, xdim.Inf[xdim.Time](-1), xdim.InfDir(xdim.Seconds(-3)))
}

func TestPi(t *testing.T) {
	require.Equal(t, math.Pi, xdim.Pi().Float())
}

func TestAddSub(t *testing.T) {
	a := xdim.Meters(12.5)
	b := xdim.Meters(3.25)
	require.Equal(t, xdim.Meters(15.75), a.Add(b))
	require.Equal(t, a, a.Add(b).Sub(b))
}

func TestNegAbs(t *testing.T) {
	a := xdim.Newtons(4.5)
	require.Equal(t, xdim.Newtons(-4.5), a.Neg())
	require.Equal(t, a, a.Neg().Abs())
	require.Equal(t, a, a.Abs())
}

func TestScale(t *testing.T) {
	a := xdim.Meters(12.5)
	require.Equal(t, xdim.Meters(25), a.Mul(xdim.Dimensionless(2)))
	require.Equal(t, xdim.Meters(6.25), a.Div(xdim.Dimensionless(2)))
	require.True(t, a.Div(xdim.Zero[xdim.Dimless]()).IsInf())
}

func TestMod(t *testing.T) {
	require.Equal(t, xdim.Seconds(2), xdim.Seconds(5).Mod(xdim.Seconds(3)))
	require.Equal(t, xdim.Seconds(-2), xdim.Seconds(-5).Mod(xdim.Seconds(3)))
}

func TestComparisons(t *testing.T) {
	a := xdim.Kilograms(1)
	b := xdim.Kilograms(2)
	require.True(t, a.Less(b))
	require.True(t, b.Greater(a))
	require.True(t, a.LessEq(a))
	require.True(t, a.GreaterEq(a))
	require.True(t, a.Equal(a))
	require.False(t, a.Equal(b))
}

func TestStrip(t *testing.T) {
	g := xdim.MetersPerSecondSquared(9.81)
	require.Equal(t, xdim.Dimensionless(9.81), g.Strip())
	require.Equal(t, 9.81, g.Float())
}

func TestString(t *testing.T) {
	require.Equal(t, "3 m s^-1", xdim.MetersPerSecond(3).String())
	require.Equal(t, "12 kg m s^-2", xdim.Newtons(12).String())
	require.Equal(t, "2.5", xdim.Dimensionless(2.5).String())
}
