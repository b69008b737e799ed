package xdim_test

import (
	"testing"

	"deedles.dev/xdim"
	"github.com/stretchr/testify/require"
)

func TestPow(t *testing.T) {
	require.Equal(t, xdim.Dimensionless(8), xdim.Pow(xdim.Dimensionless(2), xdim.Dimensionless(3)))
	require.Equal(t, xdim.Dimensionless(1), xdim.Pow(xdim.Dimensionless(7), xdim.Zero[xdim.Dimless]()))
}

func TestExpLog(t *testing.T) {
	require.Equal(t, xdim.Dimensionless(1), xdim.Exp(xdim.Zero[xdim.Dimless]()))
	require.Equal(t, xdim.Zero[xdim.Dimless](), xdim.Log(xdim.Dimensionless(1)))
	require.True(t, xdim.Log(xdim.Zero[xdim.Dimless]()).IsInf())
	require.True(t, xdim.Log(xdim.Dimensionless(-1)).IsNaN())
}

func TestTrig(t *testing.T) {
	require.Equal(t, xdim.Dimensionless(-1), xdim.Cos(xdim.Pi()))
	require.InDelta(t, 0, xdim.Sin(xdim.Pi()).Float(), 1e-15)
	require.InDelta(t, 1, xdim.Tan(xdim.Pi().Div(xdim.Dimensionless(4))).Float(), 1e-15)
}
