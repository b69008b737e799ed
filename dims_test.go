package xdim_test

import (
	"testing"

	"deedles.dev/xdim"
	"github.com/stretchr/testify/require"
)

func TestDimsOf(t *testing.T) {
	require.Equal(t, xdim.Dims{}, xdim.DimsOf[xdim.Dimless]())
	require.Equal(t, xdim.Dims{Length: 1}, xdim.DimsOf[xdim.Length]())
	require.Equal(t, xdim.Dims{Length: 1, Mass: 1, Time: -2}, xdim.DimsOf[xdim.Force]())
}

func TestDimsString(t *testing.T) {
	for want, got := range map[string]xdim.Dims{
		"":            xdim.DimsOf[xdim.Dimless](),
		"m":           xdim.DimsOf[xdim.Length](),
		"kg":          xdim.DimsOf[xdim.Mass](),
		"s^-1":        xdim.DimsOf[xdim.Frequency](),
		"m^2":         xdim.DimsOf[xdim.Area](),
		"m s^-1":      xdim.DimsOf[xdim.Velocity](),
		"kg m s^-2":   xdim.DimsOf[xdim.Force](),
		"kg m^2 s^-2": xdim.DimsOf[xdim.Energy](),
	} {
		require.Equal(t, want, got.String())
	}
}
