package xdim_test

import (
	"testing"

	"deedles.dev/xdim"
	"github.com/stretchr/testify/require"
)

func TestGonumRoundTrip(t *testing.T) {
	u := xdim.ToUnit(xdim.Newtons(12))
	require.Equal(t, 12.0, u.Value())

	f, err := xdim.FromUnit[xdim.Force](u)
	require.Nil(t, err)
	require.Equal(t, xdim.Newtons(12), f)
}

func TestGonumMismatch(t *testing.T) {
	u := xdim.ToUnit(xdim.Newtons(12))
	_, err := xdim.FromUnit[xdim.Energy](u)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "dimension mismatch")
}
