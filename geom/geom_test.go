package geom_test

import (
	"testing"

	"deedles.dev/xdim"
	"deedles.dev/xdim/geom"
	"github.com/stretchr/testify/require"
)

func TestPoint(t *testing.T) {
	p := geom.Pt[xdim.Length](3, 4)
	q := geom.Pt[xdim.Length](1, 2)

	require.Equal(t, geom.Pt[xdim.Length](4, 6), p.Add(q))
	require.Equal(t, geom.Pt[xdim.Length](2, 2), p.Sub(q))
	require.Equal(t, geom.Pt[xdim.Length](6, 8), p.Mul(xdim.Dimensionless(2)))
	require.Equal(t, geom.Pt[xdim.Length](1.5, 2), p.Div(xdim.Dimensionless(2)))
	require.Equal(t, geom.Pt[xdim.Dimless](3, 4), p.Strip())
}

func TestRect(t *testing.T) {
	r := geom.Rt[xdim.Length](0, 0, 4, 2)
	require.Equal(t, xdim.Meters(4), r.Dx())
	require.Equal(t, xdim.Meters(2), r.Dy())
	require.Equal(t, geom.Pt[xdim.Length](4, 2), r.Size())
	require.Equal(t, geom.Pt[xdim.Length](2, 1), r.Center())

	require.Equal(t, geom.Rt[xdim.Length](1, 1, 5, 3), r.Add(geom.Pt[xdim.Length](1, 1)))
	require.Equal(t, r, r.Add(geom.Pt[xdim.Length](1, 1)).Sub(geom.Pt[xdim.Length](1, 1)))
	require.Equal(t, geom.Rt[xdim.Length](3, 4, 7, 6), r.CenterAt(geom.Pt[xdim.Length](5, 5)))
	require.Equal(t, geom.Rt[xdim.Length](0, 0, 1, 1), r.Resize(geom.Pt[xdim.Length](1, 1)))
}

func TestRectCanon(t *testing.T) {
	require.Equal(t, geom.Rt[xdim.Time](0, 5, 3, 7), geom.Rt[xdim.Time](3, 7, 0, 5).Canon())
	r := geom.Rt[xdim.Time](1, 2, 3, 4)
	require.Equal(t, r, r.Canon())
}

func TestRectContains(t *testing.T) {
	r := geom.Rt[xdim.Length](0, 0, 4, 2)
	require.True(t, r.Contains(geom.Pt[xdim.Length](1, 1)))
	require.True(t, r.Contains(geom.Pt[xdim.Length](0, 0)))
	require.True(t, r.Contains(geom.Pt[xdim.Length](4, 2)))
	require.False(t, r.Contains(geom.Pt[xdim.Length](5, 1)))
	require.False(t, r.Contains(geom.Pt[xdim.Length](1, -1)))
}
