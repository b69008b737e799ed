package geom_test

import (
	"testing"

	"deedles.dev/xdim"
	"deedles.dev/xdim/geom"
	"github.com/stretchr/testify/require"
)

func TestTileRightThenDown(t *testing.T) {
	tiles := make([]geom.Rect[xdim.Length], 4)
	geom.TileRightThenDown(tiles, geom.Rt[xdim.Length](0, 0, 8, 8))
	require.Equal(t, []geom.Rect[xdim.Length]{
		geom.Rt[xdim.Length](0, 0, 4, 8),
		geom.Rt[xdim.Length](4, 0, 8, 4),
		geom.Rt[xdim.Length](4, 4, 6, 8),
		geom.Rt[xdim.Length](6, 4, 8, 8),
	}, tiles)
}

func TestTileTwoThirdsSidebar(t *testing.T) {
	tiles := make([]geom.Rect[xdim.Length], 3)
	geom.TileTwoThirdsSidebar(tiles, geom.Rt[xdim.Length](0, 0, 9, 6))
	require.Equal(t, []geom.Rect[xdim.Length]{
		geom.Rt[xdim.Length](0, 0, 6, 6),
		geom.Rt[xdim.Length](6, 0, 9, 3),
		geom.Rt[xdim.Length](6, 3, 9, 6),
	}, tiles)
}

func TestTileEvenVertically(t *testing.T) {
	tiles := make([]geom.Rect[xdim.Length], 3)
	geom.TileEvenVertically(tiles, geom.Rt[xdim.Length](0, 0, 9, 9))
	require.Equal(t, []geom.Rect[xdim.Length]{
		geom.Rt[xdim.Length](0, 0, 9, 3),
		geom.Rt[xdim.Length](0, 3, 9, 6),
		geom.Rt[xdim.Length](0, 6, 9, 9),
	}, tiles)
}

func TestTileEvenHorizontally(t *testing.T) {
	tiles := make([]geom.Rect[xdim.Length], 2)
	geom.TileEvenHorizontally(tiles, geom.Rt[xdim.Length](0, 0, 8, 4))
	require.Equal(t, []geom.Rect[xdim.Length]{
		geom.Rt[xdim.Length](0, 0, 4, 4),
		geom.Rt[xdim.Length](4, 0, 8, 4),
	}, tiles)
}

func TestTileRows(t *testing.T) {
	tiles := make([]geom.Rect[xdim.Length], 3)
	geom.TileRows(tiles, geom.Rt[xdim.Length](0, 0, 4, 4), 2)
	require.Equal(t, []geom.Rect[xdim.Length]{
		geom.Rt[xdim.Length](0, 0, 2, 2),
		geom.Rt[xdim.Length](2, 0, 4, 2),
		geom.Rt[xdim.Length](0, 2, 4, 4),
	}, tiles)
}

func TestVerticalStack(t *testing.T) {
	var got []geom.Rect[xdim.Length]
	for r := range geom.VerticalStack(geom.Rt[xdim.Length](0, 0, 2, 3)) {
		got = append(got, r)
		if len(got) == 3 {
			break
		}
	}
	require.Equal(t, []geom.Rect[xdim.Length]{
		geom.Rt[xdim.Length](0, 0, 2, 3),
		geom.Rt[xdim.Length](0, 3, 2, 6),
		geom.Rt[xdim.Length](0, 6, 2, 9),
	}, got)
}

func TestArrangeVerticalStack(t *testing.T) {
	rects := []geom.Rect[xdim.Length]{
		geom.Rt[xdim.Length](0, 0, 2, 1),
		geom.Rt[xdim.Length](5, 5, 8, 7),
	}
	geom.ArrangeVerticalStack(rects)
	require.Equal(t, []geom.Rect[xdim.Length]{
		geom.Rt[xdim.Length](0, 0, 3, 1),
		geom.Rt[xdim.Length](0, 1, 3, 3),
	}, rects)
}

func TestAlign(t *testing.T) {
	outer := geom.Rt[xdim.Length](0, 0, 10, 10)
	inner := geom.Rt[xdim.Length](0, 0, 4, 2)

	require.Equal(t, geom.Rt[xdim.Length](0, 0, 4, 2), geom.Align(outer, inner, geom.EdgeTop|geom.EdgeLeft))
	require.Equal(t, geom.Rt[xdim.Length](6, 8, 10, 10), geom.Align(outer, inner, geom.EdgeBottom|geom.EdgeRight))
	require.Equal(t, geom.Rt[xdim.Length](3, 0, 7, 10), geom.Align(outer, inner, geom.EdgeTop|geom.EdgeBottom))
	require.Equal(t, geom.Rt[xdim.Length](3, 4, 7, 6), geom.Align(outer, inner, geom.EdgeNone))
}
