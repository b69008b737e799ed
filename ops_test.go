package xdim_test

import (
	"testing"

	"deedles.dev/xdim"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestProducts(t *testing.T) {
	d := xdim.MulVelocityTime(xdim.MetersPerSecond(3), xdim.Seconds(2))
	require.Equal(t, xdim.Meters(6), d)

	f := xdim.MulMassAcceleration(xdim.Kilograms(2), xdim.MetersPerSecondSquared(5))
	require.Equal(t, xdim.Newtons(10), f)

	e := xdim.MulForceLength(f, xdim.Meters(3))
	require.Equal(t, xdim.Joules(30), e)
}

func TestQuotients(t *testing.T) {
	v := xdim.DivLengthTime(xdim.Meters(6), xdim.Seconds(2))
	require.Equal(t, xdim.MetersPerSecond(3), v)

	hz := xdim.DivDimlessTime(xdim.Dimensionless(1), xdim.Seconds(0.5))
	require.Equal(t, xdim.Hertz(2), hz)

	require.True(t, xdim.DivLengthTime(xdim.Meters(1), xdim.Zero[xdim.Time]()).IsInf())
}

func TestMulDivRoundTrip(t *testing.T) {
	a := xdim.MetersPerSecond(7)
	b := xdim.Seconds(0.25)
	p := xdim.MulVelocityTime(a, b)
	require.Equal(t, xdim.Meters(1.75), p)
	require.Equal(t, a, xdim.DivLengthTime(p, b))
}

func TestSqSqrt(t *testing.T) {
	require.Equal(t, xdim.SquareMeters(16), xdim.SqLength(xdim.Meters(4)))
	require.Equal(t, xdim.Meters(4), xdim.SqrtArea(xdim.SqLength(xdim.Meters(4))))
	require.Equal(t, xdim.Seconds(1.5), xdim.SqrtTimeSq(xdim.SqTime(xdim.Seconds(1.5))))

	// The root of a square recovers the absolute value at the
	// original unit.
	x := xdim.MetersPerSecond(-3)
	require.Equal(t, x.Abs(), xdim.SqrtVelocitySq(xdim.SqVelocity(x)))

	require.True(t, xdim.SqrtArea(xdim.SquareMeters(-1)).IsNaN())
}

func TestOpDims(t *testing.T) {
	for name, test := range map[string]struct {
		got  xdim.Dims
		want xdim.Dims
	}{
		"momentum times velocity": {
			got:  xdim.MulMomentumVelocity(xdim.New[xdim.Momentum](1), xdim.MetersPerSecond(1)).Dims(),
			want: xdim.Dims{Length: 2, Mass: 1, Time: -2},
		},
		"length over timesq": {
			got:  xdim.DivLengthTimeSq(xdim.Meters(1), xdim.New[xdim.TimeSq](1)).Dims(),
			want: xdim.Dims{Length: 1, Time: -2},
		},
		"squared velocity": {
			got:  xdim.SqVelocity(xdim.MetersPerSecond(1)).Dims(),
			want: xdim.Dims{Length: 2, Time: -2},
		},
		"root of masssq": {
			got:  xdim.SqrtMassSq(xdim.New[xdim.MassSq](1)).Dims(),
			want: xdim.Dims{Mass: 1},
		},
	} {
		if diff := cmp.Diff(test.want, test.got); diff != "" {
			t.Errorf("%v: unexpected dims (-want +got):\n%s", name, diff)
		}
	}
}
