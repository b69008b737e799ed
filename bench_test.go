//go:build go1.24

package xdim_test

import (
	"testing"

	"deedles.dev/xdim"
)

func BenchmarkStep(b *testing.B) {
	pos := xdim.Meters(0)
	v := xdim.MetersPerSecond(3)
	a := xdim.MetersPerSecondSquared(-0.1)
	dt := xdim.Seconds(0.016)

	for b.Loop() {
		v = v.Add(xdim.MulAccelerationTime(a, dt))
		pos = pos.Add(xdim.MulVelocityTime(v, dt))
	}

	_ = pos
}
