//go:build go1.24

package geom_test

import (
	"testing"

	"deedles.dev/xgeom/geom"
)

func BenchmarkIntersected(b *testing.B) {
	r := geom.Rt(0.0, 0, 10, 10)
	s := geom.Rt(5.0, 5, 10, 10)
	for b.Loop() {
		r.Intersected(s)
	}
}

func BenchmarkTiledRows(b *testing.B) {
	r := geom.Rt(0, 0, 1920, 1080)
	for b.Loop() {
		for range geom.TiledRows(16, r, 4) {
		}
	}
}
