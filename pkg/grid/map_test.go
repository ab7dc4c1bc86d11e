package grid_test

import (
	"testing"

	"golang.org/x/image/math/f64"

	"go-wave-tick/pkg/grid"
)

func TestNeighborsOrderAndBounds(t *testing.T) {
	m := grid.NewMap(3, 3, 100)

	got := m.Neighbors(grid.Position{Row: 1, Col: 1})
	want := []grid.Position{
		{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2},
		{Row: 2, Col: 1}, {Row: 2, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d neighbors, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbor %d = %v, want %v", i, got[i], want[i])
		}
	}

	if corner := m.Neighbors(grid.Position{Row: 0, Col: 0}); len(corner) != 3 {
		t.Errorf("corner has %d neighbors, want 3", len(corner))
	}
}

func TestPixelGeometry(t *testing.T) {
	m := grid.NewMap(4, 4, 100)
	p := grid.Position{Row: 2, Col: 1}

	if got := m.Pixels(p); got != (f64.Vec2{100, 200}) {
		t.Errorf("Pixels = %v, want [100 200]", got)
	}
	if got := m.Center(p); got != (f64.Vec2{150, 250}) {
		t.Errorf("Center = %v, want [150 250]", got)
	}
	if got := m.PositionFromPixels(f64.Vec2{199.5, 200}); got != p {
		t.Errorf("PositionFromPixels = %v, want %v", got, p)
	}

	poly := m.BorderPolygon(p)
	want := []f64.Vec2{{100, 200}, {200, 200}, {200, 300}, {100, 300}}
	if len(poly) != len(want) {
		t.Fatalf("polygon has %d points, want %d", len(poly), len(want))
	}
	for i := range want {
		if poly[i] != want[i] {
			t.Errorf("corner %d = %v, want %v", i, poly[i], want[i])
		}
	}
}

func TestDistanceIsChebyshev(t *testing.T) {
	a := grid.Position{Row: 0, Col: 0}
	if d := a.Distance(grid.Position{Row: 3, Col: -5}); d != 5 {
		t.Errorf("Distance = %d, want 5", d)
	}
}
