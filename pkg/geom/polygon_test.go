package geom

import (
	"testing"

	"github.com/paulmach/orb"
)

func square10() []orb.Point {
	return []orb.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
}

func TestPointInPolygon_Inside(t *testing.T) {
	if !PointInPolygon(square10(), orb.Point{5, 5}) {
		t.Error("PointInPolygon() = false for interior point, want true")
	}
}

func TestPointInPolygon_Outside(t *testing.T) {
	if PointInPolygon(square10(), orb.Point{15, 5}) {
		t.Error("PointInPolygon() = true for exterior point, want false")
	}
	if PointInPolygon(square10(), orb.Point{-1, -1}) {
		t.Error("PointInPolygon() = true for exterior corner, want false")
	}
}

func TestPointInPolygon_Boundary(t *testing.T) {
	// Edge and vertex hits are accepted regardless of crossing parity.
	if !PointInPolygon(square10(), orb.Point{10, 5}) {
		t.Error("PointInPolygon() = false on edge, want true")
	}
	if !PointInPolygon(square10(), orb.Point{0, 0}) {
		t.Error("PointInPolygon() = false on vertex, want true")
	}
	if !PointInPolygon(square10(), orb.Point{10.01, 5}) {
		t.Error("PointInPolygon() = false within Tol of edge, want true")
	}
}

func TestPointInPolygon_Concave(t *testing.T) {
	// L-shape: the notch between (5,5) and (10,5)..(10,10) is outside.
	//
	//   (0,10)----(5,10)
	//     |          |
	//     |   (5,5)--+...(10,5)
	//     |          :      |
	//   (0,0)---------(10,0)
	l := []orb.Point{{0, 0}, {10, 0}, {10, 5}, {5, 5}, {5, 10}, {0, 10}}

	if !PointInPolygon(l, orb.Point{2, 8}) {
		t.Error("PointInPolygon() = false in the leg, want true")
	}
	if PointInPolygon(l, orb.Point{8, 8}) {
		t.Error("PointInPolygon() = true in the notch, want false")
	}
	if !PointInPolygon(l, orb.Point{8, 2}) {
		t.Error("PointInPolygon() = false in the base, want true")
	}
}

func TestPointInPolygon_TooFewVertices(t *testing.T) {
	if PointInPolygon([]orb.Point{{0, 0}, {10, 0}}, orb.Point{5, 0}) {
		t.Error("PointInPolygon() = true for a 2-vertex ring, want false")
	}
	if PointInPolygon(nil, orb.Point{0, 0}) {
		t.Error("PointInPolygon() = true for nil ring, want false")
	}
}

func TestPolygonRing_DropsClosingVertex(t *testing.T) {
	closed := []orb.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}

	ring := PolygonRing(closed)
	if len(ring) != 4 {
		t.Errorf("PolygonRing() len = %d, want 4", len(ring))
	}
	if len(closed) != 5 {
		t.Error("PolygonRing() modified its input")
	}

	open := square10()
	if got := PolygonRing(open); len(got) != 4 {
		t.Errorf("PolygonRing() len = %d for open ring, want 4", len(got))
	}
}
