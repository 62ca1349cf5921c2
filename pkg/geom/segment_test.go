package geom

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestProjectOntoSegment_Interior(t *testing.T) {
	proj, ok := ProjectOntoSegment(orb.Point{5, 3}, orb.Point{0, 0}, orb.Point{10, 0})

	if !ok {
		t.Fatal("ProjectOntoSegment() ok = false, want true")
	}
	if proj.T != 0.5 {
		t.Errorf("T = %v, want 0.5", proj.T)
	}
	if proj.Perp != 3 {
		t.Errorf("Perp = %v, want 3", proj.Perp)
	}
	if proj.Point != (orb.Point{5, 0}) {
		t.Errorf("Point = %v, want {5 0}", proj.Point)
	}
}

func TestProjectOntoSegment_Unclamped(t *testing.T) {
	// Points beyond either end keep their true parameter so callers can
	// tell overshoot from interior hits.
	proj, ok := ProjectOntoSegment(orb.Point{-5, 0}, orb.Point{0, 0}, orb.Point{10, 0})

	if !ok {
		t.Fatal("ProjectOntoSegment() ok = false, want true")
	}
	if proj.T != -0.5 {
		t.Errorf("T = %v, want -0.5", proj.T)
	}
}

func TestProjectOntoSegment_Degenerate(t *testing.T) {
	_, ok := ProjectOntoSegment(orb.Point{1, 1}, orb.Point{3, 3}, orb.Point{3, 3})

	if ok {
		t.Error("ProjectOntoSegment() ok = true for zero-length segment, want false")
	}
}

func TestClosestOnSegment_Clamps(t *testing.T) {
	a := orb.Point{0, 0}
	b := orb.Point{10, 0}

	if got := ClosestOnSegment(orb.Point{-4, 2}, a, b); got != a {
		t.Errorf("ClosestOnSegment() = %v, want clamp to %v", got, a)
	}
	if got := ClosestOnSegment(orb.Point{14, -2}, a, b); got != b {
		t.Errorf("ClosestOnSegment() = %v, want clamp to %v", got, b)
	}
	if got := ClosestOnSegment(orb.Point{5, 7}, a, b); got != (orb.Point{5, 0}) {
		t.Errorf("ClosestOnSegment() = %v, want {5 0}", got)
	}
}

func TestDistToSegment(t *testing.T) {
	d := DistToSegment(orb.Point{5, 4}, orb.Point{0, 0}, orb.Point{10, 0})

	if d != 4 {
		t.Errorf("DistToSegment() = %v, want 4", d)
	}
	// Beyond the end the distance is to the endpoint, not the line.
	d = DistToSegment(orb.Point{13, 4}, orb.Point{0, 0}, orb.Point{10, 0})
	if d != 5 {
		t.Errorf("DistToSegment() = %v, want 5", d)
	}
}

func TestPointOnSegment(t *testing.T) {
	a := orb.Point{0, 0}
	b := orb.Point{10, 0}

	if !PointOnSegment(orb.Point{4, 0.01}, a, b, Tol, Tol) {
		t.Error("PointOnSegment() = false for interior point within Tol, want true")
	}
	if PointOnSegment(orb.Point{4, 0.1}, a, b, Tol, Tol) {
		t.Error("PointOnSegment() = true beyond perpendicular tolerance, want false")
	}
	if PointOnSegment(orb.Point{10.5, 0}, a, b, Tol, Tol) {
		t.Error("PointOnSegment() = true beyond longitudinal margin, want false")
	}
	if !PointOnSegment(orb.Point{10.01, 0}, a, b, Tol, Tol) {
		t.Error("PointOnSegment() = false within longitudinal margin, want true")
	}
}

func TestIntersectRay_Hit(t *testing.T) {
	// Ray pointing up from (5,-5) against the horizontal segment y=0.
	hit, ok := IntersectRay(orb.Point{5, -5}, orb.Point{0, 1}, orb.Point{0, 0}, orb.Point{10, 0})

	if !ok {
		t.Fatal("IntersectRay() ok = false, want true")
	}
	if !EqualWithin(hit, orb.Point{5, 0}, 1e-9) {
		t.Errorf("IntersectRay() = %v, want {5 0}", hit)
	}
}

func TestIntersectRay_BehindOrigin(t *testing.T) {
	_, ok := IntersectRay(orb.Point{5, 5}, orb.Point{0, 1}, orb.Point{0, 0}, orb.Point{10, 0})

	if ok {
		t.Error("IntersectRay() ok = true for segment behind the ray, want false")
	}
}

func TestIntersectRay_Parallel(t *testing.T) {
	_, ok := IntersectRay(orb.Point{0, 1}, orb.Point{1, 0}, orb.Point{0, 0}, orb.Point{10, 0})

	if ok {
		t.Error("IntersectRay() ok = true for parallel ray, want false")
	}
}

func TestIntersectRay_OvershootSlack(t *testing.T) {
	// Hits 1 cm past the segment end still count: anchors may land within
	// Tol of a beam endpoint.
	hit, ok := IntersectRay(orb.Point{10.01, -5}, orb.Point{0, 1}, orb.Point{0, 0}, orb.Point{10, 0})

	if !ok {
		t.Fatal("IntersectRay() ok = false just past the end, want true")
	}
	if math.Abs(hit[0]-10.01) > 1e-9 {
		t.Errorf("hit x = %v, want 10.01", hit[0])
	}

	_, ok = IntersectRay(orb.Point{10.5, -5}, orb.Point{0, 1}, orb.Point{0, 0}, orb.Point{10, 0})
	if ok {
		t.Error("IntersectRay() ok = true far past the end, want false")
	}
}

func TestIntersectRay_DegenerateInput(t *testing.T) {
	if _, ok := IntersectRay(orb.Point{0, 0}, orb.Point{0, 0}, orb.Point{0, 1}, orb.Point{5, 1}); ok {
		t.Error("IntersectRay() ok = true for zero direction, want false")
	}
	if _, ok := IntersectRay(orb.Point{0, 0}, orb.Point{0, 1}, orb.Point{5, 1}, orb.Point{5, 1}); ok {
		t.Error("IntersectRay() ok = true for zero-length segment, want false")
	}
}
