package geom

import "github.com/paulmach/orb"

// PointInPolygon reports whether p lies inside or on the boundary of the
// polygon described by ring. The ring is an open vertex list (the closing
// edge from the last vertex back to the first is implied). Containment uses
// the even-odd crossing-number rule; points within [Tol] of any edge count
// as inside, so boundary points are always accepted regardless of crossing
// parity. Rings with fewer than three vertices contain nothing.
func PointInPolygon(ring []orb.Point, p orb.Point) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		if DistToSegment(p, ring[i], ring[(i+1)%n]) <= Tol {
			return true
		}
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		yi, yj := ring[i][1], ring[j][1]
		if (yi > p[1]) == (yj > p[1]) {
			continue
		}
		// The edge straddles the horizontal through p, so yi != yj and the
		// division below is safe.
		x := ring[i][0] + (p[1]-yi)/(yj-yi)*(ring[j][0]-ring[i][0])
		if p[0] < x {
			inside = !inside
		}
	}
	return inside
}

// PolygonRing normalizes a vertex list into an open ring: a duplicated
// closing vertex (equal to the first within [Tol]) is dropped. The input is
// not modified.
func PolygonRing(vertices []orb.Point) []orb.Point {
	n := len(vertices)
	if n >= 2 && EqualWithin(vertices[0], vertices[n-1], Tol) {
		n--
	}
	ring := make([]orb.Point, n)
	copy(ring, vertices[:n])
	return ring
}
