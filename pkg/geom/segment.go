package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// Projection describes where a point falls relative to the directed segment
// a->b. T is the normalized position along the segment (0 at a, 1 at b) and
// is deliberately unclamped so callers can distinguish points beyond either
// end. Perp is the unsigned perpendicular distance from the segment's
// infinite line, and Point is the foot of that perpendicular.
type Projection struct {
	T     float64
	Perp  float64
	Point orb.Point
}

// ProjectOntoSegment projects p onto the infinite line through a and b and
// returns its normalized position and perpendicular offset. ok is false for
// a zero-length segment.
func ProjectOntoSegment(p, a, b orb.Point) (Projection, bool) {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	len2 := dx*dx + dy*dy
	if len2 < Eps {
		return Projection{}, false
	}
	t := ((p[0]-a[0])*dx + (p[1]-a[1])*dy) / len2
	foot := orb.Point{a[0] + t*dx, a[1] + t*dy}
	return Projection{T: t, Perp: Dist(p, foot), Point: foot}, true
}

// ClosestOnSegment returns the point on the segment a->b nearest to p,
// clamping the projection to the segment's extent. A zero-length segment
// yields a.
func ClosestOnSegment(p, a, b orb.Point) orb.Point {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	len2 := dx*dx + dy*dy
	if len2 < Eps {
		return a
	}
	t := ((p[0]-a[0])*dx + (p[1]-a[1])*dy) / len2
	t = math.Max(0, math.Min(1, t))
	return orb.Point{a[0] + t*dx, a[1] + t*dy}
}

// DistToSegment returns the distance from p to the segment a->b.
func DistToSegment(p, a, b orb.Point) float64 {
	return Dist(p, ClosestOnSegment(p, a, b))
}

// PointOnSegment reports whether p lies on the segment a->b within perpTol
// perpendicular distance, allowing the projection to overshoot either end
// by up to margin (in meters). Zero-length segments reduce to a point
// comparison against perpTol.
func PointOnSegment(p, a, b orb.Point, perpTol, margin float64) bool {
	proj, ok := ProjectOntoSegment(p, a, b)
	if !ok {
		return EqualWithin(p, a, perpTol)
	}
	if proj.Perp > perpTol {
		return false
	}
	span := Dist(a, b)
	lo := -margin / span
	hi := 1 + margin/span
	return proj.T >= lo && proj.T <= hi
}

// IntersectRay intersects the ray origin+t*dir (t >= 0, with [Tol] slack
// behind the origin) with the segment a->b, allowing the hit to overshoot
// the segment ends by up to [Tol]. ok is false when the ray is parallel to
// the segment, when either direction is degenerate, or when the hit falls
// outside the allowed ranges.
func IntersectRay(origin, dir, a, b orb.Point) (orb.Point, bool) {
	dlen := math.Hypot(dir[0], dir[1])
	if dlen < Eps {
		return orb.Point{}, false
	}
	ux := dir[0] / dlen
	uy := dir[1] / dlen
	sx := b[0] - a[0]
	sy := b[1] - a[1]
	slen := math.Hypot(sx, sy)
	if slen < Eps {
		return orb.Point{}, false
	}
	denom := ux*sy - uy*sx
	if math.Abs(denom) < Eps {
		return orb.Point{}, false
	}
	qx := a[0] - origin[0]
	qy := a[1] - origin[1]
	t := (qx*sy - qy*sx) / denom // metric distance along the ray
	u := (qx*uy - qy*ux) / denom // normalized position along the segment
	if t < -Tol {
		return orb.Point{}, false
	}
	if u < -Tol/slen || u > 1+Tol/slen {
		return orb.Point{}, false
	}
	return orb.Point{origin[0] + t*ux, origin[1] + t*uy}, true
}
