package geom

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	// Tol is the structural tolerance in meters. Positions closer than Tol
	// describe the same structural location: on-beam membership, duplicate
	// column detection, and snapping of derived points all use it.
	Tol = 0.02

	// SnapTol is the interactive snap radius in meters used to resolve a
	// pointer position to a nearby column. It is intentionally much coarser
	// than [Tol]: picking is forgiving, structure is not.
	SnapTol = 0.4

	// CoordEps is the per-coordinate epsilon for deduplicating scalar
	// positions, e.g. merging polygon vertex coordinates into grid lines.
	CoordEps = 1e-4

	// Eps guards divisions and parallelism tests against floating-point
	// degeneracy. It has no physical meaning.
	Eps = 1e-9
)

// Axis identifies one of the two plan axes.
type Axis int

const (
	// AxisX is the horizontal plan axis.
	AxisX Axis = iota
	// AxisY is the vertical plan axis.
	AxisY
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Dist returns the Euclidean distance between p and q.
func Dist(p, q orb.Point) float64 {
	return math.Hypot(q[0]-p[0], q[1]-p[1])
}

// EqualWithin reports whether p and q are within tol of each other.
func EqualWithin(p, q orb.Point, tol float64) bool {
	return Dist(p, q) <= tol
}

// AlmostEqual reports whether two scalars differ by less than eps.
func AlmostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// Midpoint returns the midpoint of the segment from a to b.
func Midpoint(a, b orb.Point) orb.Point {
	return orb.Point{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
}

// BoundOf returns the axis-aligned bounding box of pts. The zero bound is
// returned for an empty slice.
func BoundOf(pts []orb.Point) orb.Bound {
	if len(pts) == 0 {
		return orb.Bound{}
	}
	b := orb.Bound{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = b.Extend(p)
	}
	return b
}

// DominantAxis returns the axis along which the vector d extends farther.
// Ties resolve to [AxisX].
func DominantAxis(d orb.Point) Axis {
	if math.Abs(d[1]) > math.Abs(d[0]) {
		return AxisY
	}
	return AxisX
}

// IsHorizontal reports whether the segment from a to b deviates from the x
// axis by at most [Tol] in y.
func IsHorizontal(a, b orb.Point) bool {
	return math.Abs(b[1]-a[1]) <= Tol
}

// IsVertical reports whether the segment from a to b deviates from the y
// axis by at most [Tol] in x.
func IsVertical(a, b orb.Point) bool {
	return math.Abs(b[0]-a[0]) <= Tol
}
