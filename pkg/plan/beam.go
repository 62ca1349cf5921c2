package plan

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/framegrid/framegrid/pkg/geom"
)

// HeightRatio is the fixed beam height rule: height is always span divided
// by this, recomputed on every geometry refresh and never stored
// authoritatively.
const HeightRatio = 10.0

// Beam is a horizontal structural member between two columns.
//
// StartID and EndID are the current endpoints and may be rewritten while a
// move session is open (pointing at transient clones) or when a support
// anchor splits the beam. OriginStartID and OriginEndID are the conceptual
// endpoints: they identify which logical column each end belongs to, so the
// store can reattach the beam when suspended columns return.
//
// Start, End, and Height are caches derived from the endpoint columns by
// [Plan.RefreshGeometry]. The zero value is not usable - create beams
// through [Plan.AddBeam].
type Beam struct {
	ID            BeamID
	StartID       ColumnID
	EndID         ColumnID
	OriginStartID ColumnID
	OriginEndID   ColumnID

	Start orb.Point // cached position of the start column
	End   orb.Point // cached position of the end column

	Width  float64
	Height float64 // always Span()/HeightRatio after a refresh
}

// Span returns the cached beam length in meters.
func (b *Beam) Span() float64 { return geom.Dist(b.Start, b.End) }

// Dir returns the cached direction vector from start to end (not
// normalized).
func (b *Beam) Dir() orb.Point {
	return orb.Point{b.End[0] - b.Start[0], b.End[1] - b.Start[1]}
}

// Unit returns the cached unit direction from start to end, and false for a
// degenerate (zero-length) beam.
func (b *Beam) Unit() (orb.Point, bool) {
	d := b.Dir()
	n := math.Hypot(d[0], d[1])
	if n < geom.Eps {
		return orb.Point{}, false
	}
	return orb.Point{d[0] / n, d[1] / n}, true
}

// Midpoint returns the cached midpoint of the beam.
func (b *Beam) Midpoint() orb.Point { return geom.Midpoint(b.Start, b.End) }

// Horizontal reports whether the beam runs along the x axis within
// structural tolerance.
func (b *Beam) Horizontal() bool { return geom.IsHorizontal(b.Start, b.End) }

// Vertical reports whether the beam runs along the y axis within structural
// tolerance.
func (b *Beam) Vertical() bool { return geom.IsVertical(b.Start, b.End) }

// Touches reports whether either current endpoint is the given column.
func (b *Beam) Touches(id ColumnID) bool {
	return b.StartID == id || b.EndID == id
}

// EndpointFor returns the current endpoint id for one conceptual end:
// the start end when origin matches OriginStartID, the end end otherwise.
func (b *Beam) EndpointFor(origin ColumnID) ColumnID {
	if b.OriginStartID == origin {
		return b.StartID
	}
	return b.EndID
}
