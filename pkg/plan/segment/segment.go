// Package segment splits beams into the sub-segments bounded by their
// supports. Splitting is pure and read-only: it never mutates the plan,
// and downstream consumers (rendering, takeoff listings, the segments API)
// derive everything they need from the returned values.
package segment

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/framegrid/framegrid/pkg/geom"
	"github.com/framegrid/framegrid/pkg/plan"
)

// Segment is one stretch of beam between two consecutive supports.
// Start and End lie exactly on the beam axis (supports within tolerance
// are projected onto it), so the lengths of a beam's segments always sum
// to its span.
type Segment struct {
	StartID plan.ColumnID `json:"start_id"`
	EndID   plan.ColumnID `json:"end_id"`
	Start   orb.Point     `json:"start"`
	End     orb.Point     `json:"end"`
	Length  float64       `json:"length"`
	Height  float64       `json:"height"` // always Length/10
}

// Split returns the beam's sub-segments: one per pair of consecutive
// supports on its axis, each with height length/10. A beam with fewer
// than two distinct supports (or a degenerate beam) is returned whole as
// a single segment. The plan is not modified.
func Split(p *plan.Plan, b *plan.Beam) []Segment {
	unit, ok := b.Unit()
	if !ok {
		return nil
	}
	span := b.Span()

	stations := p.ColumnsOnBeam(b, geom.Tol, geom.Tol)
	merged := mergeStations(stations, span)
	if len(merged) < 2 {
		return []Segment{{
			StartID: b.StartID,
			EndID:   b.EndID,
			Start:   b.Start,
			End:     b.End,
			Length:  span,
			Height:  span / plan.HeightRatio,
		}}
	}

	at := func(off float64) orb.Point {
		return orb.Point{b.Start[0] + unit[0]*off, b.Start[1] + unit[1]*off}
	}
	segs := make([]Segment, 0, len(merged)-1)
	for i := 1; i < len(merged); i++ {
		lo, hi := merged[i-1], merged[i]
		length := hi.off - lo.off
		segs = append(segs, Segment{
			StartID: lo.id,
			EndID:   hi.id,
			Start:   at(lo.off),
			End:     at(hi.off),
			Length:  length,
			Height:  length / plan.HeightRatio,
		})
	}
	return segs
}

type anchor struct {
	id  plan.ColumnID
	off float64
}

// mergeStations clamps station offsets onto the beam extent and collapses
// supports closer than [geom.Tol] along the axis into one anchor, keeping
// the first. Stations arrive sorted by offset.
func mergeStations(stations []plan.Station, span float64) []anchor {
	var out []anchor
	for _, st := range stations {
		off := math.Max(0, math.Min(span, st.Offset))
		if len(out) > 0 && off-out[len(out)-1].off <= geom.Tol {
			continue
		}
		out = append(out, anchor{id: st.Column.ID, off: off})
	}
	return out
}
