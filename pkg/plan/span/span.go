// Package span enforces the maximum sub-span rule: no stretch of beam
// between consecutive supports may exceed the configured limit for its
// axis. Oversized gaps receive automatic intermediate columns at limit
// multiples; automatic columns whose positions are no longer wanted are
// removed; and disposable columns lying on no beam at all are pruned.
//
// [Enforce] is idempotent and a pure function of the non-automatic columns
// and the beam set (up to fresh id assignment): running it twice changes
// nothing, and any sequence of edits followed by one enforcement converges
// to the same support layout.
package span

import (
	"math"
	"slices"

	"github.com/paulmach/orb"

	"github.com/framegrid/framegrid/pkg/geom"
	"github.com/framegrid/framegrid/pkg/plan"
)

// Result reports what one enforcement pass changed.
type Result struct {
	// Inserted counts auto columns created for oversized gaps.
	Inserted int `json:"inserted"`
	// Removed counts stale auto columns deleted because no beam wants a
	// support at their position anymore.
	Removed int `json:"removed"`
	// Pruned counts disposable columns deleted by the global orphan pass
	// because they no longer lie on any beam.
	Pruned int `json:"pruned"`
}

// Changed reports whether the pass modified the plan at all.
func (r Result) Changed() bool { return r.Inserted+r.Removed+r.Pruned > 0 }

// Enforce applies the sub-span rule to every beam of the plan. It refreshes
// beam geometry, computes the desired auto support positions from the
// non-automatic columns alone, creates the missing ones, removes stale
// ones, and finally prunes orphaned disposable columns.
//
// The desired positions deliberately ignore existing auto columns:
// measuring gaps between non-automatic supports only is what makes the
// operation idempotent, and matching stale autos against the desired set
// globally (rather than per beam) keeps crossing beams from fighting over
// a shared support.
func Enforce(p *plan.Plan) Result {
	p.RefreshGeometry()

	desired := desiredSupports(p)
	var res Result

	for _, pt := range desired {
		if p.FindNear(pt, geom.Tol, nil) == nil {
			p.AddColumn(plan.ColumnSpec{Position: pt, Kind: plan.KindAuto})
			res.Inserted++
		}
	}

	for _, c := range p.Columns() {
		if !c.IsAuto() || !c.IsActive() || !onAnyBeam(p, c) {
			continue
		}
		if !matchesAny(c.Position, desired) {
			p.RemoveColumn(c.ID)
			res.Removed++
		}
	}

	res.Pruned = pruneOrphans(p)
	p.RefreshGeometry()
	return res
}

// desiredSupports returns the auto column positions the current beam set
// wants: for every gap between consecutive non-automatic supports wider
// than the beam's limit, positions at limit multiples from the gap start
// until within [geom.Tol] of the gap end.
func desiredSupports(p *plan.Plan) []orb.Point {
	var out []orb.Point
	for _, b := range p.Beams() {
		span := b.Span()
		unit, ok := b.Unit()
		if !ok {
			continue
		}
		limit := p.Config().MaxSpanFor(b.Horizontal(), b.Vertical())
		if limit <= 0 {
			continue
		}
		offs := anchorOffsets(p, b, span)
		for i := 1; i < len(offs); i++ {
			lo, hi := offs[i-1], offs[i]
			if hi-lo <= limit+geom.Tol {
				continue
			}
			for k := 1; ; k++ {
				off := lo + float64(k)*limit
				if off >= hi-geom.Tol {
					break
				}
				out = append(out, orb.Point{b.Start[0] + unit[0]*off, b.Start[1] + unit[1]*off})
			}
		}
	}
	return out
}

// anchorOffsets returns the sorted metric positions of the beam's
// non-automatic supports along its axis, seeded with both endpoints and
// deduplicated within [geom.Tol].
func anchorOffsets(p *plan.Plan, b *plan.Beam, span float64) []float64 {
	offs := []float64{0, span}
	for _, st := range p.ColumnsOnBeam(b, geom.Tol, geom.Tol) {
		if st.Column.IsAuto() {
			continue
		}
		offs = append(offs, math.Max(0, math.Min(span, st.Offset)))
	}
	slices.Sort(offs)

	dedup := make([]float64, 0, len(offs))
	dedup = append(dedup, offs[0])
	for _, off := range offs[1:] {
		if off-dedup[len(dedup)-1] > geom.Tol {
			dedup = append(dedup, off)
		}
	}
	return dedup
}

func matchesAny(pos orb.Point, desired []orb.Point) bool {
	for _, d := range desired {
		if geom.EqualWithin(pos, d, geom.Tol) {
			return true
		}
	}
	return false
}

func onAnyBeam(p *plan.Plan, c *plan.Column) bool {
	for _, b := range p.Beams() {
		if geom.PointOnSegment(c.Position, b.Start, b.End, geom.Tol, geom.Tol) {
			return true
		}
	}
	return false
}

// pruneOrphans deletes disposable columns that lie on no beam: active auto
// columns, and transient clones no suspended column references anymore.
// Suspended autos are spared - they belong to an open move session, which
// restores or absorbs them when it ends.
func pruneOrphans(p *plan.Plan) int {
	referenced := make(map[plan.ColumnID]bool)
	for _, c := range p.Columns() {
		if c.SuspendedBy != "" {
			referenced[c.SuspendedBy] = true
		}
	}

	pruned := 0
	for _, c := range p.Columns() {
		if !c.Disposable() {
			continue
		}
		if c.IsTransient() && referenced[c.ID] {
			continue
		}
		if c.IsAuto() && c.IsSuspended() {
			continue
		}
		if !onAnyBeam(p, c) {
			p.RemoveColumn(c.ID)
			pruned++
		}
	}
	return pruned
}
