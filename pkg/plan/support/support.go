// Package support rests one beam on another. Linking casts a ray from
// the dependent beam's nearer end onto the support beam, materializes
// the landing point as a hidden anchor column, splits the support beam
// there, and re-points the dependent end at the anchor. The dependent
// beam then follows the support beam through later edits like any other
// column-supported beam.
package support

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/framegrid/framegrid/pkg/geom"
	"github.com/framegrid/framegrid/pkg/plan"
	"github.com/framegrid/framegrid/pkg/plan/span"
)

// Link rests the dependent beam on the support beam and returns the
// column carrying the landing point.
//
// The landing direction is controlled by angle, in radians: zero lands
// square on the support beam, larger values tilt the ray away from
// perpendicular towards the support's axis, so an angle of pi/2 runs
// parallel and can never land. Both tilt directions are tried and the
// nearer hit wins. Link reports false without touching the plan when
// either beam id is unknown, the beams are identical, or no ray reaches
// the support segment.
//
// The landing point reuses an existing active column within [geom.Tol];
// an auto column found there is promoted to a support anchor so span
// enforcement cannot remove it while a beam rests on it. Otherwise a
// hidden anchor column is created. Splitting is skipped when the
// landing coincides with a support endpoint. The call finishes with a
// geometry refresh and one span enforcement round.
func Link(p *plan.Plan, dependent, support plan.BeamID, angle float64) (*plan.Column, bool) {
	dep, okD := p.Beam(dependent)
	sup, okS := p.Beam(support)
	if !okD || !okS || dependent == support {
		return nil, false
	}
	unit, ok := sup.Unit()
	if !ok {
		return nil, false
	}

	fromStart := geom.DistToSegment(dep.Start, sup.Start, sup.End) <= geom.DistToSegment(dep.End, sup.Start, sup.End)
	from := dep.End
	if fromStart {
		from = dep.Start
	}

	hit, ok := castRays(from, unit, angle, sup)
	if !ok {
		return nil, false
	}

	anchor := anchorAt(p, hit)
	splitSupport(p, sup, anchor)

	// The chosen end now belongs to the anchor, conceptually too: the
	// origin id moves along so suspension bookkeeping follows the anchor
	// rather than the column the beam used to rest on.
	if fromStart {
		dep.StartID = anchor.ID
		dep.OriginStartID = anchor.ID
	} else {
		dep.EndID = anchor.ID
		dep.OriginEndID = anchor.ID
	}

	p.RefreshGeometry()
	span.Enforce(p)
	return anchor, true
}

// castRays intersects the two tilted rays with the support segment and
// returns the hit nearer to the ray origin.
func castRays(from, unit orb.Point, angle float64, sup *plan.Beam) (orb.Point, bool) {
	theta := math.Pi/2 - angle
	best := orb.Point{}
	bestDist := math.Inf(1)
	found := false
	for _, dir := range [2]orb.Point{rotate(unit, theta), rotate(unit, -theta)} {
		hit, ok := geom.IntersectRay(from, dir, sup.Start, sup.End)
		if !ok {
			continue
		}
		if d := geom.Dist(from, hit); d < bestDist {
			best, bestDist = hit, d
			found = true
		}
	}
	return best, found
}

func rotate(v orb.Point, theta float64) orb.Point {
	sin, cos := math.Sincos(theta)
	return orb.Point{v[0]*cos - v[1]*sin, v[0]*sin + v[1]*cos}
}

// anchorAt returns the column carrying the landing point: a reused
// active column near the hit, or a fresh hidden anchor. Reused auto
// columns are promoted so they stop being disposable.
func anchorAt(p *plan.Plan, at orb.Point) *plan.Column {
	if c := p.FindNear(at, geom.Tol, nil); c != nil {
		if c.IsAuto() || c.IsAnchor() {
			c.Kind = plan.KindAnchor
			c.Role = plan.RoleSupport
		}
		return c
	}
	return p.AddColumn(plan.ColumnSpec{
		Position: at,
		Kind:     plan.KindAnchor,
		Hidden:   true,
		Role:     plan.RoleSupport,
	})
}

// splitSupport cuts the support beam in two at the anchor. The original
// beam keeps its identity for the first half; the second half is a new
// beam inheriting width and the far conceptual endpoint. Anchors within
// [geom.Tol] of an existing endpoint leave the beam whole.
func splitSupport(p *plan.Plan, sup *plan.Beam, anchor *plan.Column) *plan.Beam {
	if geom.EqualWithin(anchor.Position, sup.Start, geom.Tol) ||
		geom.EqualWithin(anchor.Position, sup.End, geom.Tol) {
		return nil
	}
	farID, farOrigin := sup.EndID, sup.OriginEndID
	second := p.AddBeam(anchor.ID, farID, sup.Width)
	if second == nil {
		return nil
	}
	second.OriginEndID = farOrigin
	sup.EndID = anchor.ID
	sup.OriginEndID = anchor.ID
	return second
}
