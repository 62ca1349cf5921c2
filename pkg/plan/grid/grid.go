// Package grid fills a polygonal footprint with a regular column grid
// and the beams connecting it.
//
// [Fill] computes one set of grid lines per axis, evenly spaced so that
// no gap exceeds the configured span limit, places a user column at
// every line intersection that falls inside (or on the boundary of) the
// footprint, and connects neighbouring columns along each line with
// beams whose midpoints stay inside the footprint. Concave footprints
// therefore come out correctly: a beam that would bridge a notch is
// simply not created. The pass finishes with one round of span
// enforcement over the new beams.
package grid

import (
	"errors"
	"math"
	"slices"

	"github.com/paulmach/orb"

	"github.com/framegrid/framegrid/pkg/geom"
	"github.com/framegrid/framegrid/pkg/plan"
	"github.com/framegrid/framegrid/pkg/plan/span"
)

// ErrTooFewVertices is returned when the footprint polygon has fewer
// than three distinct vertices.
var ErrTooFewVertices = errors.New("grid: footprint needs at least three vertices")

// Options controls how [Fill] lays out the grid.
type Options struct {
	// Contour adds a grid line through every polygon vertex on top of
	// the evenly spaced ones, so the grid hugs the footprint outline.
	Contour bool
}

// Result reports what [Fill] changed.
type Result struct {
	// ColumnsCreated counts new user columns placed at intersections.
	ColumnsCreated int `json:"columns_created"`
	// ColumnsPromoted counts auto columns at intersections that were
	// promoted to user columns instead of being duplicated.
	ColumnsPromoted int `json:"columns_promoted"`
	// BeamsCreated counts beams added between neighbouring columns.
	BeamsCreated int `json:"beams_created"`
	// Span is the outcome of the enforcement round run after the fill.
	Span span.Result `json:"span"`
}

// Fill populates p with a column grid covering the given footprint.
//
// The polygon may be open or explicitly closed; a closing vertex equal
// to the first is ignored. Existing columns within [geom.Tol] of an
// intersection are reused rather than duplicated, and reused auto
// columns are promoted to user columns so later enforcement rounds
// cannot remove them.
func Fill(p *plan.Plan, polygon []orb.Point, opts Options) (Result, error) {
	ring := geom.PolygonRing(polygon)
	if len(ring) < 3 {
		return Result{}, ErrTooFewVertices
	}

	cfg := p.Config()
	bound := geom.BoundOf(ring)
	xs := lines(bound.Min[0], bound.Max[0], cfg.MaxSpanX)
	ys := lines(bound.Min[1], bound.Max[1], cfg.MaxSpanY)
	if opts.Contour {
		var vx, vy []float64
		for _, v := range ring {
			vx = append(vx, v[0])
			vy = append(vy, v[1])
		}
		xs = mergeCoords(xs, vx)
		ys = mergeCoords(ys, vy)
	}

	var res Result

	// Columns at every intersection inside or on the outline. The
	// column for each occupied (i, j) cell is remembered so the beam
	// pass below can connect neighbours without re-searching the plan.
	cells := make(map[[2]int]*plan.Column)
	for i, x := range xs {
		for j, y := range ys {
			pt := orb.Point{x, y}
			if !geom.PointInPolygon(ring, pt) {
				continue
			}
			if c := p.FindNear(pt, geom.Tol, nil); c != nil {
				if c.IsAuto() {
					c.Kind = plan.KindUser
					c.Home = c.Position
					res.ColumnsPromoted++
				}
				cells[[2]int{i, j}] = c
				continue
			}
			c := p.AddColumn(plan.ColumnSpec{Position: pt})
			cells[[2]int{i, j}] = c
			res.ColumnsCreated++
		}
	}

	// Beams between consecutive occupied cells along each grid line,
	// skipped when the midpoint leaves the footprint.
	connect := func(a, b *plan.Column) {
		if a == nil || b == nil {
			return
		}
		if !geom.PointInPolygon(ring, geom.Midpoint(a.Position, b.Position)) {
			return
		}
		if p.BeamBetween(a.ID, b.ID) != nil {
			return
		}
		if p.AddBeam(a.ID, b.ID, 0) != nil {
			res.BeamsCreated++
		}
	}
	for j := range ys {
		for i := 1; i < len(xs); i++ {
			connect(cells[[2]int{i - 1, j}], cells[[2]int{i, j}])
		}
	}
	for i := range xs {
		for j := 1; j < len(ys); j++ {
			connect(cells[[2]int{i, j - 1}], cells[[2]int{i, j}])
		}
	}

	res.Span = span.Enforce(p)
	return res, nil
}

// lines returns evenly spaced coordinates covering [min, max] with no
// gap wider than limit. The first line sits exactly on min and the last
// exactly on max.
func lines(min, max, limit float64) []float64 {
	width := max - min
	if width <= geom.Tol || limit <= 0 {
		return []float64{min}
	}
	n := int(math.Ceil(width / limit))
	if n < 1 {
		n = 1
	}
	step := width / float64(n)
	out := make([]float64, 0, n+1)
	for i := 0; i < n; i++ {
		out = append(out, min+float64(i)*step)
	}
	return append(out, max)
}

// mergeCoords folds extra coordinates into an ascending line set,
// dropping entries that coincide with an existing line within
// [geom.CoordEps].
func mergeCoords(base, extra []float64) []float64 {
	merged := append(slices.Clone(base), extra...)
	slices.Sort(merged)
	out := make([]float64, 0, len(merged))
	for _, v := range merged {
		if len(out) > 0 && v-out[len(out)-1] <= geom.CoordEps {
			continue
		}
		out = append(out, v)
	}
	return out
}
