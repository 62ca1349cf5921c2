package grid

import (
	"errors"
	"fmt"
	"testing"

	"github.com/paulmach/orb"

	"github.com/framegrid/framegrid/pkg/config"
	"github.com/framegrid/framegrid/pkg/geom"
	"github.com/framegrid/framegrid/pkg/plan"
	"github.com/framegrid/framegrid/pkg/plan/span"
)

func newPlan(t *testing.T, maxX, maxY float64) *plan.Plan {
	t.Helper()
	cfg := config.Default()
	cfg.MaxSpanX = maxX
	cfg.MaxSpanY = maxY
	n := 0
	return plan.New(cfg, plan.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id%03d", n)
	}))
}

func columnAt(t *testing.T, p *plan.Plan, x, y float64) *plan.Column {
	t.Helper()
	return p.FindNear(orb.Point{x, y}, geom.Tol, nil)
}

// A 10 x 10 square with 5 m limits comes out as a 3x3 grid with twelve
// beams, none of which needs an auto support afterwards.
//
//	(0,10) --- (5,10) --- (10,10)
//	   |          |          |
//	(0,5)  --- (5,5)  --- (10,5)
//	   |          |          |
//	(0,0)  --- (5,0)  --- (10,0)
func TestFill_Rectangle(t *testing.T) {
	p := newPlan(t, 5, 5)
	footprint := []orb.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	res, err := Fill(p, footprint, Options{})
	if err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if res.ColumnsCreated != 9 {
		t.Errorf("ColumnsCreated = %d, want 9", res.ColumnsCreated)
	}
	if res.BeamsCreated != 12 {
		t.Errorf("BeamsCreated = %d, want 12", res.BeamsCreated)
	}
	if res.Span.Changed() {
		t.Errorf("Span = %+v, want no enforcement changes", res.Span)
	}
	for _, x := range []float64{0, 5, 10} {
		for _, y := range []float64{0, 5, 10} {
			if columnAt(t, p, x, y) == nil {
				t.Errorf("no column at (%v, %v)", x, y)
			}
		}
	}
	for _, b := range p.Beams() {
		if b.Span() > 5+geom.Tol {
			t.Errorf("beam %s span = %v, want <= 5", b.ID, b.Span())
		}
	}
}

// A U-shaped footprint must not get a beam bridging the open cavity:
// the pair (10,20)-(20,20) flanks the mouth and its midpoint lies
// outside the outline.
//
//	(0,20)--(10,20)    (20,20)--(30,20)
//	   |       |          |        |
//	   |    (10,10)----(20,10)     |
//	   |                           |
//	(0,0)-----------------------(30,0)
func TestFill_SkipsNotchCrossing(t *testing.T) {
	p := newPlan(t, 10, 10)
	footprint := []orb.Point{
		{0, 0}, {30, 0}, {30, 20}, {20, 20}, {20, 10}, {10, 10}, {10, 20}, {0, 20},
	}

	res, err := Fill(p, footprint, Options{})
	if err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if res.ColumnsCreated != 12 {
		t.Errorf("ColumnsCreated = %d, want 12", res.ColumnsCreated)
	}
	if res.BeamsCreated != 16 {
		t.Errorf("BeamsCreated = %d, want 16", res.BeamsCreated)
	}

	left := columnAt(t, p, 10, 20)
	right := columnAt(t, p, 20, 20)
	if left == nil || right == nil {
		t.Fatal("missing columns at the cavity mouth")
	}
	if b := p.BeamBetween(left.ID, right.ID); b != nil {
		t.Errorf("BeamBetween(%s, %s) = %s, want none across the cavity", left.ID, right.ID, b.ID)
	}
	edge := columnAt(t, p, 0, 20)
	if edge == nil {
		t.Fatal("missing column at (0, 20)")
	}
	if p.BeamBetween(edge.ID, left.ID) == nil {
		t.Errorf("no beam along the top of the left arm")
	}
}

// Contour mode pushes grid lines through the polygon vertices so the
// notch corner of an L-shape gets its own column.
func TestFill_ContourAddsVertexLines(t *testing.T) {
	footprint := []orb.Point{{0, 0}, {9, 0}, {9, 4}, {4, 4}, {4, 9}, {0, 9}}

	plain := newPlan(t, 6, 6)
	if _, err := Fill(plain, footprint, Options{}); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if c := columnAt(t, plain, 4, 4); c != nil {
		t.Errorf("plain fill placed a column at the notch corner (%s)", c.ID)
	}

	contoured := newPlan(t, 6, 6)
	if _, err := Fill(contoured, footprint, Options{Contour: true}); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if columnAt(t, contoured, 4, 4) == nil {
		t.Error("contour fill placed no column at the notch corner")
	}
	if c := columnAt(t, contoured, 4.5, 4.5); c != nil {
		t.Errorf("column %s outside the footprint at (4.5, 4.5)", c.ID)
	}
	for _, b := range contoured.Beams() {
		if b.Span() > 6+geom.Tol {
			t.Errorf("beam %s span = %v, want <= 6", b.ID, b.Span())
		}
	}
}

func TestFill_ReusesAndPromotesExisting(t *testing.T) {
	p := newPlan(t, 5, 5)
	a := p.AddColumn(plan.ColumnSpec{Position: orb.Point{0, 5}})
	b := p.AddColumn(plan.ColumnSpec{Position: orb.Point{10, 5}})
	p.AddBeam(a.ID, b.ID, 0)
	span.Enforce(p)

	mid := columnAt(t, p, 5, 5)
	if mid == nil || !mid.IsAuto() {
		t.Fatalf("enforcement did not create an auto support at (5, 5)")
	}

	res, err := Fill(p, []orb.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, Options{})
	if err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if res.ColumnsPromoted != 1 {
		t.Errorf("ColumnsPromoted = %d, want 1", res.ColumnsPromoted)
	}
	if res.ColumnsCreated != 6 {
		t.Errorf("ColumnsCreated = %d, want 6", res.ColumnsCreated)
	}
	if mid.Kind != plan.KindUser {
		t.Errorf("promoted column kind = %v, want %v", mid.Kind, plan.KindUser)
	}
	if mid.Home != mid.Position {
		t.Errorf("promoted column home = %v, want %v", mid.Home, mid.Position)
	}
}

// A footprint thinner than the position tolerance collapses to a single
// grid line along its long axis.
func TestFill_HairlineFootprint(t *testing.T) {
	p := newPlan(t, 6, 6)
	res, err := Fill(p, []orb.Point{{0, 0}, {12, 0}, {12, 0.01}}, Options{})
	if err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if res.ColumnsCreated != 3 {
		t.Errorf("ColumnsCreated = %d, want 3", res.ColumnsCreated)
	}
	if res.BeamsCreated != 2 {
		t.Errorf("BeamsCreated = %d, want 2", res.BeamsCreated)
	}
}

func TestFill_TooFewVertices(t *testing.T) {
	p := newPlan(t, 5, 5)
	if _, err := Fill(p, []orb.Point{{0, 0}, {10, 10}}, Options{}); !errors.Is(err, ErrTooFewVertices) {
		t.Errorf("Fill(two points) error = %v, want ErrTooFewVertices", err)
	}
	// A closing vertex does not count towards the minimum.
	if _, err := Fill(p, []orb.Point{{0, 0}, {10, 10}, {0, 0}}, Options{}); !errors.Is(err, ErrTooFewVertices) {
		t.Errorf("Fill(closed two points) error = %v, want ErrTooFewVertices", err)
	}
}
