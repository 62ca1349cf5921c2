package move

import (
	"fmt"
	"slices"
	"testing"

	"github.com/paulmach/orb"

	"github.com/framegrid/framegrid/pkg/config"
	"github.com/framegrid/framegrid/pkg/geom"
	"github.com/framegrid/framegrid/pkg/plan"
	"github.com/framegrid/framegrid/pkg/plan/span"
)

func newPlan(t *testing.T, limit float64) *plan.Plan {
	t.Helper()
	cfg := config.Default()
	cfg.MaxSpanX = limit
	cfg.MaxSpanY = limit
	n := 0
	return plan.New(cfg, plan.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id%03d", n)
	}))
}

func addCol(t *testing.T, p *plan.Plan, x, y float64) *plan.Column {
	t.Helper()
	c := p.AddColumn(plan.ColumnSpec{Position: orb.Point{x, y}})
	if c == nil {
		t.Fatalf("AddColumn(%v, %v) = nil", x, y)
	}
	return c
}

func connect(t *testing.T, p *plan.Plan, a, b *plan.Column) *plan.Beam {
	t.Helper()
	bm := p.AddBeam(a.ID, b.ID, 0)
	if bm == nil {
		t.Fatalf("AddBeam(%s, %s) = nil", a.ID, b.ID)
	}
	return bm
}

// ring builds a 10x10 square of user columns with perimeter beams and one
// enforcement round, leaving an auto support on every side.
func ring(t *testing.T, p *plan.Plan) (a, b, c, d *plan.Column) {
	t.Helper()
	a = addCol(t, p, 0, 0)
	b = addCol(t, p, 10, 0)
	c = addCol(t, p, 10, 10)
	d = addCol(t, p, 0, 10)
	connect(t, p, a, b)
	connect(t, p, b, c)
	connect(t, p, c, d)
	connect(t, p, d, a)
	span.Enforce(p)
	return a, b, c, d
}

func activePositions(p *plan.Plan) []string {
	var out []string
	for _, c := range p.ActiveColumns() {
		out = append(out, fmt.Sprintf("%.3f,%.3f", c.Position[0], c.Position[1]))
	}
	slices.Sort(out)
	return out
}

func TestStart_ClonesAndSuspends(t *testing.T) {
	p := newPlan(t, 6)
	a := addCol(t, p, 0, 0)
	b := addCol(t, p, 6, 0)
	c := addCol(t, p, 12, 0)
	ab := connect(t, p, a, b)
	bc := connect(t, p, b, c)
	section := b.Section

	s := Start(p, []plan.ColumnID{b.ID, b.ID, "ghost"})
	if s == nil {
		t.Fatal("Start() = nil, want a session")
	}
	if len(s.Pairs()) != 1 {
		t.Fatalf("Pairs() = %d entries, want 1 (dedup + unknown skipped)", len(s.Pairs()))
	}
	pr := s.Pairs()[0]
	clone, ok := p.Column(pr.CloneID)
	if !ok {
		t.Fatal("clone not in the plan")
	}
	if !clone.IsTransient() || clone.CloneOf != b.ID {
		t.Errorf("clone kind/CloneOf = %v/%s, want transient clone of %s", clone.Kind, clone.CloneOf, b.ID)
	}
	if clone.Position != b.Position {
		t.Errorf("clone at %v, want the original's position %v", clone.Position, b.Position)
	}
	if clone.Section != section {
		t.Errorf("clone section = %+v, want inherited %+v", clone.Section, section)
	}
	if !b.IsSuspended() || b.SuspendedBy != clone.ID {
		t.Errorf("original activity/SuspendedBy = %v/%s, want suspended by %s", b.Activity, b.SuspendedBy, clone.ID)
	}
	if ab.EndID != clone.ID || ab.OriginEndID != b.ID {
		t.Errorf("beam end = %s (origin %s), want clone %s with origin preserved", ab.EndID, ab.OriginEndID, clone.ID)
	}
	if bc.StartID != clone.ID || bc.OriginStartID != b.ID {
		t.Errorf("beam start = %s (origin %s), want clone %s with origin preserved", bc.StartID, bc.OriginStartID, clone.ID)
	}

	if again := Start(p, []plan.ColumnID{a.ID}); again != s {
		t.Error("Start() on an open session did not return the open session")
	}
	if !a.IsActive() {
		t.Error("second Start() touched the plan")
	}
	if For(p) != s {
		t.Error("For() did not find the open session")
	}

	s.Finalize()
	if s.Active() {
		t.Error("session still active after Finalize")
	}
	if For(p) != nil {
		t.Error("For() found a finalized session")
	}
	cols := p.ColumnCount()
	s.Apply(3, 0) // no-op on a closed session
	s.Finalize()
	if p.ColumnCount() != cols {
		t.Error("Apply/Finalize on a closed session modified the plan")
	}
}

func TestStart_NoEligibleTargets(t *testing.T) {
	p := newPlan(t, 6)
	a := addCol(t, p, 0, 0)
	b := addCol(t, p, 6, 0)
	connect(t, p, a, b)
	ghost := addCol(t, p, 3, 3)
	ghost.Kind = plan.KindTransient
	p.Suspend(a.ID, "")
	cols := p.ColumnCount()

	if s := Start(p, nil); s != nil {
		t.Error("Start(nil targets) opened a session")
	}
	if s := Start(p, []plan.ColumnID{"ghost"}); s != nil {
		t.Error("Start(unknown target) opened a session")
	}
	if s := Start(p, []plan.ColumnID{a.ID}); s != nil {
		t.Error("Start(suspended target) opened a session")
	}
	if s := Start(p, []plan.ColumnID{ghost.ID}); s != nil {
		t.Error("Start(transient target) opened a session")
	}
	if p.ColumnCount() != cols {
		t.Error("failed Start modified the plan")
	}
}

// Sliding the middle column of a row onto its right neighbor suspends the
// neighbor; sliding past releases it again and re-forms its beam against
// the clone. The swept-over stretch keeps an auto support behind.
//
//	a ------- b ------- c          before
//	a ----------------- b'=c      Apply(6, 0): c covered
//	a ------------- c --- b'       Apply(10, 0): c released
func TestApply_CoverageAndRelease(t *testing.T) {
	p := newPlan(t, 6)
	a := addCol(t, p, 0, 0)
	b := addCol(t, p, 6, 0)
	c := addCol(t, p, 12, 0)
	connect(t, p, a, b)
	connect(t, p, b, c)
	span.Enforce(p)

	s := Start(p, []plan.ColumnID{b.ID})
	if s == nil {
		t.Fatal("Start() = nil")
	}
	clone, _ := p.Column(s.Pairs()[0].CloneID)

	s.Apply(6, 0)
	if !c.IsSuspended() || c.SuspendedBy != clone.ID {
		t.Errorf("neighbor activity/SuspendedBy = %v/%s, want covered by %s", c.Activity, c.SuspendedBy, clone.ID)
	}
	support := p.FindNear(orb.Point{6, 0}, geom.Tol, nil)
	if support == nil || !support.IsAuto() {
		t.Error("no auto support left behind on the swept stretch")
	}

	s.Apply(10, 0)
	if !c.IsActive() {
		t.Error("neighbor not released after the clone moved past it")
	}
	if clone.Position != (orb.Point{16, 0}) {
		t.Errorf("clone at %v, want (16, 0)", clone.Position)
	}
	if p.BeamBetween(clone.ID, c.ID) == nil {
		t.Error("beam between clone and released neighbor not re-formed")
	}

	s.Finalize()
	if _, ok := p.Column(b.ID); ok {
		t.Error("suspended original survived Finalize")
	}
	if clone.Kind != plan.KindUser || clone.CloneOf != "" {
		t.Errorf("promoted clone kind/CloneOf = %v/%q, want user with no clone link", clone.Kind, clone.CloneOf)
	}
	if clone.Home != (orb.Point{16, 0}) {
		t.Errorf("promoted clone home = %v, want its final position", clone.Home)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v after Finalize", err)
	}
}

// Finalizing while a neighbor is still covered absorbs it: the neighbor
// disappears and its beams, collapsed onto the clone, are dropped.
func TestFinalize_AbsorbsCoveredNeighbor(t *testing.T) {
	p := newPlan(t, 6)
	a := addCol(t, p, 0, 0)
	b := addCol(t, p, 6, 0)
	c := addCol(t, p, 12, 0)
	connect(t, p, a, b)
	connect(t, p, b, c)
	span.Enforce(p)

	s := Start(p, []plan.ColumnID{b.ID})
	s.Apply(6, 0)
	s.Finalize()

	if _, ok := p.Column(c.ID); ok {
		t.Error("covered neighbor survived Finalize")
	}
	if p.BeamCount() != 1 {
		t.Errorf("BeamCount() = %d, want 1 (collapsed beam dropped)", p.BeamCount())
	}
	stats := p.Stats()
	if stats.Suspended != 0 {
		t.Errorf("Suspended = %d, want 0", stats.Suspended)
	}
	if stats.Columns != 3 { // a, promoted clone, auto at (6, 0)
		t.Errorf("Columns = %d, want 3", stats.Columns)
	}
	if stats.SpanViolations != 0 {
		t.Errorf("SpanViolations = %d, want 0", stats.SpanViolations)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if p.FindNear(orb.Point{12, 0}, geom.Tol, nil) == nil {
		t.Error("no column at the clone's final position")
	}
}

// Dragging a corner of the square outward while the rest of its walls
// stay put expands the building: the original comes back and a rung beam
// ties it to the departing clone.
func TestApply_ExpansionRestoresOriginal(t *testing.T) {
	p := newPlan(t, 6)
	_, _, c, _ := ring(t, p)

	s := Start(p, []plan.ColumnID{c.ID})
	if s == nil {
		t.Fatal("Start() = nil")
	}
	clone, _ := p.Column(s.Pairs()[0].CloneID)

	s.Apply(5, 0)
	if !c.IsActive() {
		t.Error("border original not restored on outward move")
	}
	if c.Position != (orb.Point{10, 10}) {
		t.Errorf("restored original at %v, want its home (10, 10)", c.Position)
	}
	rung := p.BeamBetween(clone.ID, c.ID)
	if rung == nil {
		t.Fatal("no expansion beam between clone and restored original")
	}

	s.Finalize()
	if _, ok := p.Column(c.ID); !ok {
		t.Error("expansion original deleted by Finalize")
	}
	if clone.Kind != plan.KindUser {
		t.Errorf("clone kind = %v, want promoted user column", clone.Kind)
	}
	if p.BeamCount() != 5 {
		t.Errorf("BeamCount() = %d, want 5 (ring plus rung)", p.BeamCount())
	}
	if got := p.Stats().SpanViolations; got != 0 {
		t.Errorf("SpanViolations = %d, want 0", got)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

// Dragging both columns of the right wall moves the wall: no expansion,
// the building stretches, and enforcement redistributes the auto supports
// over the longer spans.
func TestMove_FullBorderWallTranslation(t *testing.T) {
	p := newPlan(t, 6)
	_, b, c, _ := ring(t, p)

	s := Start(p, []plan.ColumnID{b.ID, c.ID})
	if s == nil {
		t.Fatal("Start() = nil")
	}
	s.Apply(4, 0)
	if b.IsActive() || c.IsActive() {
		t.Error("full-border originals expanded, want wall translation")
	}
	s.Finalize()

	stats := p.Stats()
	if stats.Columns != 10 || stats.Suspended != 0 {
		t.Errorf("Columns/Suspended = %d/%d, want 10/0", stats.Columns, stats.Suspended)
	}
	if stats.User != 4 || stats.Auto != 6 {
		t.Errorf("User/Auto = %d/%d, want 4/6", stats.User, stats.Auto)
	}
	if stats.SpanViolations != 0 {
		t.Errorf("SpanViolations = %d, want 0", stats.SpanViolations)
	}
	if p.FindNear(orb.Point{14, 0}, geom.Tol, nil) == nil || p.FindNear(orb.Point{14, 10}, geom.Tol, nil) == nil {
		t.Error("wall did not arrive at x = 14")
	}
	if p.FindNear(orb.Point{10, 6}, geom.Tol, nil) != nil {
		t.Error("auto support of the old wall position survived")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

// Releasing at zero net delta leaves the plan structurally identical to
// the state before the session, auto supports included.
func TestMove_ZeroDeltaConservation(t *testing.T) {
	p := newPlan(t, 6)
	a := addCol(t, p, 0, 0)
	b := addCol(t, p, 6, 0)
	connect(t, p, a, b)
	span.Enforce(p)
	want := activePositions(p)

	s := Start(p, []plan.ColumnID{b.ID})
	s.Apply(3, 0)
	if p.FindNear(orb.Point{6, 0}, geom.Tol, nil) == nil {
		t.Error("no support under the stretched beam mid-session")
	}
	s.Apply(0, 0)
	s.Finalize()

	if got := activePositions(p); !slices.Equal(got, want) {
		t.Errorf("active positions = %v, want %v", got, want)
	}
	stats := p.Stats()
	if stats.Columns != 2 || stats.Beams != 1 || stats.Auto != 0 {
		t.Errorf("Columns/Beams/Auto = %d/%d/%d, want 2/1/0", stats.Columns, stats.Beams, stats.Auto)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

// Apply receives the total delta, so any sequence of calls ends exactly
// where a single call with the final delta ends.
func TestApply_TotalDeltaNotIncremental(t *testing.T) {
	build := func() (*plan.Plan, plan.ColumnID) {
		p := newPlan(t, 6)
		a := addCol(t, p, 0, 0)
		b := addCol(t, p, 6, 0)
		connect(t, p, a, b)
		span.Enforce(p)
		return p, b.ID
	}

	p1, b1 := build()
	s1 := Start(p1, []plan.ColumnID{b1})
	s1.Apply(5, 0)

	p2, b2 := build()
	s2 := Start(p2, []plan.ColumnID{b2})
	s2.Apply(2, 0)
	s2.Apply(5, 0)

	if got, want := activePositions(p2), activePositions(p1); !slices.Equal(got, want) {
		t.Errorf("two applies ended at %v, single apply at %v", got, want)
	}
	if dx, dy := s2.Delta(); dx != 5 || dy != 0 {
		t.Errorf("Delta() = (%v, %v), want (5, 0)", dx, dy)
	}

	s1.Finalize()
	s2.Finalize()
	if got, want := activePositions(p2), activePositions(p1); !slices.Equal(got, want) {
		t.Errorf("finalized positions diverge: %v vs %v", got, want)
	}
	if err := p1.Validate(); err != nil {
		t.Errorf("Validate(p1) = %v", err)
	}
	if err := p2.Validate(); err != nil {
		t.Errorf("Validate(p2) = %v", err)
	}
}
