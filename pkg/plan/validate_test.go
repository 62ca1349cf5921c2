package plan

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
)

func TestValidate_CleanPlan(t *testing.T) {
	p := testPlan()
	a := p.AddColumn(ColumnSpec{Position: orb.Point{0, 0}})
	b := p.AddColumn(ColumnSpec{Position: orb.Point{10, 0}})
	p.AddBeam(a.ID, b.ID, 0)

	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate_DanglingBeam(t *testing.T) {
	p := testPlan()
	a := p.AddColumn(ColumnSpec{Position: orb.Point{0, 0}})
	b := p.AddColumn(ColumnSpec{Position: orb.Point{10, 0}})
	p.AddBeam(a.ID, b.ID, 0)

	delete(p.columns, b.ID) // corruption: bypass RemoveColumn

	if err := p.Validate(); !errors.Is(err, ErrDanglingBeam) {
		t.Errorf("Validate() = %v, want ErrDanglingBeam", err)
	}
}

func TestValidate_DanglingOrigin(t *testing.T) {
	p := testPlan()
	a := p.AddColumn(ColumnSpec{Position: orb.Point{0, 0}})
	b := p.AddColumn(ColumnSpec{Position: orb.Point{10, 0}})
	c := p.AddColumn(ColumnSpec{Position: orb.Point{20, 0}})
	bm := p.AddBeam(a.ID, b.ID, 0)

	// Current endpoint rewritten but origin left pointing at a removed
	// column.
	bm.EndID = c.ID
	delete(p.columns, b.ID)

	if err := p.Validate(); !errors.Is(err, ErrDanglingOrigin) {
		t.Errorf("Validate() = %v, want ErrDanglingOrigin", err)
	}
}

func TestValidate_BadSuspension(t *testing.T) {
	p := testPlan()
	c := p.AddColumn(ColumnSpec{Position: orb.Point{0, 0}})

	c.Activity = ActivitySuspended
	c.SuspendedBy = "nobody"

	if err := p.Validate(); !errors.Is(err, ErrBadSuspension) {
		t.Errorf("Validate() = %v, want ErrBadSuspension", err)
	}
}

func TestValidate_ActiveWithAttribution(t *testing.T) {
	p := testPlan()
	c := p.AddColumn(ColumnSpec{Position: orb.Point{0, 0}})
	clone := p.AddColumn(ColumnSpec{Position: orb.Point{5, 5}, Kind: KindTransient})

	c.SuspendedBy = clone.ID // active column must not carry one

	if err := p.Validate(); !errors.Is(err, ErrBadSuspension) {
		t.Errorf("Validate() = %v, want ErrBadSuspension", err)
	}
}

func TestValidate_CloneMismatch(t *testing.T) {
	p := testPlan()
	orig := p.AddColumn(ColumnSpec{Position: orb.Point{0, 0}})
	other := p.AddColumn(ColumnSpec{Position: orb.Point{9, 9}, Kind: KindTransient})
	clone := p.AddColumn(ColumnSpec{Position: orb.Point{5, 5}, Kind: KindTransient})
	clone.CloneOf = orig.ID

	p.Suspend(orig.ID, other.ID) // suspended by a different transient

	if err := p.Validate(); !errors.Is(err, ErrCloneMismatch) {
		t.Errorf("Validate() = %v, want ErrCloneMismatch", err)
	}
}

func TestValidate_DuplicatePosition(t *testing.T) {
	p := testPlan()
	p.AddColumn(ColumnSpec{Position: orb.Point{0, 0}})
	c := p.AddColumn(ColumnSpec{Position: orb.Point{5, 5}})

	c.Position = orb.Point{0.01, 0} // dodge AddColumn dedup

	if err := p.Validate(); !errors.Is(err, ErrDuplicatePosition) {
		t.Errorf("Validate() = %v, want ErrDuplicatePosition", err)
	}
}
