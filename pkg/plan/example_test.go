package plan_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/framegrid/framegrid/pkg/config"
	"github.com/framegrid/framegrid/pkg/plan"
)

func ExamplePlan_basic() {
	// Lay out two columns connected by a 20 m beam.
	p := plan.New(config.Default())
	a := p.AddColumn(plan.ColumnSpec{Position: orb.Point{0, 0}})
	b := p.AddColumn(plan.ColumnSpec{Position: orb.Point{20, 0}})
	bm := p.AddBeam(a.ID, b.ID, 0)

	fmt.Println("columns:", p.ColumnCount())
	fmt.Println("beams:", p.BeamCount())
	fmt.Println("span:", bm.Span())
	fmt.Println("height:", bm.Height)
	// Output:
	// columns: 2
	// beams: 1
	// span: 20
	// height: 2
}

func ExamplePlan_cascade() {
	// Removing a column deletes every beam attached to it.
	p := plan.New(config.Default())
	a := p.AddColumn(plan.ColumnSpec{Position: orb.Point{0, 0}})
	b := p.AddColumn(plan.ColumnSpec{Position: orb.Point{10, 0}})
	c := p.AddColumn(plan.ColumnSpec{Position: orb.Point{10, 10}})
	p.AddBeam(a.ID, b.ID, 0)
	p.AddBeam(b.ID, c.ID, 0)

	p.RemoveColumn(b.ID)

	fmt.Println("columns:", p.ColumnCount())
	fmt.Println("beams:", p.BeamCount())
	// Output:
	// columns: 2
	// beams: 0
}
