package span_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/framegrid/framegrid/pkg/config"
	"github.com/framegrid/framegrid/pkg/plan"
	"github.com/framegrid/framegrid/pkg/plan/span"
)

func ExampleEnforce() {
	// A 20 m beam under a 6 m limit gets three automatic supports.
	p := plan.New(config.Default())
	a := p.AddColumn(plan.ColumnSpec{Position: orb.Point{0, 0}})
	b := p.AddColumn(plan.ColumnSpec{Position: orb.Point{20, 0}})
	p.AddBeam(a.ID, b.ID, 0)

	res := span.Enforce(p)

	fmt.Println("inserted:", res.Inserted)
	for _, c := range p.Columns() {
		if c.IsAuto() {
			fmt.Printf("auto at x=%v\n", c.Position[0])
		}
	}
	// Output:
	// inserted: 3
	// auto at x=6
	// auto at x=12
	// auto at x=18
}
