package geom_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/framegrid/framegrid/pkg/geom"
)

func ExampleProjectOntoSegment() {
	// Project a point onto a 10 m horizontal beam axis.
	proj, ok := geom.ProjectOntoSegment(orb.Point{4, 3}, orb.Point{0, 0}, orb.Point{10, 0})

	fmt.Println("ok:", ok)
	fmt.Println("t:", proj.T)
	fmt.Println("perp:", proj.Perp)
	// Output:
	// ok: true
	// t: 0.4
	// perp: 3
}

func ExamplePointInPolygon() {
	// A 10x10 room; boundary points count as inside.
	room := []orb.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	fmt.Println(geom.PointInPolygon(room, orb.Point{5, 5}))
	fmt.Println(geom.PointInPolygon(room, orb.Point{10, 5}))
	fmt.Println(geom.PointInPolygon(room, orb.Point{12, 5}))
	// Output:
	// true
	// true
	// false
}
