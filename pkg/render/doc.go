// Package render draws plan top views as SVG documents.
//
// # Overview
//
// The renderer produces a self-contained SVG showing every column and beam
// of a plan in plan coordinates (meters), scaled to pixels. Beams are drawn
// first so columns sit on top of them, and optional labels come last.
//
// The coordinate system follows drawing convention: x grows to the right and
// y grows upward, so the renderer flips the y axis when mapping plan
// coordinates to SVG pixel space.
//
// # Usage
//
//	svg := render.RenderSVG(p, render.WithScale(60), render.WithLabels())
//	os.WriteFile("plan.svg", svg, 0o644)
//
// Column fills encode the column kind, and suspended columns are drawn
// translucent with a dashed outline so the difference between an active and a
// superseded grid is visible at a glance.
//
// # Topology Diagrams
//
// The [topology] subpackage renders the same plan as a node-link diagram:
// columns as graph nodes pinned at their plan positions, beams as edges.
// It emits Graphviz DOT and renders it via the neato layout engine.
//
//	dot := topology.ToDOT(p, topology.Options{})
//	svg, err := topology.RenderSVG(dot)
//
// [topology]: github.com/framegrid/framegrid/pkg/render/topology
package render
