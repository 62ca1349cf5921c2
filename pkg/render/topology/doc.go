// Package topology renders plans as node-link diagrams using Graphviz.
//
// # Overview
//
// Columns appear as nodes pinned at their plan coordinates and beams as
// undirected edges between them, so the diagram reproduces the plan's
// geometry while exposing its connectivity. The neato layout engine honors
// the pinned positions instead of inventing its own.
//
// Node styling encodes the column kind: anchors are yellow diamonds,
// transient clones light blue, generated grid columns dashed grey, and user
// columns plain white boxes. Suspended columns are omitted entirely - the
// diagram shows the grid that currently carries load.
//
// # Usage
//
//	dot := topology.ToDOT(p, topology.Options{Detailed: true})
//	svg, err := topology.RenderSVG(dot)
//
// [ToDOT] is pure string generation and always succeeds. [RenderSVG] runs
// the Graphviz engine (via the embedded WASM build in goccy/go-graphviz) and
// can fail on malformed DOT.
package topology
