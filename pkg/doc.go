// Package pkg provides the core libraries for FrameGrid structural plan
// topology.
//
// # Overview
//
// FrameGrid keeps a column/beam graph consistent under edits: over-long
// spans get automatic intermediate supports, columns move inside
// transactional sessions that preserve connectivity, footprints fill with
// regular grids, and beams can rest on other beams through derived anchor
// columns. The pkg directory is organized into four main areas:
//
//  1. [geom] + [plan] - Domain logic (geometry kernel, the plan entity
//     table, and the engine operations under plan/)
//  2. [plandoc] + [store] - Serialization and persistence (plan documents,
//     memory/file/redis/mongo stores)
//  3. [render] - Visualization (top-view SVG, Graphviz topology diagrams)
//  4. [config], [errors], [observability], [buildinfo] - Shared records,
//     structured error codes, engine event hooks, and version info
//
// # Architecture
//
// The typical data flow through FrameGrid:
//
//	Plan document (JSON)
//	         ↓
//	    [plandoc] package (validate + build the live plan)
//	         ↓
//	    [plan] package (entity table + engine operations)
//	         ↓
//	    [render] / [plan/segment] package (views of the result)
//	         ↓
//	    SVG/DOT/JSON output
//
// # Quick Start
//
// Build a plan, enforce span limits and render it:
//
//	import (
//	    "github.com/framegrid/framegrid/pkg/config"
//	    "github.com/framegrid/framegrid/pkg/plan"
//	    "github.com/framegrid/framegrid/pkg/plan/span"
//	    "github.com/framegrid/framegrid/pkg/render"
//	)
//
//	// 1. Build a plan
//	p := plan.New(config.Default())
//	a := p.AddColumn(plan.ColumnSpec{Position: orb.Point{0, 0}})
//	b := p.AddColumn(plan.ColumnSpec{Position: orb.Point{20, 0}})
//	p.AddBeam(a.ID, b.ID, 0)
//
//	// 2. Subdivide over-long spans
//	res := span.Enforce(p)
//
//	// 3. Render the top view
//	svg := render.RenderSVG(p, render.WithLabels())
//
// # Main Packages
//
// ## Domain Logic
//
// [geom] - Planar geometry kernel over orb.Point: projections, ray casts,
// point-in-polygon, bounds. Exports the fixed tolerances ([geom.Tol],
// [geom.SnapTol], [geom.Eps], [geom.CoordEps]) every engine rule is
// phrased in.
//
// [plan] - The entity table: columns and beams in insertion order with
// active/suspended state, cascade deletion, deduplication and geometry
// refresh. Engine operations live in subpackages:
//
//   - [plan/span]: automatic intermediate supports for over-long spans
//   - [plan/move]: transactional column relocation sessions
//   - [plan/grid]: polygon-fill column grid generation
//   - [plan/support]: beam-on-beam support anchors via ray casting
//   - [plan/segment]: read-only beam segmentation between supports
//
// ## Serialization and Persistence
//
// [plandoc] - The canonical plan document: versioned JSON (with BSON tags
// for the mongo store), document/plan conversion with full validation,
// and file import/export for the CLI.
//
// [store] - Plan document stores keyed by plan id: memory (tests, default
// API backend), file (CLI), redis and mongo (multi-instance API
// deployments). [store.Instrument] wraps any backend with latency hooks.
//
// ## Visualization
//
// [render] - Top-view SVG of a plan: beams as strokes, columns as filled
// sections, suspended entities dashed.
//
// [render/topology] - The column/beam adjacency graph as a Graphviz
// diagram: DOT source with positions pinned to plan coordinates, rendered
// to SVG via the neato engine.
//
// ## Shared Infrastructure
//
// [config] - The flat engine configuration record (span limits, default
// sections), loaded from TOML with defaults.
//
// [errors] - Structured error codes (INVALID_*, *_NOT_FOUND, CONFLICT)
// carried across the CLI and HTTP API, plus plan id and document
// validation helpers.
//
// [observability] - Engine event hooks (enforce, grid fill, move, support
// link, store and HTTP latency). No-op by default, set once at startup.
//
// [buildinfo] - Version, commit and build date injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/plan/...       # Engine only
//	go test -run Example         # Examples only
//
// [geom]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/geom
// [plan]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/plan
// [plan/span]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/plan/span
// [plan/move]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/plan/move
// [plan/grid]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/plan/grid
// [plan/support]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/plan/support
// [plan/segment]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/plan/segment
// [plandoc]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/plandoc
// [store]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/store
// [render]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/render
// [render/topology]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/render/topology
// [config]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/config
// [errors]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/errors
// [observability]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/buildinfo
package pkg
