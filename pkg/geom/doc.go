// Package geom provides the planar geometry kernel for structural plan
// layouts: point projection, polygon containment, and bounded ray/segment
// intersection over [orb.Point] coordinates in meters.
//
// # Overview
//
// FrameGrid models a structural plan as columns (points) connected by beams
// (segments) in a flat, metric coordinate space. Every topology rule in the
// engine - span subdivision, move coverage, grid fill, support anchoring -
// reduces to a handful of primitive questions answered here: how far is a
// point from a segment, where does it project, is it inside a polygon, where
// does a ray meet a segment.
//
// All operations are pure functions over value types. Nothing in this
// package allocates mutable state or panics: degenerate input (zero-length
// segments, parallel rays, polygons with fewer than three vertices) yields
// the zero value with ok=false, or simply false.
//
// # Tolerances
//
// Structural geometry is never compared exactly. The package exports the
// fixed tolerances the whole engine shares:
//
//   - [Tol]: 0.02 m. Two positions closer than this are the same structural
//     location. Used for on-beam tests, duplicate detection, and snapping
//     derived points onto existing ones.
//   - [SnapTol]: 0.4 m. The interactive pick radius used when resolving a
//     pointer position to a column.
//   - [CoordEps]: 1e-4. Per-coordinate comparison for deduplicating grid
//     line positions.
//   - [Eps]: 1e-9. Degeneracy guard for divisions and parallelism tests.
//
// # Coordinates
//
// Points use [orb.Point] from github.com/paulmach/orb: a [2]float64 indexed
// as p[0] (x) and p[1] (y). The orb types carry no geographic meaning here -
// coordinates are plan-space meters.
package geom
