// Package plan provides the column/beam entity store at the heart of
// FrameGrid: a flat, id-keyed table of structural columns connected by
// beams, with the lookup, cascade, and geometry-refresh operations every
// topology rule builds on.
//
// # Overview
//
// A [Plan] holds two entity collections - [Column] and [Beam] - keyed by
// stable string ids that never change for the lifetime of an entity. Beams
// reference columns by id, never by pointer or index, so every structural
// rule (span subdivision, move sessions, grid fill, support anchoring)
// reduces to id rewrites plus a geometry refresh.
//
// # Column Kinds
//
// Columns carry an explicit [ColumnKind] instead of overloaded flags:
//
//   - [KindUser]: placed by a person; the only kind with a meaningful Home.
//   - [KindAuto]: inserted by span enforcement; exists only while it lies on
//     a beam and is freely created and discarded.
//   - [KindTransient]: a move-session clone standing in for a suspended
//     original, linked through [Column.CloneOf].
//   - [KindAnchor]: a hidden column materializing a beam-on-beam support
//     intersection.
//
// Suspension is orthogonal to kind: a suspended column ([ActivitySuspended])
// keeps its identity and Home but is excluded from every active-graph query
// until restored.
//
// # Self-Healing
//
// The store never throws structure away lazily and never leaves dangling
// references. [Plan.RemoveColumn] cascades to every beam touching the
// column, and [Plan.RefreshGeometry] drops beams whose endpoints no longer
// resolve while recomputing every cached span and beam height. Callers can
// assume [Plan.Validate] passes after any exported mutation.
//
// # Snapshots
//
// Rules mutate the plan in place; operations that can fail reject their
// input before touching anything, so a returned error never leaves a plan
// half edited. [Plan.Clone] produces an independent deep copy for callers
// that want an undo point or a scratch plan. Plan is not safe for
// concurrent use without external synchronization; the engine is
// single-threaded by design.
package plan
