// Package move implements interactive column relocation as a session over
// a plan.
//
// # Lifecycle
//
// A session is opened with [Start] over a set of target columns, driven by
// any number of [Session.Apply] calls while the pointer moves, and closed
// by [Session.Finalize] when the pointer is released. Only one session per
// plan can be open; starting again while one is open returns the open
// session unchanged. There is no cancel: releasing at zero net delta is
// the closest equivalent, and it leaves the plan structurally identical to
// the state before the session.
//
// # Clones and originals
//
// Start replaces every target with a transient clone at the same position
// and suspends the original. Beams are re-pointed at the clones but keep
// their conceptual endpoints, so the session can always reconstruct who a
// beam really belongs to. While the session is open the clones are the
// live columns: they move, they carry beams, and span enforcement works
// against them.
//
// Apply always receives the TOTAL delta since Start, never an increment.
// Every call rebuilds the session effects from the frozen origin positions
// and that one delta, so the result is independent of how many pointer
// events arrived in between.
//
// # Expansion
//
// Moving a border column outward past the pre-move bounding box extends
// the building instead of just relocating the column: the original comes
// back at its home position and expansion beams tie it to the departing
// clone, one ladder rung per restored pair plus rails between clones whose
// originals were beam-connected. Targets that jointly make up a complete
// box edge are exempt - dragging a full wall moves the wall.
//
// # Coverage
//
// A clone passing over another column absorbs it temporarily: the column
// is suspended and its beams follow the clone. Moving on releases it
// again. Neighbors still covered when the session finalizes are absorbed
// for good, handing their beams to the promoted clone.
//
// Finalize promotes every clone to a user column at its final position and
// deletes originals that ended suspended, then runs a last enforcement
// round. The plan is valid before and after every Apply; callers
// snapshotting between calls always see a consistent graph.
package move
