package plan

import "github.com/paulmach/orb"

// ColumnID uniquely identifies a column for its whole lifetime.
// IDs are opaque strings (UUIDs by default) and are never reused.
type ColumnID string

// BeamID uniquely identifies a beam for its whole lifetime.
type BeamID string

// ColumnKind distinguishes how a column came to exist and which rules may
// discard it.
type ColumnKind int

const (
	// KindUser is a column placed by a person. User columns are never
	// removed by automatic rules and keep a Home position for restoration.
	KindUser ColumnKind = iota
	// KindAuto is an intermediate support inserted by span enforcement.
	// Auto columns exist only while they lie on at least one beam.
	KindAuto
	// KindTransient is a move-session clone standing in for a suspended
	// original. Transients are promoted or discarded when the session ends.
	KindTransient
	// KindAnchor is a hidden column materializing a beam-on-beam support
	// intersection.
	KindAnchor
)

// String returns the lowercase kind name used in logs and listings.
func (k ColumnKind) String() string {
	switch k {
	case KindAuto:
		return "auto"
	case KindTransient:
		return "transient"
	case KindAnchor:
		return "anchor"
	default:
		return "user"
	}
}

// Activity is a column's participation state in the active graph.
type Activity int

const (
	// ActivityActive columns participate in all queries and rules.
	ActivityActive Activity = iota
	// ActivitySuspended columns are parked: invisible to active-graph
	// queries but retained, with identity and Home intact, for restoration.
	ActivitySuspended
)

// String returns "active" or "suspended".
func (a Activity) String() string {
	if a == ActivitySuspended {
		return "suspended"
	}
	return "active"
}

// AnchorRole distinguishes support anchors from free-standing ones.
// It is meaningful only for [KindAnchor] columns.
type AnchorRole int

const (
	// RoleFree marks an anchor with no dependent beam attached.
	RoleFree AnchorRole = iota
	// RoleSupport marks an anchor that carries a dependent beam end.
	RoleSupport
)

// Shape selects a column cross-section geometry.
type Shape int

const (
	// ShapeRect is a rectangular cross-section sized by Width and Length.
	ShapeRect Shape = iota
	// ShapeCircle is a circular cross-section sized by Diameter.
	ShapeCircle
)

// Section describes a column cross-section. Rectangular sections use Width
// and Length; circular ones use Diameter.
type Section struct {
	Shape    Shape
	Width    float64
	Length   float64
	Diameter float64
}

// Column is a vertical structural member at a plan position.
//
// The zero value is not usable - create columns through [Plan.AddColumn] so
// ids, defaults, and position dedup apply.
type Column struct {
	ID       ColumnID
	Position orb.Point // plan-space meters
	Section  Section
	Height   float64
	Kind     ColumnKind
	Activity Activity

	// Home is the position a suspended column returns to on restoration.
	// It tracks Position for active columns and freezes while suspended.
	Home orb.Point

	// SuspendedBy names the transient clone responsible for this column's
	// suspension, empty when active. A move target's clone and a covering
	// clone both record themselves here.
	SuspendedBy ColumnID

	// CloneOf links a transient clone back to the original it replaces.
	// Empty for everything but [KindTransient] columns.
	CloneOf ColumnID

	// Hidden columns (anchors) are skipped by interactive picking and
	// rendering labels but behave structurally like any other column.
	Hidden bool

	// Role is meaningful for anchors only.
	Role AnchorRole
}

// IsActive reports whether the column participates in the active graph.
func (c *Column) IsActive() bool { return c.Activity == ActivityActive }

// IsSuspended reports whether the column is parked for later restoration.
func (c *Column) IsSuspended() bool { return c.Activity == ActivitySuspended }

// IsUser reports whether the column was placed by a person.
func (c *Column) IsUser() bool { return c.Kind == KindUser }

// IsAuto reports whether span enforcement created the column.
func (c *Column) IsAuto() bool { return c.Kind == KindAuto }

// IsTransient reports whether the column is a move-session clone.
func (c *Column) IsTransient() bool { return c.Kind == KindTransient }

// IsAnchor reports whether the column materializes a support intersection.
func (c *Column) IsAnchor() bool { return c.Kind == KindAnchor }

// Disposable reports whether automatic rules may discard the column when it
// no longer lies on any beam. Auto and transient columns are disposable;
// user columns and anchors are not.
func (c *Column) Disposable() bool {
	return c.Kind == KindAuto || c.Kind == KindTransient
}
