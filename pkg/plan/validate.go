package plan

import (
	"errors"

	"github.com/framegrid/framegrid/pkg/geom"
)

var (
	// ErrDanglingBeam is returned by [Plan.Validate] when a beam's current
	// endpoint references a column that doesn't exist. This indicates table
	// corruption: RemoveColumn cascades should make it impossible.
	ErrDanglingBeam = errors.New("beam endpoint references missing column")

	// ErrDanglingOrigin is returned by [Plan.Validate] when a beam's
	// conceptual endpoint (origin id) references a column that doesn't
	// exist. Origins must be repointed before their column is deleted.
	ErrDanglingOrigin = errors.New("beam origin references missing column")

	// ErrBadSuspension is returned by [Plan.Validate] when a suspended
	// column's SuspendedBy does not name an existing transient column, or
	// when an active column still carries a SuspendedBy attribution.
	ErrBadSuspension = errors.New("invalid suspension attribution")

	// ErrCloneMismatch is returned by [Plan.Validate] when a transient
	// clone's CloneOf references a missing column, or when the referenced
	// original is suspended by a different clone.
	ErrCloneMismatch = errors.New("clone and original are inconsistent")

	// ErrDuplicatePosition is returned by [Plan.Validate] when two active
	// columns occupy the same position within [geom.Tol]. Position dedup in
	// AddColumn should make it impossible.
	ErrDuplicatePosition = errors.New("duplicate active column position")
)

// Validate checks referential integrity and returns nil if the table is
// consistent. It verifies:
//
//  1. Every beam endpoint and origin resolves to an existing column.
//  2. Suspension attributions point at existing transient columns, and
//     active columns carry none.
//  3. Clone back-references are mutually consistent with their originals.
//  4. No two active columns share a position within [geom.Tol].
//
// Exported mutations keep these invariants, so a failure indicates either
// direct field surgery gone wrong or a corrupt imported document.
func (p *Plan) Validate() error {
	if err := p.validateBeams(); err != nil {
		return err
	}
	if err := p.validateSuspension(); err != nil {
		return err
	}
	return p.validatePositions()
}

func (p *Plan) validateBeams() error {
	for _, id := range p.beamOrder {
		b := p.beams[id]
		if _, ok := p.columns[b.StartID]; !ok {
			return ErrDanglingBeam
		}
		if _, ok := p.columns[b.EndID]; !ok {
			return ErrDanglingBeam
		}
		if _, ok := p.columns[b.OriginStartID]; !ok {
			return ErrDanglingOrigin
		}
		if _, ok := p.columns[b.OriginEndID]; !ok {
			return ErrDanglingOrigin
		}
	}
	return nil
}

func (p *Plan) validateSuspension() error {
	for _, id := range p.columnOrder {
		c := p.columns[id]

		if c.IsActive() && c.SuspendedBy != "" {
			return ErrBadSuspension
		}
		if c.IsSuspended() {
			by, ok := p.columns[c.SuspendedBy]
			if !ok || !by.IsTransient() {
				return ErrBadSuspension
			}
		}
		if c.CloneOf != "" {
			orig, ok := p.columns[c.CloneOf]
			if !ok {
				return ErrCloneMismatch
			}
			if orig.IsSuspended() && orig.SuspendedBy != c.ID {
				return ErrCloneMismatch
			}
		}
	}
	return nil
}

func (p *Plan) validatePositions() error {
	active := p.ActiveColumns()
	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			if geom.EqualWithin(active[i].Position, active[j].Position, geom.Tol) {
				return ErrDuplicatePosition
			}
		}
	}
	return nil
}
