package move

import (
	"math"
	"sync"

	"github.com/paulmach/orb"

	"github.com/framegrid/framegrid/pkg/geom"
	"github.com/framegrid/framegrid/pkg/plan"
	"github.com/framegrid/framegrid/pkg/plan/span"
)

// Pair links one moving clone to the original it stands in for. Origin is
// the original's position frozen at session start; every Apply computes
// the clone's position as Origin plus the total delta.
type Pair struct {
	CloneID    plan.ColumnID
	OriginalID plan.ColumnID
	Origin     orb.Point
}

// Session is one open move interaction over a plan. The zero value is not
// usable - open sessions through [Start].
//
// A session is not safe for concurrent use; serialize Apply and Finalize
// with whatever guards access to the underlying plan.
type Session struct {
	p     *plan.Plan
	pairs []Pair

	// box is the bounding box of the active non-auto columns at session
	// start. Expansion triggers when a clone leaves it across the edge its
	// original occupied.
	box orb.Bound

	// fullBorder marks originals whose targets jointly cover an entire box
	// edge; moving them translates the wall instead of expanding it.
	fullBorder map[plan.ColumnID]bool

	// covered maps each neighbor suspended by the current delta to the
	// clone that swallowed it.
	covered map[plan.ColumnID]plan.ColumnID

	// expansion holds the beam ids synthesized by the current delta, torn
	// down and rebuilt on every Apply.
	expansion []plan.BeamID

	dx, dy float64
	done   bool
}

var (
	mu   sync.Mutex
	open = make(map[*plan.Plan]*Session)
)

// For returns the open session for the plan, or nil.
func For(p *plan.Plan) *Session {
	mu.Lock()
	defer mu.Unlock()
	return open[p]
}

// Start opens a move session over the target columns. Targets that are
// unknown, suspended, or transient are skipped; duplicates count once.
// With no eligible target Start returns nil and the plan is untouched.
// If the plan already has an open session, that session is returned
// unchanged.
func Start(p *plan.Plan, targets []plan.ColumnID) *Session {
	mu.Lock()
	defer mu.Unlock()
	if s := open[p]; s != nil {
		return s
	}

	seen := make(map[plan.ColumnID]bool, len(targets))
	var eligible []*plan.Column
	for _, id := range targets {
		if seen[id] {
			continue
		}
		seen[id] = true
		c, ok := p.Column(id)
		if !ok || !c.IsActive() || c.IsTransient() {
			continue
		}
		eligible = append(eligible, c)
	}
	if len(eligible) == 0 {
		return nil
	}

	var corners []orb.Point
	for _, c := range p.ActiveColumns() {
		if c.IsAuto() {
			continue
		}
		corners = append(corners, c.Position)
	}

	s := &Session{
		p:       p,
		box:     geom.BoundOf(corners),
		covered: make(map[plan.ColumnID]plan.ColumnID),
	}

	isTarget := make(map[plan.ColumnID]bool, len(eligible))
	for _, c := range eligible {
		isTarget[c.ID] = true
	}
	s.fullBorder = fullBorderSet(p, s.box, isTarget)

	for _, orig := range eligible {
		// Park the original first so the clone can occupy its spot without
		// tripping position deduplication.
		p.Suspend(orig.ID, "")
		clone := p.AddColumn(plan.ColumnSpec{
			Position: orig.Position,
			Section:  orig.Section,
			Height:   orig.Height,
			Kind:     plan.KindTransient,
			Hidden:   orig.Hidden,
		})
		clone.CloneOf = orig.ID
		orig.SuspendedBy = clone.ID
		for _, b := range p.Beams() {
			if b.OriginStartID == orig.ID {
				b.StartID = clone.ID
			}
			if b.OriginEndID == orig.ID {
				b.EndID = clone.ID
			}
		}
		s.pairs = append(s.pairs, Pair{CloneID: clone.ID, OriginalID: orig.ID, Origin: orig.Position})
	}
	p.RefreshGeometry()

	open[p] = s
	return s
}

// fullBorderSet collects the targets that jointly occupy a complete edge
// of the box. An edge counts only when every non-auto column on it is a
// target.
func fullBorderSet(p *plan.Plan, box orb.Bound, isTarget map[plan.ColumnID]bool) map[plan.ColumnID]bool {
	onEdge := [4]func(orb.Point) bool{
		func(pt orb.Point) bool { return math.Abs(pt[0]-box.Min[0]) <= geom.Tol },
		func(pt orb.Point) bool { return math.Abs(pt[0]-box.Max[0]) <= geom.Tol },
		func(pt orb.Point) bool { return math.Abs(pt[1]-box.Min[1]) <= geom.Tol },
		func(pt orb.Point) bool { return math.Abs(pt[1]-box.Max[1]) <= geom.Tol },
	}
	out := make(map[plan.ColumnID]bool)
	for _, on := range onEdge {
		var ids []plan.ColumnID
		all := true
		for _, c := range p.ActiveColumns() {
			if c.IsAuto() || !on(c.Position) {
				continue
			}
			ids = append(ids, c.ID)
			if !isTarget[c.ID] {
				all = false
			}
		}
		if all && len(ids) > 0 {
			for _, id := range ids {
				out[id] = true
			}
		}
	}
	return out
}

// Active reports whether the session is still open.
func (s *Session) Active() bool { return s != nil && !s.done }

// Delta returns the total delta of the last Apply.
func (s *Session) Delta() (dx, dy float64) {
	if s == nil {
		return 0, 0
	}
	return s.dx, s.dy
}

// Pairs returns the clone/original pairs in target order.
func (s *Session) Pairs() []Pair {
	if s == nil {
		return nil
	}
	return s.pairs
}

// Apply recomputes the session for the given TOTAL delta since Start.
// Calling Apply(2, 0) and then Apply(5, 0) leaves exactly the state a
// single Apply(5, 0) would have produced. Applying to a finalized or nil
// session is a no-op.
func (s *Session) Apply(dx, dy float64) {
	if !s.Active() {
		return
	}
	s.dx, s.dy = dx, dy

	s.reset()
	for _, pr := range s.pairs {
		if c, ok := s.p.Column(pr.CloneID); ok {
			c.Position = orb.Point{pr.Origin[0] + dx, pr.Origin[1] + dy}
		}
	}
	s.expand()
	s.cover(dx, dy)
	s.bridge()
	s.reattach()
	s.p.RefreshGeometry()
	span.Enforce(s.p)
}

// reset rolls the plan back to the base session state: no expansion
// beams, no covered neighbors, every original suspended by its clone.
func (s *Session) reset() {
	for _, id := range s.expansion {
		s.p.RemoveBeam(id)
	}
	s.expansion = s.expansion[:0]
	for nbr := range s.covered {
		s.p.Restore(nbr)
	}
	clear(s.covered)
	for _, pr := range s.pairs {
		if orig, ok := s.p.Column(pr.OriginalID); ok && orig.IsActive() {
			s.p.Suspend(orig.ID, pr.CloneID)
		}
	}
}

// expand restores the original of every pair whose clone left the box
// across the edge the original occupied. Full-border pairs never expand,
// and neither does a clone still within [geom.Tol] of its origin - the
// restored original would collide with it.
func (s *Session) expand() {
	for _, pr := range s.pairs {
		if s.fullBorder[pr.OriginalID] {
			continue
		}
		clone, ok := s.p.Column(pr.CloneID)
		if !ok || geom.EqualWithin(clone.Position, pr.Origin, geom.Tol) {
			continue
		}
		if !s.beyondOwnEdge(pr.Origin, clone.Position) {
			continue
		}
		s.p.Restore(pr.OriginalID)
	}
}

// beyondOwnEdge reports whether pos has crossed a box edge that origin
// sat on, by more than [geom.Tol].
func (s *Session) beyondOwnEdge(origin, pos orb.Point) bool {
	switch {
	case math.Abs(origin[0]-s.box.Min[0]) <= geom.Tol && pos[0] < s.box.Min[0]-geom.Tol:
		return true
	case math.Abs(origin[0]-s.box.Max[0]) <= geom.Tol && pos[0] > s.box.Max[0]+geom.Tol:
		return true
	case math.Abs(origin[1]-s.box.Min[1]) <= geom.Tol && pos[1] < s.box.Min[1]-geom.Tol:
		return true
	case math.Abs(origin[1]-s.box.Max[1]) <= geom.Tol && pos[1] > s.box.Max[1]+geom.Tol:
		return true
	}
	return false
}

// cover suspends every active neighbor a clone currently stands on,
// attributing it to that clone. A clone never covers its own original,
// and a delta within [geom.Tol] covers nothing at all. Auto columns are
// exempt: enforcement owns them and dissolves one under a clone on its
// own.
func (s *Session) cover(dx, dy float64) {
	if math.Hypot(dx, dy) <= geom.Tol {
		return
	}
	for _, pr := range s.pairs {
		clone, ok := s.p.Column(pr.CloneID)
		if !ok {
			continue
		}
		for _, c := range s.p.ActiveColumns() {
			if c.IsTransient() || c.IsAuto() || c.ID == pr.OriginalID {
				continue
			}
			if geom.Dist(c.Home, clone.Position) > geom.SnapTol {
				continue
			}
			s.p.Suspend(c.ID, pr.CloneID)
			s.covered[c.ID] = pr.CloneID
		}
	}
}

// bridge synthesizes the expansion beams for the current delta: one rung
// from each restored original to its clone, and a rail between two clones
// whenever their originals are beam-connected.
func (s *Session) bridge() {
	for i, pr := range s.pairs {
		orig, ok := s.p.Column(pr.OriginalID)
		if !ok || !orig.IsActive() {
			continue
		}
		if b := s.p.AddBeam(pr.CloneID, pr.OriginalID, 0); b != nil {
			s.expansion = append(s.expansion, b.ID)
		}
		for _, qr := range s.pairs[i+1:] {
			other, ok := s.p.Column(qr.OriginalID)
			if !ok || !other.IsActive() {
				continue
			}
			link := beamByOrigins(s.p, pr.OriginalID, qr.OriginalID)
			if link == nil {
				continue
			}
			if b := s.p.AddBeam(pr.CloneID, qr.CloneID, link.Width); b != nil {
				s.expansion = append(s.expansion, b.ID)
			}
		}
	}
}

func beamByOrigins(p *plan.Plan, a, b plan.ColumnID) *plan.Beam {
	for _, bm := range p.Beams() {
		if (bm.OriginStartID == a && bm.OriginEndID == b) ||
			(bm.OriginStartID == b && bm.OriginEndID == a) {
			return bm
		}
	}
	return nil
}

// reattach points every beam end at the live column for its conceptual
// endpoint: the suspending clone while the owner is suspended, the owner
// itself otherwise.
func (s *Session) reattach() {
	for _, b := range s.p.Beams() {
		b.StartID = s.liveEnd(b.OriginStartID, b.StartID)
		b.EndID = s.liveEnd(b.OriginEndID, b.EndID)
	}
}

func (s *Session) liveEnd(origin, current plan.ColumnID) plan.ColumnID {
	c, ok := s.p.Column(origin)
	if !ok {
		return current
	}
	if c.IsSuspended() && c.SuspendedBy != "" {
		return c.SuspendedBy
	}
	return origin
}

// Finalize commits the session: still-covered neighbors are absorbed into
// the clone that covers them, originals that ended suspended (and all
// full-border originals) are deleted, and every clone is promoted to a
// user column homed at its final position. Beams collapsed onto a single
// column by an absorption are dropped. The call closes the session; a
// second Finalize is a no-op.
func (s *Session) Finalize() {
	if !s.Active() {
		return
	}
	s.done = true
	mu.Lock()
	delete(open, s.p)
	mu.Unlock()

	for nbr, cl := range s.covered {
		rewriteOrigins(s.p, nbr, cl)
		s.p.RemoveColumn(nbr)
	}

	for _, pr := range s.pairs {
		clone, ok := s.p.Column(pr.CloneID)
		if !ok {
			continue
		}
		orig, exists := s.p.Column(pr.OriginalID)
		if !exists || orig.IsSuspended() || s.fullBorder[pr.OriginalID] {
			if exists {
				rewriteOrigins(s.p, pr.OriginalID, pr.CloneID)
				s.p.RemoveColumn(pr.OriginalID)
			}
		}
		clone.Kind = plan.KindUser
		clone.CloneOf = ""
		clone.Home = clone.Position
	}

	for _, b := range s.p.Beams() {
		if b.StartID == b.EndID {
			s.p.RemoveBeam(b.ID)
		}
	}
	s.p.RefreshGeometry()
	span.Enforce(s.p)
}

// rewriteOrigins hands every conceptual beam endpoint of from over to to.
func rewriteOrigins(p *plan.Plan, from, to plan.ColumnID) {
	for _, b := range p.Beams() {
		if b.OriginStartID == from {
			b.OriginStartID = to
		}
		if b.OriginEndID == from {
			b.OriginEndID = to
		}
	}
}
