package plan

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/framegrid/framegrid/pkg/config"
	"github.com/framegrid/framegrid/pkg/geom"
)

// Plan is the entity table for one structural layout: columns and beams
// keyed by stable ids, plus the configuration record the layout was built
// with. Listings iterate in insertion order so output is deterministic.
//
// The zero value is not usable - use [New]. Plan is not safe for concurrent
// use without external synchronization.
type Plan struct {
	cfg config.Config

	columns map[ColumnID]*Column
	beams   map[BeamID]*Beam

	columnOrder []ColumnID
	beamOrder   []BeamID

	newID func() string
}

// Option configures a Plan at construction time.
type Option func(*Plan)

// WithIDGenerator replaces the UUID generator used for new entity ids.
// Tests use this to get deterministic ids.
func WithIDGenerator(gen func() string) Option {
	return func(p *Plan) { p.newID = gen }
}

// New creates an empty plan carrying the given configuration record.
// A zero Config is filled with defaults.
func New(cfg config.Config, opts ...Option) *Plan {
	_ = cfg.ValidateAndSetDefaults()
	p := &Plan{
		cfg:     cfg,
		columns: make(map[ColumnID]*Column),
		beams:   make(map[BeamID]*Beam),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Config returns the configuration record the plan was created with.
func (p *Plan) Config() config.Config { return p.cfg }

// ==========================================================================
// Columns
// ==========================================================================

// ColumnSpec describes a column to insert. Zero Section and Height fall
// back to the plan's configured defaults.
type ColumnSpec struct {
	Position orb.Point
	Section  Section
	Height   float64
	Kind     ColumnKind
	Hidden   bool
	Role     AnchorRole
}

// AddColumn inserts a column, deduplicating by position: if an active
// column already lies within [geom.Tol] of the requested position, that
// column is returned instead and nothing is inserted. Home starts at the
// insert position.
func (p *Plan) AddColumn(spec ColumnSpec) *Column {
	if existing := p.FindNear(spec.Position, geom.Tol, nil); existing != nil {
		return existing
	}
	if spec.Height == 0 {
		spec.Height = p.cfg.ColumnHeight
	}
	if spec.Section == (Section{}) {
		spec.Section = p.defaultSection()
	}
	c := &Column{
		ID:       ColumnID(p.newID()),
		Position: spec.Position,
		Section:  spec.Section,
		Height:   spec.Height,
		Kind:     spec.Kind,
		Activity: ActivityActive,
		Home:     spec.Position,
		Hidden:   spec.Hidden,
		Role:     spec.Role,
	}
	p.columns[c.ID] = c
	p.columnOrder = append(p.columnOrder, c.ID)
	return c
}

func (p *Plan) defaultSection() Section {
	if p.cfg.ColumnShape == config.ShapeCircle {
		return Section{Shape: ShapeCircle, Diameter: p.cfg.ColumnWidth}
	}
	return Section{Shape: ShapeRect, Width: p.cfg.ColumnWidth, Length: p.cfg.ColumnLength}
}

// RemoveColumn deletes a column and cascades to every beam currently
// attached to it, so no beam is ever left dangling. It returns the number
// of beams removed by the cascade; removing an unknown id is a no-op.
func (p *Plan) RemoveColumn(id ColumnID) int {
	if _, ok := p.columns[id]; !ok {
		return 0
	}
	delete(p.columns, id)
	p.columnOrder = slices.DeleteFunc(p.columnOrder, func(c ColumnID) bool { return c == id })

	removed := 0
	for _, bid := range slices.Clone(p.beamOrder) {
		if p.beams[bid].Touches(id) {
			p.RemoveBeam(bid)
			removed++
		}
	}
	return removed
}

// PutColumn stores a column under its own id, replacing any column already
// stored there. Unlike [Plan.AddColumn] no dedup, defaulting, or id
// generation applies - the column is stored as given. Document import uses
// this to rebuild a table with its original ids; the caller is responsible
// for validating afterwards.
func (p *Plan) PutColumn(c *Column) {
	if c == nil || c.ID == "" {
		return
	}
	if _, ok := p.columns[c.ID]; !ok {
		p.columnOrder = append(p.columnOrder, c.ID)
	}
	p.columns[c.ID] = c
}

// Column returns the column with the given id and true, or nil and false.
// The pointer refers to the stored column, so field updates take effect
// directly.
func (p *Plan) Column(id ColumnID) (*Column, bool) {
	c, ok := p.columns[id]
	return c, ok
}

// Columns returns all columns in insertion order, including suspended and
// hidden ones.
func (p *Plan) Columns() []*Column {
	out := make([]*Column, 0, len(p.columns))
	for _, id := range p.columnOrder {
		out = append(out, p.columns[id])
	}
	return out
}

// ActiveColumns returns the columns participating in the active graph, in
// insertion order.
func (p *Plan) ActiveColumns() []*Column {
	var out []*Column
	for _, id := range p.columnOrder {
		if c := p.columns[id]; c.IsActive() {
			out = append(out, c)
		}
	}
	return out
}

// ColumnCount returns the total number of columns, suspended included.
func (p *Plan) ColumnCount() int { return len(p.columns) }

// FindNear returns the active column nearest to pt within tol, or nil if
// none qualifies. The optional predicate narrows the candidates; pass nil
// to accept any active column. Suspended columns never match.
func (p *Plan) FindNear(pt orb.Point, tol float64, pred func(*Column) bool) *Column {
	var best *Column
	bestDist := tol
	for _, id := range p.columnOrder {
		c := p.columns[id]
		if !c.IsActive() {
			continue
		}
		if pred != nil && !pred(c) {
			continue
		}
		if d := geom.Dist(c.Position, pt); d <= bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// Suspend parks a column: it leaves the active graph but keeps identity
// and Home. The by id records the transient clone responsible, so the
// session that caused the suspension can undo it. Suspending an unknown or
// already suspended column reports false.
func (p *Plan) Suspend(id, by ColumnID) bool {
	c, ok := p.columns[id]
	if !ok || c.IsSuspended() {
		return false
	}
	c.Activity = ActivitySuspended
	c.SuspendedBy = by
	return true
}

// Restore reactivates a suspended column at its Home position and clears
// the suspension attribution. Restoring an unknown or active column
// reports false.
func (p *Plan) Restore(id ColumnID) bool {
	c, ok := p.columns[id]
	if !ok || c.IsActive() {
		return false
	}
	c.Activity = ActivityActive
	c.SuspendedBy = ""
	c.Position = c.Home
	return true
}

// ==========================================================================
// Beams
// ==========================================================================

// AddBeam connects two existing columns and returns the new beam, with
// endpoint caches and height (span/10) filled in. A non-positive width
// falls back to the configured default. Degenerate input returns nil:
// unknown endpoints, identical endpoints, or columns within [geom.Tol] of
// each other (a zero-length span).
func (p *Plan) AddBeam(start, end ColumnID, width float64) *Beam {
	a, okA := p.columns[start]
	b, okB := p.columns[end]
	if !okA || !okB || start == end {
		return nil
	}
	if geom.EqualWithin(a.Position, b.Position, geom.Tol) {
		return nil
	}
	if width <= 0 {
		width = p.cfg.BeamWidth
	}
	bm := &Beam{
		ID:            BeamID(p.newID()),
		StartID:       start,
		EndID:         end,
		OriginStartID: start,
		OriginEndID:   end,
		Start:         a.Position,
		End:           b.Position,
		Width:         width,
	}
	bm.Height = bm.Span() / HeightRatio
	p.beams[bm.ID] = bm
	p.beamOrder = append(p.beamOrder, bm.ID)
	return bm
}

// PutBeam stores a beam under its own id, replacing any beam already
// stored there. See [Plan.PutColumn]; call [Plan.RefreshGeometry] after a
// batch of puts to fill the derived endpoint caches and heights.
func (p *Plan) PutBeam(b *Beam) {
	if b == nil || b.ID == "" {
		return
	}
	if _, ok := p.beams[b.ID]; !ok {
		p.beamOrder = append(p.beamOrder, b.ID)
	}
	p.beams[b.ID] = b
}

// RemoveBeam deletes a beam. Removing an unknown id is a no-op.
func (p *Plan) RemoveBeam(id BeamID) {
	if _, ok := p.beams[id]; !ok {
		return
	}
	delete(p.beams, id)
	p.beamOrder = slices.DeleteFunc(p.beamOrder, func(b BeamID) bool { return b == id })
}

// Beam returns the beam with the given id and true, or nil and false.
func (p *Plan) Beam(id BeamID) (*Beam, bool) {
	b, ok := p.beams[id]
	return b, ok
}

// Beams returns all beams in insertion order.
func (p *Plan) Beams() []*Beam {
	out := make([]*Beam, 0, len(p.beams))
	for _, id := range p.beamOrder {
		out = append(out, p.beams[id])
	}
	return out
}

// BeamCount returns the number of beams.
func (p *Plan) BeamCount() int { return len(p.beams) }

// BeamsTouching returns the beams whose current endpoints include the
// column, in insertion order.
func (p *Plan) BeamsTouching(id ColumnID) []*Beam {
	var out []*Beam
	for _, bid := range p.beamOrder {
		if b := p.beams[bid]; b.Touches(id) {
			out = append(out, b)
		}
	}
	return out
}

// BeamBetween returns the first beam whose current endpoints connect the
// two columns, in either orientation, or nil if they are not directly
// connected.
func (p *Plan) BeamBetween(a, b ColumnID) *Beam {
	for _, bid := range p.beamOrder {
		bm := p.beams[bid]
		if (bm.StartID == a && bm.EndID == b) || (bm.StartID == b && bm.EndID == a) {
			return bm
		}
	}
	return nil
}

// ==========================================================================
// Projection and geometry refresh
// ==========================================================================

// Station is an active column projected onto a beam's axis: T is the
// normalized position, Offset the metric distance from the beam start.
type Station struct {
	Column *Column
	T      float64
	Offset float64
}

// ColumnsOnBeam returns the active columns lying on the beam's axis within
// perpTol perpendicular distance, letting projections overshoot either
// endpoint by up to margin meters. Results are sorted by Offset. A
// zero-length beam has no stations.
func (p *Plan) ColumnsOnBeam(b *Beam, perpTol, margin float64) []Station {
	span := b.Span()
	if span < geom.Eps {
		return nil
	}
	var out []Station
	for _, id := range p.columnOrder {
		c := p.columns[id]
		if !c.IsActive() {
			continue
		}
		proj, ok := geom.ProjectOntoSegment(c.Position, b.Start, b.End)
		if !ok || proj.Perp > perpTol {
			continue
		}
		off := proj.T * span
		if off < -margin || off > span+margin {
			continue
		}
		out = append(out, Station{Column: c, T: proj.T, Offset: off})
	}
	slices.SortFunc(out, func(a, b Station) int { return cmp.Compare(a.Offset, b.Offset) })
	return out
}

// RefreshGeometry recomputes every beam's cached endpoint positions and
// height (span/10) from the current column table. Beams whose endpoints no
// longer resolve are deleted rather than left dangling. It returns the
// number of beams removed.
//
// Zero-length beams are kept: a beam may pass through a degenerate state
// mid-session while a clone slides over a neighbor, and deleting it would
// lose structure that the next delta recomputation needs back.
func (p *Plan) RefreshGeometry() int {
	removed := 0
	for _, id := range slices.Clone(p.beamOrder) {
		b := p.beams[id]
		s, okS := p.columns[b.StartID]
		e, okE := p.columns[b.EndID]
		if !okS || !okE {
			p.RemoveBeam(id)
			removed++
			continue
		}
		b.Start = s.Position
		b.End = e.Position
		b.Height = b.Span() / HeightRatio
	}
	return removed
}

// Clone returns a deep copy of the plan: separate column and beam structs,
// separate order slices, shared configuration and id generator. Mutating
// rules run on a clone and the caller swaps the result in atomically.
func (p *Plan) Clone() *Plan {
	q := &Plan{
		cfg:         p.cfg,
		columns:     make(map[ColumnID]*Column, len(p.columns)),
		beams:       make(map[BeamID]*Beam, len(p.beams)),
		columnOrder: slices.Clone(p.columnOrder),
		beamOrder:   slices.Clone(p.beamOrder),
		newID:       p.newID,
	}
	for id, c := range p.columns {
		cc := *c
		q.columns[id] = &cc
	}
	for id, b := range p.beams {
		bb := *b
		q.beams[id] = &bb
	}
	return q
}

// NextID returns a fresh entity id from the plan's generator. Exposed for
// rules that need ids outside AddColumn/AddBeam, such as naming sessions.
func (p *Plan) NextID() string { return p.newID() }
