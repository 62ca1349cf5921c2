package plandoc

import (
	"github.com/paulmach/orb"

	"github.com/framegrid/framegrid/pkg/config"
	"github.com/framegrid/framegrid/pkg/errors"
	"github.com/framegrid/framegrid/pkg/plan"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Version is the document schema version written by [FromPlan].
// [ToPlan] accepts documents up to and including this version; version 0
// (the field omitted) is treated as the current version for hand-written
// documents.
const Version = 1

// Column kinds in document form. An empty kind means a user column.
const (
	KindUser      = "user"
	KindAuto      = "auto"
	KindTransient = "transient"
	KindAnchor    = "anchor"
)

// Cross-section shapes in document form. An empty shape means rectangular.
const (
	ShapeRect   = "rect"
	ShapeCircle = "circle"
)

// RoleSupport marks an anchor column carrying a dependent beam end.
const RoleSupport = "support"

var kindFromString = map[string]plan.ColumnKind{
	"":            plan.KindUser,
	KindUser:      plan.KindUser,
	KindAuto:      plan.KindAuto,
	KindTransient: plan.KindTransient,
	KindAnchor:    plan.KindAnchor,
}

// =============================================================================
// Document - Plan Serialization
// =============================================================================

// Document is the canonical serialization format for plans.
// Used for API responses, storage, and cross-tool compatibility.
//
// The format is human-readable and designed for round-trip fidelity:
// export → re-import → re-export produces identical results. Derived beam
// fields (cached endpoint coordinates and height) are never serialized;
// [ToPlan] recomputes them from the column table.
type Document struct {
	Version int           `json:"version" bson:"version"`
	ID      string        `json:"id,omitempty" bson:"_id,omitempty"`
	Config  config.Config `json:"config" bson:"config"`
	Columns []Column      `json:"columns" bson:"columns"`
	Beams   []Beam        `json:"beams" bson:"beams"`
}

// Point is a plan-space position in meters.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Column is the document form of a plan column. Most fields are optional
// and default from the document's config on import.
type Column struct {
	ID       string `json:"id" bson:"id"`
	Position Point  `json:"position" bson:"position"`

	// Section geometry. Shape is "" or "rect" for rectangular sections
	// (Width × Length) and "circle" for circular ones (Diameter).
	Shape    string  `json:"shape,omitempty" bson:"shape,omitempty"`
	Width    float64 `json:"width,omitempty" bson:"width,omitempty"`
	Length   float64 `json:"length,omitempty" bson:"length,omitempty"`
	Diameter float64 `json:"diameter,omitempty" bson:"diameter,omitempty"`

	Height float64 `json:"height,omitempty" bson:"height,omitempty"`
	Kind   string  `json:"kind,omitempty" bson:"kind,omitempty"`

	// Suspension state. Home is omitted when it matches Position, which is
	// the steady-state case for active columns.
	Suspended   bool   `json:"suspended,omitempty" bson:"suspended,omitempty"`
	Home        *Point `json:"home,omitempty" bson:"home,omitempty"`
	SuspendedBy string `json:"suspended_by,omitempty" bson:"suspended_by,omitempty"`
	CloneOf     string `json:"clone_of,omitempty" bson:"clone_of,omitempty"`

	Hidden bool   `json:"hidden,omitempty" bson:"hidden,omitempty"`
	Role   string `json:"role,omitempty" bson:"role,omitempty"`
}

// Beam is the document form of a plan beam. Origin endpoints are omitted
// when they match the current endpoints, which is the steady-state case.
type Beam struct {
	ID          string  `json:"id" bson:"id"`
	Start       string  `json:"start" bson:"start"`
	End         string  `json:"end" bson:"end"`
	OriginStart string  `json:"origin_start,omitempty" bson:"origin_start,omitempty"`
	OriginEnd   string  `json:"origin_end,omitempty" bson:"origin_end,omitempty"`
	Width       float64 `json:"width,omitempty" bson:"width,omitempty"`
}

// =============================================================================
// Plan ↔ Document Conversion
// =============================================================================

// FromPlan converts a plan to its serialization format. Columns and beams
// appear in plan insertion order, so output is deterministic. Derived beam
// geometry is dropped; only the structure needed to rebuild it is kept.
func FromPlan(p *plan.Plan) Document {
	cols := p.Columns()
	beams := p.Beams()

	doc := Document{
		Version: Version,
		Config:  p.Config(),
		Columns: make([]Column, len(cols)),
		Beams:   make([]Beam, len(beams)),
	}
	for i, c := range cols {
		doc.Columns[i] = columnFromPlan(c)
	}
	for i, b := range beams {
		doc.Beams[i] = beamFromPlan(b)
	}
	return doc
}

// ToPlan converts a document to a live plan. It validates structure as it
// goes and finishes with a full [plan.Plan.Validate] pass, so a successful
// return means the table is internally consistent. Beam endpoint caches and
// heights are recomputed from the column table, never read from the
// document. Config fields the document leaves unset are filled with
// defaults, so the first re-export makes them explicit.
func ToPlan(doc Document, opts ...plan.Option) (*plan.Plan, error) {
	if doc.Version > Version {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "unsupported document version %d", doc.Version)
	}

	cfg := doc.Config
	if err := cfg.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "invalid config")
	}

	p := plan.New(cfg, opts...)

	columnIDs := make(map[string]bool, len(doc.Columns))
	for i, dc := range doc.Columns {
		if dc.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "column %d: missing id", i)
		}
		if columnIDs[dc.ID] {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "column %d: duplicate id %q", i, dc.ID)
		}
		columnIDs[dc.ID] = true

		c, err := columnToPlan(dc, cfg)
		if err != nil {
			return nil, err
		}
		p.PutColumn(c)
	}

	beamIDs := make(map[string]bool, len(doc.Beams))
	for i, db := range doc.Beams {
		if db.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "beam %d: missing id", i)
		}
		if beamIDs[db.ID] {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "beam %d: duplicate id %q", i, db.ID)
		}
		beamIDs[db.ID] = true

		b, err := beamToPlan(db, cfg, columnIDs)
		if err != nil {
			return nil, err
		}
		p.PutBeam(b)
	}

	p.RefreshGeometry()

	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "inconsistent document")
	}
	return p, nil
}

// =============================================================================
// Internal Helpers
// =============================================================================

// columnFromPlan converts a plan column to its document form. Default-valued
// fields are left at their zero value so omitempty drops them.
func columnFromPlan(c *plan.Column) Column {
	col := Column{
		ID:          string(c.ID),
		Position:    Point{X: c.Position[0], Y: c.Position[1]},
		Height:      c.Height,
		Suspended:   c.IsSuspended(),
		SuspendedBy: string(c.SuspendedBy),
		CloneOf:     string(c.CloneOf),
		Hidden:      c.Hidden,
	}
	if c.Kind != plan.KindUser {
		col.Kind = c.Kind.String()
	}
	if c.Section.Shape == plan.ShapeCircle {
		col.Shape = ShapeCircle
		col.Diameter = c.Section.Diameter
	} else {
		col.Width = c.Section.Width
		col.Length = c.Section.Length
	}
	if c.Home != c.Position {
		home := Point{X: c.Home[0], Y: c.Home[1]}
		col.Home = &home
	}
	if c.Role == plan.RoleSupport {
		col.Role = RoleSupport
	}
	return col
}

func beamFromPlan(b *plan.Beam) Beam {
	bm := Beam{
		ID:    string(b.ID),
		Start: string(b.StartID),
		End:   string(b.EndID),
		Width: b.Width,
	}
	if b.OriginStartID != b.StartID {
		bm.OriginStart = string(b.OriginStartID)
	}
	if b.OriginEndID != b.EndID {
		bm.OriginEnd = string(b.OriginEndID)
	}
	return bm
}

func columnToPlan(dc Column, cfg config.Config) (*plan.Column, error) {
	kind, ok := kindFromString[dc.Kind]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "column %s: unknown kind %q", dc.ID, dc.Kind)
	}

	section, err := sectionToPlan(dc, cfg)
	if err != nil {
		return nil, err
	}

	height := dc.Height
	if height == 0 {
		height = cfg.ColumnHeight
	}
	if height < 0 {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "column %s: negative height", dc.ID)
	}

	c := &plan.Column{
		ID:          plan.ColumnID(dc.ID),
		Position:    orb.Point{dc.Position.X, dc.Position.Y},
		Section:     section,
		Height:      height,
		Kind:        kind,
		Home:        orb.Point{dc.Position.X, dc.Position.Y},
		SuspendedBy: plan.ColumnID(dc.SuspendedBy),
		CloneOf:     plan.ColumnID(dc.CloneOf),
		Hidden:      dc.Hidden,
	}
	if dc.Suspended {
		c.Activity = plan.ActivitySuspended
	}
	if dc.Home != nil {
		c.Home = orb.Point{dc.Home.X, dc.Home.Y}
	}
	switch dc.Role {
	case "":
	case RoleSupport:
		c.Role = plan.RoleSupport
	default:
		return nil, errors.New(errors.ErrCodeInvalidDocument, "column %s: unknown role %q", dc.ID, dc.Role)
	}
	return c, nil
}

func sectionToPlan(dc Column, cfg config.Config) (plan.Section, error) {
	switch dc.Shape {
	case "", ShapeRect:
		w, l := dc.Width, dc.Length
		if w == 0 {
			w = cfg.ColumnWidth
		}
		if l == 0 {
			l = cfg.ColumnLength
		}
		if w < 0 || l < 0 {
			return plan.Section{}, errors.New(errors.ErrCodeInvalidDocument, "column %s: negative section dimensions", dc.ID)
		}
		return plan.Section{Shape: plan.ShapeRect, Width: w, Length: l}, nil
	case ShapeCircle:
		d := dc.Diameter
		if d == 0 {
			d = cfg.ColumnWidth
		}
		if d < 0 {
			return plan.Section{}, errors.New(errors.ErrCodeInvalidDocument, "column %s: negative diameter", dc.ID)
		}
		return plan.Section{Shape: plan.ShapeCircle, Diameter: d}, nil
	default:
		return plan.Section{}, errors.New(errors.ErrCodeInvalidDocument, "column %s: unknown shape %q", dc.ID, dc.Shape)
	}
}

func beamToPlan(db Beam, cfg config.Config, columns map[string]bool) (*plan.Beam, error) {
	if !columns[db.Start] || !columns[db.End] {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "beam %s: endpoint references unknown column", db.ID)
	}

	origStart := db.OriginStart
	if origStart == "" {
		origStart = db.Start
	}
	origEnd := db.OriginEnd
	if origEnd == "" {
		origEnd = db.End
	}
	if !columns[origStart] || !columns[origEnd] {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "beam %s: origin references unknown column", db.ID)
	}

	width := db.Width
	if width < 0 {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "beam %s: negative width", db.ID)
	}
	if width == 0 {
		width = cfg.BeamWidth
	}

	return &plan.Beam{
		ID:            plan.BeamID(db.ID),
		StartID:       plan.ColumnID(db.Start),
		EndID:         plan.ColumnID(db.End),
		OriginStartID: plan.ColumnID(origStart),
		OriginEndID:   plan.ColumnID(origEnd),
		Width:         width,
	}, nil
}
