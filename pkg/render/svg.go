package render

import (
	"bytes"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/framegrid/framegrid/pkg/geom"
	"github.com/framegrid/framegrid/pkg/plan"
)

const (
	// DefaultScale is the pixel size of one meter.
	DefaultScale = 40.0

	// DefaultPadding is the margin around the plan bound, in meters.
	DefaultPadding = 1.0
)

// Kind fills. User columns are near-black, generated ones recede into grey,
// and the special kinds get accent colors so they stand out during a session.
const (
	fillUser      = "#1f2937"
	fillAuto      = "#9ca3af"
	fillTransient = "#2563eb"
	fillAnchor    = "#d97706"
	strokeBeam    = "#4b5563"
	fillLabel     = "#374151"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale   float64
	padding float64
	labels  bool
}

// WithScale sets how many pixels one meter occupies. The default is
// [DefaultScale].
func WithScale(pxPerMeter float64) SVGOption {
	return func(r *svgRenderer) { r.scale = pxPerMeter }
}

// WithPadding sets the margin around the plan bound, in meters. The default
// is [DefaultPadding].
func WithPadding(meters float64) SVGOption {
	return func(r *svgRenderer) { r.padding = meters }
}

// WithLabels draws each column's id above its section.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// RenderSVG draws the plan as a top view. Beams are drawn first, then
// columns, then labels, so columns always cover the beam lines they sit on.
//
// Every column appears regardless of activity: suspended columns are drawn
// translucent with a dashed outline, and hidden anchors shrink to small
// markers. An empty plan yields a small blank canvas rather than nil.
func RenderSVG(p *plan.Plan, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	cols := p.Columns()
	pts := make([]orb.Point, 0, len(cols))
	for _, c := range cols {
		pts = append(pts, c.Position)
	}
	bound := geom.BoundOf(pts)

	toPx := func(pt orb.Point) (float64, float64) {
		x := (pt.X() - bound.Min.X() + r.padding) * r.scale
		y := (bound.Max.Y() - pt.Y() + r.padding) * r.scale
		return x, y
	}

	w := (bound.Max.X() - bound.Min.X() + 2*r.padding) * r.scale
	h := (bound.Max.Y() - bound.Min.Y() + 2*r.padding) * r.scale

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)

	for _, b := range p.Beams() {
		renderBeam(&buf, &r, b, toPx)
	}
	for _, c := range cols {
		renderColumn(&buf, &r, c, toPx)
	}
	if r.labels {
		for _, c := range cols {
			if c.Hidden {
				continue
			}
			renderLabel(&buf, &r, c, toPx)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{scale: DefaultScale, padding: DefaultPadding}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func renderBeam(buf *bytes.Buffer, r *svgRenderer, b *plan.Beam, toPx func(orb.Point) (float64, float64)) {
	if b.Span() < geom.Eps {
		return
	}
	x1, y1 := toPx(b.Start)
	x2, y2 := toPx(b.End)
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" stroke-linecap="square"/>`+"\n",
		x1, y1, x2, y2, strokeBeam, b.Width*r.scale)
}

func renderColumn(buf *bytes.Buffer, r *svgRenderer, c *plan.Column, toPx func(orb.Point) (float64, float64)) {
	x, y := toPx(c.Position)
	fill := columnFill(c)

	extra := ""
	if c.IsSuspended() {
		extra = ` fill-opacity="0.25" stroke-dasharray="4 3"`
	}

	if c.Hidden {
		// Hidden anchors have no physical section - mark the spot only.
		fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"%s/>`+"\n",
			x, y, 0.08*r.scale, fill, extra)
		return
	}

	switch c.Section.Shape {
	case plan.ShapeCircle:
		fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="1"%s/>`+"\n",
			x, y, c.Section.Diameter/2*r.scale, fill, fill, extra)
	default:
		w := c.Section.Width * r.scale
		l := c.Section.Length * r.scale
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1"%s/>`+"\n",
			x-w/2, y-l/2, w, l, fill, fill, extra)
	}
}

func renderLabel(buf *bytes.Buffer, r *svgRenderer, c *plan.Column, toPx func(orb.Point) (float64, float64)) {
	x, y := toPx(c.Position)
	offset := c.Section.Length/2*r.scale + 0.1*r.scale
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.1f" text-anchor="middle" fill="%s">%s</text>`+"\n",
		x, y-offset, 0.25*r.scale, fillLabel, shortID(string(c.ID)))
}

func columnFill(c *plan.Column) string {
	switch c.Kind {
	case plan.KindAuto:
		return fillAuto
	case plan.KindTransient:
		return fillTransient
	case plan.KindAnchor:
		return fillAnchor
	default:
		return fillUser
	}
}

// shortID truncates generated ids so labels stay readable. UUIDs keep their
// first group only.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
