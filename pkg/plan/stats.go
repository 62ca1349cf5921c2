package plan

import "github.com/framegrid/framegrid/pkg/geom"

// Stats summarizes a plan for listings and API responses.
type Stats struct {
	Columns   int `json:"columns"`
	Active    int `json:"active"`
	Suspended int `json:"suspended"`
	User      int `json:"user"`
	Auto      int `json:"auto"`
	Transient int `json:"transient"`
	Anchor    int `json:"anchor"`
	Beams     int `json:"beams"`

	// LongestSubSpan is the widest gap between consecutive supports on any
	// beam, in meters. SpanViolations counts gaps exceeding the configured
	// limit for their beam axis by more than [geom.Tol].
	LongestSubSpan float64 `json:"longest_sub_span"`
	SpanViolations int     `json:"span_violations"`
}

// Stats computes summary counts and the current worst sub-span.
func (p *Plan) Stats() Stats {
	var s Stats
	for _, c := range p.Columns() {
		s.Columns++
		if c.IsActive() {
			s.Active++
		} else {
			s.Suspended++
		}
		switch c.Kind {
		case KindAuto:
			s.Auto++
		case KindTransient:
			s.Transient++
		case KindAnchor:
			s.Anchor++
		default:
			s.User++
		}
	}
	for _, b := range p.Beams() {
		s.Beams++
		limit := p.cfg.MaxSpanFor(b.Horizontal(), b.Vertical())
		for _, gap := range p.subSpans(b) {
			if gap > s.LongestSubSpan {
				s.LongestSubSpan = gap
			}
			if gap > limit+geom.Tol {
				s.SpanViolations++
			}
		}
	}
	return s
}

// subSpans returns the gaps between consecutive supports on a beam. A beam
// with fewer than two stations counts as a single gap of its whole span.
func (p *Plan) subSpans(b *Beam) []float64 {
	stations := p.ColumnsOnBeam(b, geom.Tol, geom.Tol)
	if len(stations) < 2 {
		return []float64{b.Span()}
	}
	gaps := make([]float64, 0, len(stations)-1)
	for i := 1; i < len(stations); i++ {
		gaps = append(gaps, stations[i].Offset-stations[i-1].Offset)
	}
	return gaps
}
