package topology

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/framegrid/framegrid/pkg/plan"
)

// Options configures topology diagram rendering.
type Options struct {
	// Detailed includes position and kind in node labels.
	// When false, only the column id is shown.
	Detailed bool
}

// ToDOT converts a plan to Graphviz DOT format for node-link visualization.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Only active columns and their beams appear: a topology diagram shows the
// grid that currently carries load, not the suspended history. Each node is
// pinned at its plan position so neato reproduces the plan's geometry.
func ToDOT(p *plan.Plan, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.1,0.05\"];\n")
	buf.WriteString("\n")

	active := make(map[plan.ColumnID]bool)
	for _, c := range p.ActiveColumns() {
		active[c.ID] = true
		label := fmtLabel(c, opts.Detailed)
		attrs := fmtAttrs(c, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", c.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, b := range p.Beams() {
		if !active[b.StartID] || !active[b.EndID] {
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q;\n", b.StartID, b.EndID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(c *plan.Column, detailed bool) string {
	id := string(c.ID)
	if len(id) > 8 {
		id = id[:8]
	}
	if !detailed {
		return id
	}

	parts := []string{
		fmt.Sprintf("(%.1f, %.1f)", c.Position.X(), c.Position.Y()),
		c.Kind.String(),
	}
	return id + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(c *plan.Column, label string) []string {
	attrs := []string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf(`pos="%.4f,%.4f!"`, c.Position.X(), c.Position.Y()),
	}
	switch {
	case c.IsAnchor():
		attrs = append(attrs, "shape=diamond", "fillcolor=lightyellow")
	case c.IsTransient():
		attrs = append(attrs, "fillcolor=lightblue")
	case c.IsAuto():
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
