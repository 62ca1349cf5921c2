package topology

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"

	"github.com/framegrid/framegrid/pkg/config"
	"github.com/framegrid/framegrid/pkg/plan"
)

func gridPlan(t *testing.T) *plan.Plan {
	t.Helper()
	p := plan.New(config.Default())
	a := p.AddColumn(plan.ColumnSpec{Position: orb.Point{0, 0}})
	b := p.AddColumn(plan.ColumnSpec{Position: orb.Point{4, 0}})
	if p.AddBeam(a.ID, b.ID, 0) == nil {
		t.Fatal("AddBeam returned nil")
	}
	return p
}

func TestToDOT_Undirected(t *testing.T) {
	dot := ToDOT(gridPlan(t), Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("want undirected graph, got %.40q", dot)
	}
	if strings.Contains(dot, "->") {
		t.Error("undirected graph must not contain directed edges")
	}
	if !strings.Contains(dot, " -- ") {
		t.Error("missing beam edge")
	}
}

func TestToDOT_NeatoLayout(t *testing.T) {
	dot := ToDOT(gridPlan(t), Options{})

	if !strings.Contains(dot, "layout=neato") {
		t.Error("missing neato layout directive")
	}
	if !strings.Contains(dot, `pos="4.0000,0.0000!"`) {
		t.Errorf("node position not pinned:\n%s", dot)
	}
}

func TestToDOT_SkipsSuspended(t *testing.T) {
	p := gridPlan(t)
	cols := p.Columns()
	p.Suspend(cols[0].ID, cols[1].ID)

	dot := ToDOT(p, Options{})
	if strings.Contains(dot, string(cols[0].ID)) {
		t.Error("suspended column should not appear")
	}
	if strings.Contains(dot, " -- ") {
		t.Error("beam to a suspended column should be skipped")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	p := plan.New(config.Default())
	p.AddColumn(plan.ColumnSpec{Position: orb.Point{1.5, 2}})

	plain := ToDOT(p, Options{})
	if strings.Contains(plain, "(1.5, 2.0)") {
		t.Error("plain labels should omit positions")
	}

	detailed := ToDOT(p, Options{Detailed: true})
	if !strings.Contains(detailed, "(1.5, 2.0)") {
		t.Errorf("detailed label missing position:\n%s", detailed)
	}
	if !strings.Contains(detailed, "user") {
		t.Error("detailed label missing kind")
	}
}

func TestToDOT_KindStyling(t *testing.T) {
	p := plan.New(config.Default())
	p.AddColumn(plan.ColumnSpec{Position: orb.Point{0, 0}, Kind: plan.KindAnchor, Role: plan.RoleSupport})
	p.AddColumn(plan.ColumnSpec{Position: orb.Point{4, 0}, Kind: plan.KindAuto})

	dot := ToDOT(p, Options{})
	if !strings.Contains(dot, "shape=diamond") {
		t.Error("anchor should render as a diamond")
	}
	if !strings.Contains(dot, "fillcolor=lightgrey") {
		t.Error("auto column should be grey")
	}
}

func TestToDOT_TruncatesLongIDs(t *testing.T) {
	p := plan.New(config.Default())
	c := p.AddColumn(plan.ColumnSpec{Position: orb.Point{0, 0}})
	if len(c.ID) <= 8 {
		t.Skipf("generated id %q too short to truncate", c.ID)
	}

	dot := ToDOT(p, Options{})
	if !strings.Contains(dot, `label="`+string(c.ID)[:8]+`"`) {
		t.Errorf("label should truncate to 8 chars:\n%s", dot)
	}
}
