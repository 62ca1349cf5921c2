package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/framegrid/framegrid/pkg/errors"
	"github.com/framegrid/framegrid/pkg/render"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"svg", "svg", false},
		{"dot", "dot", false},
		{"topo", "topo", false},
		{"invalid", "invalid", true},
		{"empty", "", true},
		{"uppercase not matched", "SVG", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if err != nil && errors.GetCode(err) != errors.ErrCodeInvalidFormat {
				t.Errorf("validateFormat(%q) code = %v, want %v", tt.format, errors.GetCode(err), errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestOutputExt(t *testing.T) {
	if got := outputExt(formatSVG); got != "svg" {
		t.Errorf("outputExt(svg) = %q, want svg", got)
	}
	if got := outputExt(formatDOT); got != "dot" {
		t.Errorf("outputExt(dot) = %q, want dot", got)
	}
	if got := outputExt(formatTopo); got != "svg" {
		t.Errorf("outputExt(topo) = %q, want svg", got)
	}
}

func TestSVGOptions(t *testing.T) {
	opts := svgOptions(&renderOpts{scale: render.DefaultScale})
	if len(opts) != 1 {
		t.Errorf("svgOptions without labels = %d options, want 1", len(opts))
	}
	opts = svgOptions(&renderOpts{scale: render.DefaultScale, labels: true})
	if len(opts) != 2 {
		t.Errorf("svgOptions with labels = %d options, want 2", len(opts))
	}
}

// planFixture is a small plan with two columns and one beam, written to a
// temp dir for commands that take a file path.
const planFixture = `{
	"columns": [
		{"id": "a", "position": {"x": 0, "y": 0}},
		{"id": "b", "position": {"x": 4, "y": 0}}
	],
	"beams": [
		{"id": "ab", "start": "a", "end": "b"}
	]
}`

func writePlanFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	if err := os.WriteFile(path, []byte(planFixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestRunRenderSVG(t *testing.T) {
	input := writePlanFixture(t)
	c := New(os.Stderr, LogInfo)

	opts := renderOpts{format: formatSVG, scale: render.DefaultScale}
	if err := c.runRender(context.Background(), input, &opts); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	out := strings.TrimSuffix(input, ".json") + ".svg"
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Errorf("output should contain an svg element, got %.80s", data)
	}
}

func TestRunRenderDOT(t *testing.T) {
	input := writePlanFixture(t)
	output := filepath.Join(filepath.Dir(input), "topology.dot")
	c := New(os.Stderr, LogInfo)

	opts := renderOpts{format: formatDOT, output: output}
	if err := c.runRender(context.Background(), input, &opts); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "graph G {") {
		t.Errorf("output should start with an undirected graph header, got %.40s", data)
	}
}
