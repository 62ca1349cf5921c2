package cli

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/framegrid/framegrid/pkg/errors"
)

func TestParsePolygon(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want []orb.Point
	}{
		{
			name: "space separated",
			arg:  "0,0 10,0 10,10 0,10",
			want: []orb.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		},
		{
			name: "semicolon separated",
			arg:  "0,0;10,0;10,10",
			want: []orb.Point{{0, 0}, {10, 0}, {10, 10}},
		},
		{
			name: "mixed separators and spaces",
			arg:  "0,0; 4.5,0  4.5,3",
			want: []orb.Point{{0, 0}, {4.5, 0}, {4.5, 3}},
		},
		{
			name: "negative coordinates",
			arg:  "-2,-2 2,-2 2,2 -2,2",
			want: []orb.Point{{-2, -2}, {2, -2}, {2, 2}, {-2, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePolygon(tt.arg)
			if err != nil {
				t.Fatalf("parsePolygon(%q) error: %v", tt.arg, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parsePolygon(%q) = %d vertices, want %d", tt.arg, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("vertex %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParsePolygonErrors(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{"empty string", ""},
		{"only separators", " ; "},
		{"missing y", "0,0 10"},
		{"too many coordinates", "0,0,0"},
		{"bad x", "a,0"},
		{"bad y", "0,b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePolygon(tt.arg)
			if err == nil {
				t.Fatalf("parsePolygon(%q) should fail", tt.arg)
			}
			if errors.GetCode(err) != errors.ErrCodeInvalidPolygon {
				t.Errorf("parsePolygon(%q) code = %v, want %v", tt.arg, errors.GetCode(err), errors.ErrCodeInvalidPolygon)
			}
		})
	}
}

func TestParseTargets(t *testing.T) {
	got := parseTargets("a, b,,c ")
	if len(got) != 3 {
		t.Fatalf("parseTargets() = %d ids, want 3", len(got))
	}
	for i, want := range []string{"a", "b", "c"} {
		if string(got[i]) != want {
			t.Errorf("target %d = %q, want %q", i, got[i], want)
		}
	}
}

func TestParseTargetsEmpty(t *testing.T) {
	if got := parseTargets(" , "); got != nil {
		t.Errorf("parseTargets of blanks = %v, want nil", got)
	}
}
