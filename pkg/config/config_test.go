package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.MaxSpanX != DefaultMaxSpanX {
		t.Errorf("MaxSpanX = %v, want %v", c.MaxSpanX, DefaultMaxSpanX)
	}
	if c.BeamWidth != DefaultBeamWidth {
		t.Errorf("BeamWidth = %v, want %v", c.BeamWidth, DefaultBeamWidth)
	}
	if c.ColumnShape != ShapeRect {
		t.Errorf("ColumnShape = %q, want %q", c.ColumnShape, ShapeRect)
	}
}

func TestValidateAndSetDefaults_PartialFill(t *testing.T) {
	c := Config{MaxSpanX: 8}

	if err := c.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if c.MaxSpanX != 8 {
		t.Errorf("MaxSpanX = %v, want explicit 8 preserved", c.MaxSpanX)
	}
	if c.MaxSpanY != DefaultMaxSpanY {
		t.Errorf("MaxSpanY = %v, want default %v", c.MaxSpanY, DefaultMaxSpanY)
	}
}

func TestValidateAndSetDefaults_Idempotent(t *testing.T) {
	c := Config{}
	if err := c.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first call error = %v", err)
	}
	c.MaxSpanX = 0 // would be refilled if validation ran again

	if err := c.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call error = %v", err)
	}
	if c.MaxSpanX != 0 {
		t.Error("second ValidateAndSetDefaults() re-applied defaults, want no-op")
	}
}

func TestValidateAndSetDefaults_Rejects(t *testing.T) {
	c := Config{MaxSpanX: -1}
	if err := c.ValidateAndSetDefaults(); err == nil {
		t.Error("ValidateAndSetDefaults() error = nil for negative span, want error")
	}

	c = Config{ColumnShape: "hexagon"}
	if err := c.ValidateAndSetDefaults(); err == nil {
		t.Error("ValidateAndSetDefaults() error = nil for unknown shape, want error")
	}
}

func TestMaxSpanFor(t *testing.T) {
	c := Config{MaxSpanX: 6, MaxSpanY: 4}

	if got := c.MaxSpanFor(true, false); got != 6 {
		t.Errorf("MaxSpanFor(horizontal) = %v, want 6", got)
	}
	if got := c.MaxSpanFor(false, true); got != 4 {
		t.Errorf("MaxSpanFor(vertical) = %v, want 4", got)
	}
	if got := c.MaxSpanFor(false, false); got != 6 {
		t.Errorf("MaxSpanFor(diagonal) = %v, want 6", got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "framegrid.toml")
	content := "max_span_x = 5.0\nbeam_width = 0.2\ncontour = true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.MaxSpanX != 5 {
		t.Errorf("MaxSpanX = %v, want 5", c.MaxSpanX)
	}
	if c.BeamWidth != 0.2 {
		t.Errorf("BeamWidth = %v, want 0.2", c.BeamWidth)
	}
	if !c.Contour {
		t.Error("Contour = false, want true")
	}
	if c.MaxSpanY != DefaultMaxSpanY {
		t.Errorf("MaxSpanY = %v, want default %v", c.MaxSpanY, DefaultMaxSpanY)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Error("Load() error = nil for missing file, want error")
	}
}
