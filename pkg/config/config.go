// Package config defines the flat engine configuration record shared by the
// CLI, the HTTP API, and the plan engine itself.
//
// The record intentionally stays small: maximum sub-span per axis, default
// beam width, and the default column cross-section. Everything else the
// engine does is derived from geometry, not configured. Values load from a
// TOML file via [Load] and fall back to [Default]; the API server overlays
// its own environment-driven settings separately.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Engine
// =============================================================================

const (
	// DefaultMaxSpanX is the maximum unsupported beam sub-span along the x
	// axis, in meters. Spans longer than this get automatic intermediate
	// columns.
	DefaultMaxSpanX = 6.0

	// DefaultMaxSpanY is the maximum unsupported beam sub-span along the y
	// axis, in meters.
	DefaultMaxSpanY = 6.0

	// DefaultBeamWidth is the beam width in meters. Beam height is never
	// configured: it is always span/10.
	DefaultBeamWidth = 0.15

	// DefaultColumnWidth is the default rectangular cross-section width in
	// meters.
	DefaultColumnWidth = 0.4

	// DefaultColumnLength is the default rectangular cross-section length in
	// meters.
	DefaultColumnLength = 0.4

	// DefaultColumnHeight is the default column height in meters.
	DefaultColumnHeight = 3.0
)

// Shape constants for the default column cross-section.
const (
	ShapeRect   = "rect"
	ShapeCircle = "circle"
)

// ValidShapes is the set of supported cross-section shapes.
var ValidShapes = map[string]bool{
	ShapeRect:   true,
	ShapeCircle: true,
}

// =============================================================================
// Config
// =============================================================================

// Config is the flat engine configuration record. The zero value is not
// usable - obtain one from [Default] or [Load], or call
// [Config.ValidateAndSetDefaults] before use.
type Config struct {
	// MaxSpanX and MaxSpanY bound unsupported beam sub-spans per axis, in
	// meters. Diagonal beams use the larger of the two.
	MaxSpanX float64 `json:"max_span_x" toml:"max_span_x" bson:"max_span_x"`
	MaxSpanY float64 `json:"max_span_y" toml:"max_span_y" bson:"max_span_y"`

	// BeamWidth is the width of new beams in meters.
	BeamWidth float64 `json:"beam_width" toml:"beam_width" bson:"beam_width"`

	// ColumnShape selects the default cross-section ("rect" or "circle").
	ColumnShape string `json:"column_shape" toml:"column_shape" bson:"column_shape"`

	// ColumnWidth and ColumnLength size rectangular cross-sections; for
	// circular sections ColumnWidth doubles as the diameter.
	ColumnWidth  float64 `json:"column_width" toml:"column_width" bson:"column_width"`
	ColumnLength float64 `json:"column_length" toml:"column_length" bson:"column_length"`

	// ColumnHeight is the default column height in meters.
	ColumnHeight float64 `json:"column_height" toml:"column_height" bson:"column_height"`

	// Contour merges polygon vertex coordinates into grid lines during
	// polygon fill, aligning the generated grid with the outline.
	Contour bool `json:"contour" toml:"contour" bson:"contour"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-" toml:"-" bson:"-"`
}

// Default returns the configuration record with all defaults applied.
func Default() Config {
	c := Config{}
	_ = c.ValidateAndSetDefaults()
	return c
}

// ValidateAndSetDefaults fills zero fields with defaults and rejects
// negative dimensions. This method is idempotent - calling it multiple
// times has the same effect as calling it once.
func (c *Config) ValidateAndSetDefaults() error {
	if c.validated {
		return nil
	}
	if c.MaxSpanX < 0 || c.MaxSpanY < 0 {
		return fmt.Errorf("max span must be positive, got x=%v y=%v", c.MaxSpanX, c.MaxSpanY)
	}
	if c.BeamWidth < 0 || c.ColumnWidth < 0 || c.ColumnLength < 0 || c.ColumnHeight < 0 {
		return fmt.Errorf("dimensions must be positive")
	}
	if c.MaxSpanX == 0 {
		c.MaxSpanX = DefaultMaxSpanX
	}
	if c.MaxSpanY == 0 {
		c.MaxSpanY = DefaultMaxSpanY
	}
	if c.BeamWidth == 0 {
		c.BeamWidth = DefaultBeamWidth
	}
	if c.ColumnShape == "" {
		c.ColumnShape = ShapeRect
	}
	if !ValidShapes[c.ColumnShape] {
		return fmt.Errorf("invalid column_shape: %q (must be one of: rect, circle)", c.ColumnShape)
	}
	if c.ColumnWidth == 0 {
		c.ColumnWidth = DefaultColumnWidth
	}
	if c.ColumnLength == 0 {
		c.ColumnLength = DefaultColumnLength
	}
	if c.ColumnHeight == 0 {
		c.ColumnHeight = DefaultColumnHeight
	}
	c.validated = true
	return nil
}

// MaxSpanFor returns the span limit for a beam axis: horizontal beams use
// MaxSpanX, vertical beams MaxSpanY, and diagonals the larger of the two.
func (c Config) MaxSpanFor(horizontal, vertical bool) float64 {
	switch {
	case horizontal:
		return c.MaxSpanX
	case vertical:
		return c.MaxSpanY
	default:
		return max(c.MaxSpanX, c.MaxSpanY)
	}
}

// Load reads a TOML configuration file and applies defaults to fields the
// file leaves unset.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.ValidateAndSetDefaults(); err != nil {
		return Config{}, err
	}
	return c, nil
}
