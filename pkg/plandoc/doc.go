// Package plandoc provides JSON import and export for structural plans.
//
// # Overview
//
// This package defines the canonical document format for plans and converts
// between it and the live [plan.Plan] table. The format is designed for:
//
//   - Storage of plans in any string-keyed store (files, Redis, MongoDB)
//   - API request and response bodies
//   - Integration with external tools that produce or consume plan data
//   - Round-trip preservation: export, re-import, and re-export identically
//
// # JSON Format
//
// A document has a version, a config object, and two entity arrays:
//
//	{
//	  "version": 1,
//	  "config": {"max_span_x": 6, "max_span_y": 6, "beam_width": 0.15},
//	  "columns": [
//	    {"id": "a", "position": {"x": 0, "y": 0}},
//	    {"id": "b", "position": {"x": 5, "y": 0}}
//	  ],
//	  "beams": [
//	    {"id": "ab", "start": "a", "end": "b"}
//	  ]
//	}
//
// # Column Fields
//
// Required:
//   - id: Unique string identifier
//   - position: Plan-space location in meters ({"x": ..., "y": ...})
//
// Optional, defaulting from the config:
//   - shape, width, length, diameter: Cross-section geometry
//   - height: Column height in meters
//
// Optional state, for round-tripping mid-session plans:
//   - kind: "auto", "transient", or "anchor" (empty means user-placed)
//   - suspended, home, suspended_by, clone_of: Suspension bookkeeping
//   - hidden, role: Anchor flags
//
// # Beam Fields
//
// Each beam needs an id and the "start" and "end" column ids. Optional
// origin_start and origin_end record conceptual endpoints when they differ
// from the current ones; width defaults from the config. Cached endpoint
// coordinates and beam height are never part of the document - they are
// derived from the column table on import.
//
// # Import
//
// Use [Import] to read a plan from a file path, or [Read] to read from any
// io.Reader:
//
//	p, err := plandoc.Import("tower.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions validate the JSON structure and the rebuilt table's
// referential integrity. Errors are wrapped with context about which column
// or beam caused the problem.
//
// # Export
//
// Use [Export] to write a plan to a file, or [Write] to write to any
// io.Writer:
//
//	err := plandoc.Export(p, "tower.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The export includes every column and beam, suspension state included, so
// a plan captured mid-move round-trips faithfully.
//
// # Concurrency
//
// All functions in this package are safe to call concurrently with other
// readers of the same plan, but not with concurrent modifications. [Read]
// and [Import] create independent plan instances that can be used and
// modified freely after import.
package plandoc
