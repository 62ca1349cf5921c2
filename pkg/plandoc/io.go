package plandoc

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/framegrid/framegrid/pkg/plan"
)

// Read decodes a JSON plan document from r into a live plan.
//
// The input must be a JSON object with a "config" object and "columns" and
// "beams" arrays:
//
//	{
//	  "version": 1,
//	  "config": {"max_span_x": 6, "max_span_y": 6},
//	  "columns": [
//	    {"id": "a", "position": {"x": 0, "y": 0}},
//	    {"id": "b", "position": {"x": 5, "y": 0}}
//	  ],
//	  "beams": [{"id": "ab", "start": "a", "end": "b"}]
//	}
//
// Each column must have an "id" and a "position". Optional fields default
// from the config: section geometry, height, and beam width. Each beam must
// reference existing column ids.
//
// Read returns an error if:
//   - The JSON is malformed or invalid
//   - A column or beam has a missing or duplicate id
//   - A beam endpoint or origin references an unknown column id
//   - The rebuilt table fails [plan.Plan.Validate]
//
// Errors are wrapped with context describing which column or beam caused
// the problem.
//
// The returned plan is independent of r and can be modified safely after
// Read returns. Read does not close r.
func Read(r io.Reader, opts ...plan.Option) (*plan.Plan, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToPlan(doc, opts...)
}

// Import reads a JSON document file at path and returns the decoded plan.
//
// Import opens the file, decodes it using [Read], and closes the file. If
// the file cannot be opened, or if decoding fails, Import returns an error
// describing the failure. The error wraps the underlying cause with the
// file path for context.
func Import(path string, opts ...plan.Option) (*plan.Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, opts...)
}

// Write encodes a plan as an indented JSON document and writes it to w.
// The output includes all columns (suspended and hidden ones too) and
// beams, and can be re-imported with [Read] for round-trip processing.
func Write(p *plan.Plan, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromPlan(p)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes a plan to a JSON document file at path.
// This is a convenience wrapper around [Write] for file-based output.
func Export(p *plan.Plan, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(p, f)
}

// Marshal encodes a document as indented JSON bytes. Stores use this as
// the wire and disk format.
func Marshal(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}

// Unmarshal decodes JSON bytes to a Document.
func Unmarshal(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	return doc, nil
}
