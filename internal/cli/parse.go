package cli

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/framegrid/framegrid/pkg/errors"
	"github.com/framegrid/framegrid/pkg/plan"
)

// parsePolygon parses a footprint string into vertices. Vertices are
// separated by spaces or semicolons, coordinates within a vertex by a
// comma: "0,0 10,0 10,10 0,10".
func parsePolygon(s string) ([]orb.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ';'
	})
	if len(fields) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidPolygon, "empty polygon")
	}

	pts := make([]orb.Point, 0, len(fields))
	for _, f := range fields {
		xy := strings.Split(f, ",")
		if len(xy) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidPolygon, "vertex %q is not x,y", f)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidPolygon, "vertex %q: bad x coordinate", f)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidPolygon, "vertex %q: bad y coordinate", f)
		}
		pts = append(pts, orb.Point{x, y})
	}
	return pts, nil
}

// parseTargets splits a comma-separated id list into column ids, dropping
// empty entries.
func parseTargets(s string) []plan.ColumnID {
	var ids []plan.ColumnID
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ids = append(ids, plan.ColumnID(part))
	}
	return ids
}
