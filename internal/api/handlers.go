package api

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/framegrid/framegrid/pkg/errors"
	"github.com/framegrid/framegrid/pkg/observability"
	"github.com/framegrid/framegrid/pkg/plan"
	"github.com/framegrid/framegrid/pkg/plan/grid"
	"github.com/framegrid/framegrid/pkg/plan/segment"
	"github.com/framegrid/framegrid/pkg/plan/span"
	"github.com/framegrid/framegrid/pkg/plan/support"
	"github.com/framegrid/framegrid/pkg/plandoc"
	"github.com/framegrid/framegrid/pkg/render"
	"github.com/framegrid/framegrid/pkg/render/topology"
)

func planID(r *http.Request) string { return chi.URLParam(r, "plan") }

// ==========================================================================
// Plan CRUD
// ==========================================================================

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "listing plans"))
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"plans": ids})
}

// handleCreate stores a new plan. The body may be a full plan document or
// empty for a blank plan with default config. The document id wins over a
// generated uuid when present.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var doc plandoc.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil && !stderrors.Is(err, io.EOF) {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	// An omitted version means "current", not "ancient".
	if doc.Version == 0 {
		doc.Version = plandoc.Version
	}

	id := doc.ID
	if id == "" {
		id = uuid.NewString()
	}
	if err := errors.ValidatePlanID(id); err != nil {
		writeError(w, err)
		return
	}

	if _, err := plandoc.ToPlan(doc); err != nil {
		writeError(w, err)
		return
	}

	lock := s.planLock(id)
	lock.Lock()
	defer lock.Unlock()
	if err := s.store.Put(r.Context(), id, doc); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "storing plan %q", id))
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), planID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	id := planID(r)
	if !s.guardMutation(w, id) {
		return
	}
	if err := errors.ValidatePlanID(id); err != nil {
		writeError(w, err)
		return
	}

	var doc plandoc.Document
	if !decodeBody(w, r, &doc) {
		return
	}
	if doc.Version == 0 {
		doc.Version = plandoc.Version
	}
	if _, err := plandoc.ToPlan(doc); err != nil {
		writeError(w, err)
		return
	}

	lock := s.planLock(id)
	lock.Lock()
	defer lock.Unlock()
	if err := s.store.Put(r.Context(), id, doc); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "storing plan %q", id))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := planID(r)
	if !s.guardMutation(w, id) {
		return
	}
	lock := s.planLock(id)
	lock.Lock()
	defer lock.Unlock()
	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ==========================================================================
// Inspection
// ==========================================================================

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	p, err := s.loadPlan(r.Context(), planID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p.Stats())
}

// handleValidate reports document integrity instead of failing the request:
// a broken stored plan is a finding, not a server error.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), planID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := plandoc.ToPlan(doc)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"valid": false,
			"error": errors.UserMessage(err),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"valid": true,
		"stats": p.Stats(),
	})
}

func (s *Server) handleSegments(w http.ResponseWriter, r *http.Request) {
	p, err := s.loadPlan(r.Context(), planID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	beamID := plan.BeamID(chi.URLParam(r, "beam"))
	b, ok := p.Beam(beamID)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeBeamNotFound, "beam %q not found", beamID))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"segments": segment.Split(p, b)})
}

// ==========================================================================
// Engine operations
// ==========================================================================

func (s *Server) handleEnforce(w http.ResponseWriter, r *http.Request) {
	id := planID(r)
	if !s.guardMutation(w, id) {
		return
	}
	lock := s.planLock(id)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.loadPlan(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	observability.Engine().OnEnforceStart(r.Context(), id, p.BeamCount())
	start := time.Now()
	res := span.Enforce(p)
	observability.Engine().OnEnforceComplete(r.Context(), id, res.Inserted, res.Removed, time.Since(start))

	if err := s.savePlan(r.Context(), id, p); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "storing plan %q", id))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	id := planID(r)
	if !s.guardMutation(w, id) {
		return
	}

	var req struct {
		Polygon []plandoc.Point `json:"polygon"`
		Contour bool            `json:"contour"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	lock := s.planLock(id)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.loadPlan(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	polygon := make([]orb.Point, len(req.Polygon))
	for i, pt := range req.Polygon {
		polygon[i] = orb.Point{pt.X, pt.Y}
	}

	observability.Engine().OnGridStart(r.Context(), id, len(polygon))
	start := time.Now()
	res, err := grid.Fill(p, polygon, grid.Options{Contour: req.Contour})
	observability.Engine().OnGridComplete(r.Context(), id, res.ColumnsCreated, res.BeamsCreated, time.Since(start), err)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidPolygon, err, "grid fill"))
		return
	}

	if err := s.savePlan(r.Context(), id, p); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "storing plan %q", id))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleLink(w http.ResponseWriter, r *http.Request) {
	id := planID(r)
	if !s.guardMutation(w, id) {
		return
	}

	// Angle is in degrees off perpendicular; the engine itself works in
	// radians.
	var req struct {
		Dependent string  `json:"dependent"`
		Support   string  `json:"support"`
		Angle     float64 `json:"angle"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	lock := s.planLock(id)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.loadPlan(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	for _, beamID := range []string{req.Dependent, req.Support} {
		if _, ok := p.Beam(plan.BeamID(beamID)); !ok {
			writeError(w, errors.New(errors.ErrCodeBeamNotFound, "beam %q not found", beamID))
			return
		}
	}

	start := time.Now()
	anchor, landed := support.Link(p, plan.BeamID(req.Dependent), plan.BeamID(req.Support), req.Angle*math.Pi/180)
	observability.Engine().OnSupportLink(r.Context(), id, landed, time.Since(start))

	if !landed {
		writeJSON(w, http.StatusOK, map[string]any{"landed": false})
		return
	}
	if err := s.savePlan(r.Context(), id, p); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "storing plan %q", id))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"landed": true,
		"anchor": map[string]any{
			"id":       anchor.ID,
			"position": plandoc.Point{X: anchor.Position.X(), Y: anchor.Position.Y()},
			"hidden":   anchor.Hidden,
		},
	})
}

// ==========================================================================
// Rendering
// ==========================================================================

func (s *Server) handleRenderSVG(w http.ResponseWriter, r *http.Request) {
	p, err := s.loadPlan(r.Context(), planID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	var opts []render.SVGOption
	if v := r.URL.Query().Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || scale <= 0 {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid scale %q", v))
			return
		}
		opts = append(opts, render.WithScale(scale))
	}
	if r.URL.Query().Get("labels") == "true" {
		opts = append(opts, render.WithLabels())
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(render.RenderSVG(p, opts...))
}

func (s *Server) handleRenderDOT(w http.ResponseWriter, r *http.Request) {
	p, err := s.loadPlan(r.Context(), planID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	dot := topology.ToDOT(p, topology.Options{
		Detailed: r.URL.Query().Get("detailed") == "true",
	})
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	_, _ = io.WriteString(w, dot)
}
