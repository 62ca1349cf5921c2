package api

import (
	"net/http"
	"time"

	"github.com/framegrid/framegrid/pkg/errors"
	"github.com/framegrid/framegrid/pkg/observability"
	"github.com/framegrid/framegrid/pkg/plan"
	"github.com/framegrid/framegrid/pkg/plan/move"
	"github.com/framegrid/framegrid/pkg/plandoc"
)

// moveState pins a plan in memory while a move session is open. The plan in
// the store stays at its pre-session state until finalize writes back.
type moveState struct {
	plan    *plan.Plan
	session *move.Session
	started time.Time
}

type pairPayload struct {
	CloneID    plan.ColumnID `json:"clone_id"`
	OriginalID plan.ColumnID `json:"original_id"`
	Origin     plandoc.Point `json:"origin"`
	Position   plandoc.Point `json:"position"`
}

func pairsPayload(p *plan.Plan, sess *move.Session) []pairPayload {
	pairs := sess.Pairs()
	out := make([]pairPayload, 0, len(pairs))
	for _, pr := range pairs {
		pp := pairPayload{
			CloneID:    pr.CloneID,
			OriginalID: pr.OriginalID,
			Origin:     plandoc.Point{X: pr.Origin.X(), Y: pr.Origin.Y()},
		}
		if c, ok := p.Column(pr.CloneID); ok {
			pp.Position = plandoc.Point{X: c.Position.X(), Y: c.Position.Y()}
		}
		out = append(out, pp)
	}
	return out
}

func (s *Server) handleMoveStart(w http.ResponseWriter, r *http.Request) {
	id := planID(r)

	var req struct {
		Targets []string `json:"targets"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	lock := s.planLock(id)
	lock.Lock()
	defer lock.Unlock()

	if s.openSession(id) != nil {
		writeError(w, errors.New(errors.ErrCodeConflict, "plan %q already has an open move session", id))
		return
	}

	p, err := s.loadPlan(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	targets := make([]plan.ColumnID, len(req.Targets))
	for i, t := range req.Targets {
		targets[i] = plan.ColumnID(t)
	}

	sess := move.Start(p, targets)
	if sess == nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "no eligible move targets"))
		return
	}
	observability.Engine().OnMoveStart(r.Context(), id, len(sess.Pairs()))

	s.mu.Lock()
	s.sessions[id] = &moveState{plan: p, session: sess, started: time.Now()}
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]any{
		"pairs": pairsPayload(p, sess),
	})
}

func (s *Server) handleMoveGet(w http.ResponseWriter, r *http.Request) {
	id := planID(r)
	st := s.openSession(id)
	if st == nil {
		writeJSON(w, http.StatusOK, map[string]any{"active": false})
		return
	}

	lock := s.planLock(id)
	lock.Lock()
	defer lock.Unlock()

	dx, dy := st.session.Delta()
	writeJSON(w, http.StatusOK, map[string]any{
		"active": true,
		"dx":     dx,
		"dy":     dy,
		"pairs":  pairsPayload(st.plan, st.session),
	})
}

// handleMovePointer applies the pointer's total delta since session start.
// Deltas are absolute, not incremental: sending the same body twice is
// harmless.
func (s *Server) handleMovePointer(w http.ResponseWriter, r *http.Request) {
	id := planID(r)

	var req struct {
		DX float64 `json:"dx"`
		DY float64 `json:"dy"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	lock := s.planLock(id)
	lock.Lock()
	defer lock.Unlock()

	st := s.openSession(id)
	if st == nil {
		writeError(w, errors.New(errors.ErrCodeSessionNotFound, "plan %q has no open move session", id))
		return
	}

	st.session.Apply(req.DX, req.DY)
	observability.Engine().OnMoveApply(r.Context(), id, req.DX, req.DY)

	writeJSON(w, http.StatusOK, map[string]any{
		"dx":    req.DX,
		"dy":    req.DY,
		"pairs": pairsPayload(st.plan, st.session),
		"stats": st.plan.Stats(),
	})
}

func (s *Server) handleMoveFinalize(w http.ResponseWriter, r *http.Request) {
	id := planID(r)

	lock := s.planLock(id)
	lock.Lock()
	defer lock.Unlock()

	st := s.openSession(id)
	if st == nil {
		writeError(w, errors.New(errors.ErrCodeSessionNotFound, "plan %q has no open move session", id))
		return
	}

	st.session.Finalize()
	observability.Engine().OnMoveFinalize(r.Context(), id, time.Since(st.started))

	if err := s.savePlan(r.Context(), id, st.plan); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "storing plan %q", id))
		return
	}
	s.dropSession(id)
	writeJSON(w, http.StatusOK, map[string]any{"stats": st.plan.Stats()})
}

// handleMoveCancel rewinds to a zero delta and finalizes, which restores
// the pre-session geometry up to id reassignment on the moved columns.
func (s *Server) handleMoveCancel(w http.ResponseWriter, r *http.Request) {
	id := planID(r)

	lock := s.planLock(id)
	lock.Lock()
	defer lock.Unlock()

	st := s.openSession(id)
	if st == nil {
		writeError(w, errors.New(errors.ErrCodeSessionNotFound, "plan %q has no open move session", id))
		return
	}

	st.session.Apply(0, 0)
	st.session.Finalize()
	observability.Engine().OnMoveFinalize(r.Context(), id, time.Since(st.started))

	if err := s.savePlan(r.Context(), id, st.plan); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "storing plan %q", id))
		return
	}
	s.dropSession(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) dropSession(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
