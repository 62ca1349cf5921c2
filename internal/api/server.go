package api

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/framegrid/framegrid/pkg/buildinfo"
	"github.com/framegrid/framegrid/pkg/errors"
	"github.com/framegrid/framegrid/pkg/observability"
	"github.com/framegrid/framegrid/pkg/plan"
	"github.com/framegrid/framegrid/pkg/plandoc"
	"github.com/framegrid/framegrid/pkg/store"
)

// Server serves the plan API over a [store.Store]. Create one with
// [NewServer]; the zero value is not usable.
type Server struct {
	store  store.Store
	logger *log.Logger

	mu       sync.Mutex
	locks    map[string]*sync.Mutex
	sessions map[string]*moveState
}

// NewServer wires a server over the given store. A nil logger silences
// request logging.
func NewServer(st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		store:    st,
		logger:   logger,
		locks:    make(map[string]*sync.Mutex),
		sessions: make(map[string]*moveState),
	}
}

// Router builds the chi handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimid.RequestID)
	r.Use(chimid.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1/plans", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)

		r.Route("/{plan}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Put("/", s.handlePut)
			r.Delete("/", s.handleDelete)

			r.Get("/stats", s.handleStats)
			r.Get("/validate", s.handleValidate)
			r.Post("/enforce", s.handleEnforce)
			r.Post("/grid", s.handleGrid)
			r.Post("/links", s.handleLink)
			r.Get("/beams/{beam}/segments", s.handleSegments)

			r.Get("/render/svg", s.handleRenderSVG)
			r.Get("/render/dot", s.handleRenderDOT)

			r.Route("/move", func(r chi.Router) {
				r.Get("/", s.handleMoveGet)
				r.Post("/", s.handleMoveStart)
				r.Post("/pointer", s.handleMovePointer)
				r.Post("/finalize", s.handleMoveFinalize)
				r.Delete("/", s.handleMoveCancel)
			})
		})
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then drains
// in-flight requests for up to five seconds.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.logger.Info("listening", "addr", addr, "version", buildinfo.Version)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := chimid.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)

		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"elapsed", elapsed.Round(time.Millisecond),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// planLock returns the mutex serializing mutations of one plan id.
func (s *Server) planLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// openSession returns the move session pinned for the plan, or nil. The
// caller must hold the plan lock if it intends to act on the answer.
func (s *Server) openSession(id string) *moveState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id]
}

// loadPlan fetches the stored document and rebuilds the live plan.
func (s *Server) loadPlan(ctx context.Context, id string) (*plan.Plan, error) {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := plandoc.ToPlan(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "stored plan %q is corrupt", id)
	}
	return p, nil
}

func (s *Server) savePlan(ctx context.Context, id string, p *plan.Plan) error {
	return s.store.Put(ctx, id, plandoc.FromPlan(p))
}

// guardMutation rejects mutations while a move session holds the plan.
func (s *Server) guardMutation(w http.ResponseWriter, id string) bool {
	if s.openSession(id) != nil {
		writeError(w, errors.New(errors.ErrCodeConflict, "plan %q has an open move session", id))
		return false
	}
	return true
}
