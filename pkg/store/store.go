// Package store persists plan documents in pluggable backends.
//
// This package defines the storage interface for plans, with
// implementations for different deployments:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI applications
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage for document-oriented deployments
//
// # Architecture
//
// Every backend stores the same JSON document encoding produced by
// [plandoc.Marshal], keyed by plan id. The engine never talks to a store
// directly: callers load a document, rebuild the live plan with
// [plandoc.ToPlan], mutate it, and write the re-exported document back.
//
// Plan ids double as storage keys (file names, Redis keys, MongoDB ids),
// so callers validate them with ValidatePlanID from pkg/errors before
// they reach a store.
//
// # Usage
//
// Create a store:
//
//	// Development
//	s := store.NewMemoryStore()
//
//	// CLI
//	s, err := store.NewFileStore("")  // Uses ~/.config/framegrid/plans/
//
//	// Production
//	s, err := store.NewRedisStore(ctx, store.RedisConfig{
//	    Addr: "localhost:6379",
//	})
//
// Wrap it for observability events:
//
//	s = store.Instrument(s, "redis")
//
// Manage plans:
//
//	doc := plandoc.FromPlan(p)
//	if err := s.Put(ctx, "tower", doc); err != nil {
//	    return err
//	}
//
//	doc, err := s.Get(ctx, "tower")
//	if errors.Is(err, store.ErrNotFound) {
//	    // No plan stored under that id
//	}
package store

import (
	"context"
	"errors"

	"github.com/framegrid/framegrid/pkg/plandoc"
)

// ErrNotFound is returned by Get when no plan is stored under the id.
var ErrNotFound = errors.New("plan not found")

// Store is the interface for plan document storage backends.
// Implementations are safe for concurrent use.
type Store interface {
	// Get retrieves the document stored under id.
	// Returns ErrNotFound if no plan is stored there.
	Get(ctx context.Context, id string) (plandoc.Document, error)

	// Put stores a document under id, replacing any existing one. The
	// document's ID field is stamped with id so stored documents are
	// self-describing.
	Put(ctx context.Context, id string, doc plandoc.Document) error

	// Delete removes the document stored under id. Deleting an absent id
	// is a no-op.
	Delete(ctx context.Context, id string) error

	// List returns the ids of all stored plans, sorted ascending.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}
