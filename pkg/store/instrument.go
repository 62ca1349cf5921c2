package store

import (
	"context"
	"time"

	"github.com/framegrid/framegrid/pkg/observability"
	"github.com/framegrid/framegrid/pkg/plandoc"
)

// InstrumentedStore wraps a Store and emits observability events for every
// document operation. The backend label names the wrapped implementation
// in the emitted events.
type InstrumentedStore struct {
	inner   Store
	backend string
}

// Instrument wraps a store with observability instrumentation.
// Wrap once at startup, after choosing the backend:
//
//	s := store.Instrument(store.NewMemoryStore(), "memory")
func Instrument(inner Store, backend string) *InstrumentedStore {
	return &InstrumentedStore{inner: inner, backend: backend}
}

// Get retrieves the document stored under id and records the lookup.
func (s *InstrumentedStore) Get(ctx context.Context, id string) (plandoc.Document, error) {
	start := time.Now()
	doc, err := s.inner.Get(ctx, id)
	observability.Store().OnStoreGet(ctx, s.backend, id, err == nil, time.Since(start))
	return doc, err
}

// Put stores a document under id and records the write with its encoded
// size.
func (s *InstrumentedStore) Put(ctx context.Context, id string, doc plandoc.Document) error {
	start := time.Now()
	err := s.inner.Put(ctx, id, doc)

	size := 0
	if data, merr := plandoc.Marshal(doc); merr == nil {
		size = len(data)
	}
	observability.Store().OnStorePut(ctx, s.backend, id, size, time.Since(start))
	return err
}

// Delete removes the document stored under id and records the removal.
func (s *InstrumentedStore) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.inner.Delete(ctx, id)
	observability.Store().OnStoreDelete(ctx, s.backend, id, time.Since(start))
	return err
}

// List returns all stored plan ids.
func (s *InstrumentedStore) List(ctx context.Context) ([]string, error) {
	return s.inner.List(ctx)
}

// Close releases the wrapped store's resources.
func (s *InstrumentedStore) Close() error { return s.inner.Close() }

// Ensure InstrumentedStore implements Store.
var _ Store = (*InstrumentedStore)(nil)
