package store

import (
	"context"
	"slices"
	"sync"

	"github.com/framegrid/framegrid/pkg/plandoc"
)

// MemoryStore is an in-memory store for development and testing.
// Documents are held in their JSON encoding, so callers never share memory
// with the store.
type MemoryStore struct {
	mu    sync.RWMutex
	plans map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{plans: make(map[string][]byte)}
}

// Get retrieves the document stored under id.
func (s *MemoryStore) Get(ctx context.Context, id string) (plandoc.Document, error) {
	s.mu.RLock()
	data, ok := s.plans[id]
	s.mu.RUnlock()

	if !ok {
		return plandoc.Document{}, ErrNotFound
	}
	return plandoc.Unmarshal(data)
}

// Put stores a document under id.
func (s *MemoryStore) Put(ctx context.Context, id string, doc plandoc.Document) error {
	doc.ID = id
	data, err := plandoc.Marshal(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.plans[id] = data
	s.mu.Unlock()
	return nil
}

// Delete removes the document stored under id.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.plans, id)
	s.mu.Unlock()
	return nil
}

// List returns all stored plan ids, sorted ascending.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	ids := make([]string, 0, len(s.plans))
	for id := range s.plans {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	slices.Sort(ids)
	return ids, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close() error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
