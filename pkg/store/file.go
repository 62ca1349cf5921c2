package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/framegrid/framegrid/pkg/errors"
	"github.com/framegrid/framegrid/pkg/plandoc"
)

// FileStore is a file-based plan store for CLI applications.
// Plans are stored as JSON files in a directory, one file per plan id.
type FileStore struct {
	mu  sync.RWMutex
	dir string
}

// DefaultDir returns the default plan directory, ~/.config/framegrid/plans.
// The directory is not created.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "framegrid", "plans"), nil
}

// NewFileStore creates a new file-based plan store.
// If dir is empty, defaults to [DefaultDir].
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create plan dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory plans are stored in.
func (s *FileStore) Dir() string { return s.dir }

// path converts a plan id to a file path. Ids are validated before this
// point, so the join cannot escape the store directory.
func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Get retrieves the document stored under id.
func (s *FileStore) Get(ctx context.Context, id string) (plandoc.Document, error) {
	if err := errors.ValidatePlanID(id); err != nil {
		return plandoc.Document{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(id))
	if os.IsNotExist(err) {
		return plandoc.Document{}, ErrNotFound
	}
	if err != nil {
		return plandoc.Document{}, fmt.Errorf("read plan file: %w", err)
	}
	return plandoc.Unmarshal(data)
}

// Put stores a document under id.
func (s *FileStore) Put(ctx context.Context, id string, doc plandoc.Document) error {
	if err := errors.ValidatePlanID(id); err != nil {
		return err
	}

	doc.ID = id
	data, err := plandoc.Marshal(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path(id), data, 0644); err != nil {
		return fmt.Errorf("write plan file: %w", err)
	}
	return nil
}

// Delete removes the document stored under id.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	if err := errors.ValidatePlanID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove plan file: %w", err)
	}
	return nil
}

// List returns all stored plan ids. Directory entries come back sorted, so
// the listing is already ascending.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read plan dir: %w", err)
	}

	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
