package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"ecocycle/internal/models"
)

var (
	// ErrCorrupt marks a document that could not be parsed from disk.
	ErrCorrupt = errors.New("stored document is corrupt")
	// ErrWrite marks a failed save; the previous on-disk document is intact.
	ErrWrite = errors.New("could not write document")
)

// Store owns the persisted document. Update runs a full load-mutate-save
// cycle inside a single critical section, so concurrent operations never
// interleave mid-write; between completed operations the last writer wins.
type Store interface {
	Load() (*models.Document, error)
	Update(mutate func(doc *models.Document) error) error
}

// FileStore keeps the document in a single JSON file on disk.
type FileStore struct {
	path string
	mu   sync.RWMutex
}

// NewFileStore opens the store at path, seeding an empty document with the
// placeholder admin record if no file exists yet.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.write(models.NewDocument()); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return s, nil
}

func (s *FileStore) Load() (*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read()
}

// Update loads the document, applies mutate, and saves the result. A
// mutate error aborts the cycle without saving, leaving the store unchanged.
func (s *FileStore) Update(mutate func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := mutate(doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *FileStore) read() (*models.Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if doc.Users == nil {
		doc.Users = map[string]models.User{}
	}
	return &doc, nil
}

// write replaces the document atomically: serialize to a temporary file in
// the same directory, sync it, then rename it over the target. A crash at
// any point leaves either the old or the new document, never a truncated one.
func (s *FileStore) write(doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temporary file: %v", ErrWrite, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: writing temporary file: %v", ErrWrite, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: syncing temporary file: %v", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: closing temporary file: %v", ErrWrite, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: renaming document into place: %v", ErrWrite, err)
	}
	return nil
}
