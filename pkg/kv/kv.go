// Package kv is a small file-backed key-value store of strings. It backs
// the anonymous watchlist and the authenticated-mode backup mirror.
package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is a synchronous string key-value store.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// FileStore persists entries as a single JSON document, rewritten
// atomically on every mutation. Contents are small (a user-scale
// watchlist and a couple of preferences).
type FileStore struct {
	mu      sync.Mutex
	path    string
	entries map[string]string
}

var _ Store = (*FileStore)(nil)

// NewFileStore opens or creates the store at path.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		entries: make(map[string]string),
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	if len(b) > 0 {
		if err := json.Unmarshal(b, &s.entries); err != nil {
			return nil, fmt.Errorf("failed to parse local store: %w", err)
		}
	}

	return s, nil
}

// Get returns the value stored under key.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	return v, ok
}

// Set stores value under key.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return s.flush()
}

// Remove deletes key. Removing a missing key is not an error.
func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		return nil
	}
	delete(s.entries, key)
	return s.flush()
}

// flush rewrites the backing file. Callers must hold mu.
func (s *FileStore) flush() error {
	b, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("failed to encode local store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create local store directory: %w", err)
	}
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("failed to write local store: %w", err)
	}

	return os.Rename(tmp, s.path)
}
