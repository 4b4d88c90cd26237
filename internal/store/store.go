// Package store persists the full todo sequence to a single JSON file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tick/internal/todo"
)

// Store reads and writes the todo sequence at a fixed path. Every save
// replaces the whole file through a temp file and rename in the same
// directory, so a concurrent reader observes either the old or the new
// content, never a partial write. No cross-process locking; last writer
// wins.
type Store struct {
	path   string
	logger *log.Logger
}

// New returns a store backed by the file at path. A nil logger falls
// back to the package default.
func New(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full todo sequence in file order. A missing file is an
// empty store. Malformed or empty JSON is also treated as an empty store
// rather than an error; only genuine I/O failures propagate.
func (s *Store) Load() ([]todo.Item, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("store file missing, starting empty", "path", s.path)
			return []todo.Item{}, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var items []todo.Item
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn("store file is not valid JSON, treating as empty", "path", s.path, "err", err)
		return []todo.Item{}, nil
	}
	if items == nil {
		// The file held JSON null.
		items = []todo.Item{}
	}

	s.logger.Debug("loaded todos", "path", s.path, "count", len(items))
	return items, nil
}

// Save serializes the sequence in the given order and atomically replaces
// the store file. The temp file lives in the target's directory so the
// rename stays on one filesystem, and is removed on every failure path.
func (s *Store) Save(items []todo.Item) error {
	if items == nil {
		items = []todo.Item{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal todos: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".tmp-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	// No-op once the rename has succeeded.
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}

	s.logger.Debug("saved todos", "path", s.path, "count", len(items))
	return nil
}
