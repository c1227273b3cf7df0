// Package store persists the entry collection as a JSON file on disk.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jsamuelsen/motivation-page/internal/domain"
)

// JSONFile is a flat-file implementation of ports.EntryStore.
// The whole collection lives in one JSON document with "quotes" and
// "poems" arrays.
type JSONFile struct {
	path string
}

// NewJSONFile creates a store backed by the file at path.
// The file is not created until the first Save.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the backing file's path.
func (s *JSONFile) Path() string {
	return s.path
}

// Load reads the collection from disk.
// A missing file yields an empty store; a file that exists but does not
// decode yields domain.ErrCorruptStore.
func (s *JSONFile) Load(ctx context.Context) (*domain.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewStore(), nil
		}
		return nil, domain.NewStoreIOError("read", s.path, err)
	}

	var loaded domain.Store
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, domain.NewCorruptStoreError(s.path, err.Error())
	}

	// Normalize nil slices so downstream code and re-serialization
	// always see arrays.
	if loaded.Quotes == nil {
		loaded.Quotes = make([]domain.Entry, 0)
	}
	if loaded.Poems == nil {
		loaded.Poems = make([]domain.Entry, 0)
	}

	return &loaded, nil
}

// Save writes the collection to disk, creating the containing directory
// if needed and replacing any previous contents.
func (s *JSONFile) Save(ctx context.Context, store *domain.Store) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.NewStoreIOError("mkdir", dir, err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return domain.NewStoreIOError("create", s.path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	// Entries hold user-authored text; keep <, > and & readable in the
	// file instead of \u-escaped.
	enc.SetEscapeHTML(false)

	if err := enc.Encode(store); err != nil {
		f.Close()
		return domain.NewStoreIOError("write", s.path, err)
	}

	if err := f.Close(); err != nil {
		return domain.NewStoreIOError("close", s.path, err)
	}

	return nil
}

// Name identifies the store's health check.
func (s *JSONFile) Name() string {
	return "entry-store"
}

// Check reports whether the backing file is readable and parses.
// A missing file is healthy: the store starts empty.
func (s *JSONFile) Check(ctx context.Context) error {
	if _, err := s.Load(ctx); err != nil {
		return fmt.Errorf("entry store unhealthy: %w", err)
	}
	return nil
}
