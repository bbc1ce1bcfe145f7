package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/lipsum/internal/ir"
)

const recordExt = ".json"

// FileStore keeps one JSON document per mapping in a directory.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created on
// the first Save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the root directory.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+recordExt)
}

// Save writes rec to <dir>/<id>.json.
func (s *FileStore) Save(ctx context.Context, rec ir.Record) (string, error) {
	if err := ValidateID(rec.ID); err != nil {
		return "", fmt.Errorf("save mapping: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return "", fmt.Errorf("save mapping: %w", err)
	}
	data, err := ir.MarshalRecord(rec)
	if err != nil {
		return "", fmt.Errorf("save mapping %s: %w", rec.ID, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("save mapping %s: create directory: %w", rec.ID, err)
	}
	path := s.path(rec.ID)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("save mapping %s: %w", rec.ID, err)
	}
	return path, nil
}

// Load reads <dir>/<id>.json.
func (s *FileStore) Load(ctx context.Context, id string) (ir.Record, error) {
	if err := ValidateID(id); err != nil {
		return ir.Record{}, fmt.Errorf("load mapping: %w", err)
	}
	data, err := os.ReadFile(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return ir.Record{}, fmt.Errorf("load mapping %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return ir.Record{}, fmt.Errorf("load mapping %s: %w", id, err)
	}

	rec, err := ir.UnmarshalRecord(data)
	if err != nil {
		return ir.Record{}, fmt.Errorf("load mapping %s: %w", id, err)
	}
	// The file name is authoritative.
	rec.ID = id
	return rec, nil
}

func (s *FileStore) Exists(ctx context.Context, id string) (bool, error) {
	if err := ValidateID(id); err != nil {
		return false, fmt.Errorf("check mapping: %w", err)
	}
	_, err := os.Stat(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check mapping %s: %w", id, err)
	}
	return true, nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	if err := ValidateID(id); err != nil {
		return fmt.Errorf("delete mapping: %w", err)
	}
	err := os.Remove(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete mapping %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete mapping %s: %w", id, err)
	}
	return nil
}

// List reads every *.json file with a valid id as its name. A missing
// directory is an empty store.
func (s *FileStore) List(ctx context.Context) ([]ir.Record, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list mappings: %w", err)
	}

	var recs []ir.Record
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, recordExt) {
			continue
		}
		id := strings.TrimSuffix(name, recordExt)
		if ValidateID(id) != nil {
			continue
		}
		rec, err := s.Load(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("list mappings: %w", err)
		}
		recs = append(recs, rec)
	}
	sortRecords(recs)
	return recs, nil
}

// Close is a no-op.
func (s *FileStore) Close() error {
	return nil
}
