package schema

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml builtin/*.schema.json
var builtinFS embed.FS

// Store provides schema artifacts by identifier. Implementations must be safe
// for concurrent readers.
type Store interface {
	// ReadSchema returns the raw schema artifact for the given identifier.
	ReadSchema(id string) ([]byte, error)
	// ReadRecordSchema returns the raw JSON Schema for a structured-record
	// type, or an error when the type has none.
	ReadRecordSchema(id string) ([]byte, error)
	// List returns the identifiers of all available schemas.
	List() ([]string, error)
}

// FSStore serves schema artifacts from the embedded defaults, with an
// optional directory whose files override the embedded ones per identifier.
type FSStore struct {
	overrideDir string
}

// NewFSStore returns a store backed by the embedded schema artifacts.
// When overrideDir is non-empty, artifacts found there take precedence.
func NewFSStore(overrideDir string) *FSStore {
	return &FSStore{overrideDir: overrideDir}
}

// ReadSchema implements Store.
func (s *FSStore) ReadSchema(id string) ([]byte, error) {
	return s.read(id + ".yaml")
}

// ReadRecordSchema implements Store.
func (s *FSStore) ReadRecordSchema(id string) ([]byte, error) {
	return s.read(id + ".schema.json")
}

func (s *FSStore) read(name string) ([]byte, error) {
	if s.overrideDir != "" {
		path := filepath.Join(s.overrideDir, name)
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading schema %s: %w", path, err)
		}
	}

	data, err := builtinFS.ReadFile("builtin/" + name)
	if err != nil {
		return nil, fmt.Errorf("schema artifact not found: %s", name)
	}
	return data, nil
}

// List implements Store. Identifiers from the override directory are merged
// with the embedded set.
func (s *FSStore) List() ([]string, error) {
	ids := make(map[string]bool)

	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schemas: %w", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			ids[strings.TrimSuffix(e.Name(), ".yaml")] = true
		}
	}

	if s.overrideDir != "" {
		overrides, err := os.ReadDir(s.overrideDir)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading schema directory %s: %w", s.overrideDir, err)
		}
		for _, e := range overrides {
			if strings.HasSuffix(e.Name(), ".yaml") {
				ids[strings.TrimSuffix(e.Name(), ".yaml")] = true
			}
		}
	}

	out := make([]string, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}
