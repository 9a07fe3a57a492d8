package schema

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/srwlli/docaudit/internal/doctype"
)

// Registry holds the fully resolved schema set. It is populated once by
// NewRegistry and never mutated afterwards, so concurrent readers need no
// locking. Validators receive the registry by reference at construction.
type Registry struct {
	schemas map[string]*Schema
	records map[doctype.DocType]*jsonschema.Schema
}

// NewRegistry loads every schema the store offers, resolves inheritance, and
// compiles the JSON Schemas for structured-record types. Any failure here is a
// configuration error: it indicates a broken deployment, not a bad document.
func NewRegistry(store Store) (*Registry, error) {
	ids, err := store.List()
	if err != nil {
		return nil, fmt.Errorf("listing schemas: %w", err)
	}

	raw := make(map[string]*Schema, len(ids))
	for _, id := range ids {
		data, err := store.ReadSchema(id)
		if err != nil {
			return nil, err
		}
		s, err := parseSchema(data)
		if err != nil {
			return nil, fmt.Errorf("schema %s: %w", id, err)
		}
		if s.ID != id {
			return nil, fmt.Errorf("schema artifact %s declares mismatched id %q", id, s.ID)
		}
		raw[id] = s
	}

	r := &Registry{
		schemas: make(map[string]*Schema, len(raw)),
		records: make(map[doctype.DocType]*jsonschema.Schema),
	}

	for id := range raw {
		resolved, err := resolve(id, raw, make(map[string]bool))
		if err != nil {
			return nil, err
		}
		if err := resolved.compile(); err != nil {
			return nil, err
		}
		r.schemas[id] = resolved
	}

	compiler := jsonschema.NewCompiler()
	for _, dt := range doctype.All() {
		if !dt.IsStructured() {
			continue
		}
		data, err := store.ReadRecordSchema(string(dt))
		if err != nil {
			return nil, fmt.Errorf("record schema for %s: %w", dt, err)
		}
		url := fmt.Sprintf("docaudit://%s.schema.json", dt)
		if err := compiler.AddResource(url, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("record schema for %s: %w", dt, err)
		}
		compiled, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compiling record schema for %s: %w", dt, err)
		}
		r.records[dt] = compiled
	}

	return r, nil
}

// resolve walks the inheritance chain for id, merging each extension over its
// base. The in-progress set detects cyclic composition, which fails fast.
func resolve(id string, raw map[string]*Schema, inProgress map[string]bool) (*Schema, error) {
	if inProgress[id] {
		return nil, fmt.Errorf("cyclic schema composition detected at %s", id)
	}

	s, ok := raw[id]
	if !ok {
		return nil, fmt.Errorf("schema not found: %s", id)
	}
	if s.Extends == "" {
		return cloneSchema(s), nil
	}

	inProgress[id] = true
	base, err := resolve(s.Extends, raw, inProgress)
	if err != nil {
		return nil, fmt.Errorf("resolving base of %s: %w", id, err)
	}
	delete(inProgress, id)

	return merge(base, s), nil
}

func cloneSchema(s *Schema) *Schema {
	out := &Schema{
		ID:       s.ID,
		Draft:    s.Draft,
		Required: append([]string(nil), s.Required...),
		Sections: append([]Section(nil), s.Sections...),
	}
	out.Properties = make(map[string]Property, len(s.Properties))
	for name, prop := range s.Properties {
		out.Properties[name] = prop
	}
	return out
}

// Load returns the resolved schema for the given identifier.
func (r *Registry) Load(id string) (*Schema, error) {
	s, ok := r.schemas[id]
	if !ok {
		return nil, fmt.Errorf("schema not found: %s", id)
	}
	return s, nil
}

// ForType returns the resolved schema for a document type. Types share their
// schema identifier with their tag.
func (r *Registry) ForType(dt doctype.DocType) (*Schema, error) {
	return r.Load(string(dt))
}

// IDs returns every loaded schema identifier in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.schemas))
	for id := range r.schemas {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Record returns the compiled JSON Schema for a structured-record type.
func (r *Registry) Record(dt doctype.DocType) (*jsonschema.Schema, bool) {
	s, ok := r.records[dt]
	return s, ok
}
