// Package schema loads versioned document schemas and resolves their
// composition. Schemas are external configuration artifacts: the engine
// consumes them, it never authors them.
package schema

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Property describes the constraints on a single metadata field.
type Property struct {
	Type        string   `yaml:"type"`                  // string, int, bool, list, map
	Pattern     string   `yaml:"pattern,omitempty"`     // regex for pattern-constrained fields
	Enum        []string `yaml:"enum,omitempty"`        // closed value set
	Description string   `yaml:"description,omitempty"` // human-readable description
}

// Section describes one required document section, matched against markdown
// headings by pattern rather than exact text. When AnyOf is set, any one of
// the listed patterns satisfies the section.
type Section struct {
	Title   string   `yaml:"title"`
	Pattern string   `yaml:"pattern,omitempty"`
	AnyOf   []string `yaml:"any_of,omitempty"`
}

// Schema is a versioned validation schema for one document category.
// Instances are immutable after registry load.
type Schema struct {
	ID         string              `yaml:"id"`
	Draft      int                 `yaml:"draft"`
	Extends    string              `yaml:"extends,omitempty"`
	Required   []string            `yaml:"required"`
	Properties map[string]Property `yaml:"properties"`
	Sections   []Section           `yaml:"sections"`

	patterns map[string]*regexp.Regexp
	sections []compiledSection
}

type compiledSection struct {
	title    string
	patterns []*regexp.Regexp
}

// PatternFor returns the compiled pattern for a field, or nil when the field
// carries no pattern constraint.
func (s *Schema) PatternFor(field string) *regexp.Regexp {
	return s.patterns[field]
}

// parseSchema decodes a schema artifact from YAML.
func parseSchema(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	if s.ID == "" {
		return nil, fmt.Errorf("schema is missing an id")
	}
	return &s, nil
}

// compile resolves the regex constraints of a fully composed schema.
// A pattern that does not compile is a configuration error.
func (s *Schema) compile() error {
	s.patterns = make(map[string]*regexp.Regexp)
	for name, prop := range s.Properties {
		if prop.Pattern == "" {
			continue
		}
		re, err := regexp.Compile(prop.Pattern)
		if err != nil {
			return fmt.Errorf("schema %s: invalid pattern for field %s: %w", s.ID, name, err)
		}
		s.patterns[name] = re
	}

	s.sections = nil
	for _, sec := range s.Sections {
		cs := compiledSection{title: sec.Title}
		raw := sec.AnyOf
		if len(raw) == 0 && sec.Pattern != "" {
			raw = []string{sec.Pattern}
		}
		for _, p := range raw {
			re, err := regexp.Compile(p)
			if err != nil {
				return fmt.Errorf("schema %s: invalid section pattern %q: %w", s.ID, p, err)
			}
			cs.patterns = append(cs.patterns, re)
		}
		if len(cs.patterns) == 0 {
			return fmt.Errorf("schema %s: section %q has no pattern", s.ID, sec.Title)
		}
		s.sections = append(s.sections, cs)
	}
	return nil
}

// MissingSections returns the titles of required sections whose patterns match
// none of the given headings.
func (s *Schema) MissingSections(headings []string) []string {
	var missing []string
	for _, sec := range s.sections {
		found := false
		for _, re := range sec.patterns {
			for _, h := range headings {
				if re.MatchString(h) {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			missing = append(missing, sec.title)
		}
	}
	return missing
}

// HasSections reports whether the schema declares any required sections.
func (s *Schema) HasSections() bool {
	return len(s.sections) > 0
}

// merge composes an extension schema over its resolved base. Required-field
// lists are unioned (base order first), property definitions from the
// extension override the base on key collision.
func merge(base, ext *Schema) *Schema {
	out := &Schema{
		ID:       ext.ID,
		Draft:    ext.Draft,
		Required: make([]string, 0, len(base.Required)+len(ext.Required)),
		Sections: ext.Sections,
	}
	if len(out.Sections) == 0 {
		out.Sections = base.Sections
	}

	seen := make(map[string]bool)
	for _, f := range base.Required {
		if !seen[f] {
			out.Required = append(out.Required, f)
			seen[f] = true
		}
	}
	for _, f := range ext.Required {
		if !seen[f] {
			out.Required = append(out.Required, f)
			seen[f] = true
		}
	}

	out.Properties = make(map[string]Property, len(base.Properties)+len(ext.Properties))
	for name, prop := range base.Properties {
		out.Properties[name] = prop
	}
	for name, prop := range ext.Properties {
		out.Properties[name] = prop
	}

	return out
}
