// Package health computes the ecosystem-health score for a document: a
// four-factor composite used for fleet-wide quality dashboards, distinct from
// the per-document compliance score.
package health

import (
	"fmt"
	"strings"
	"time"

	"github.com/srwlli/docaudit/internal/schema"
	"github.com/srwlli/docaudit/internal/validation"
)

// Factor maxima. The composite total is their sum.
const (
	MaxTraceability = 40
	MaxCompleteness = 30
	MaxFreshness    = 20
	MaxValidation   = 10
)

// Score is the four-factor health composite.
type Score struct {
	Traceability int `json:"traceability"`
	Completeness int `json:"completeness"`
	Freshness    int `json:"freshness"`
	Validation   int `json:"validation"`
	Total        int `json:"total"`
}

// Scorer computes health scores against the loaded schema set.
type Scorer struct {
	reg *schema.Registry
	now func() time.Time
}

// NewScorer returns a health scorer backed by the given registry.
func NewScorer(reg *schema.Registry) *Scorer {
	return &Scorer{reg: reg, now: time.Now}
}

// Calculate computes the health score for a parsed document. The valid flag
// is the document's compliance validity from its ValidationResult.
func (s *Scorer) Calculate(doc *validation.Document, valid bool) (*Score, error) {
	base, err := s.reg.Load("document-base")
	if err != nil {
		return nil, fmt.Errorf("loading base schema: %w", err)
	}
	typeSchema, err := s.reg.ForType(doc.Type)
	if err != nil {
		return nil, fmt.Errorf("loading schema for %s: %w", doc.Type, err)
	}

	score := &Score{
		Traceability: s.traceability(doc, base),
		Completeness: s.completeness(doc, typeSchema),
		Freshness:    s.freshness(doc),
	}
	if valid {
		score.Validation = MaxValidation
	}
	score.Total = score.Traceability + score.Completeness + score.Freshness + score.Validation
	return score, nil
}

// traceability scores identifier presence: 20 for a correctly patterned
// work-item identifier, 10 for a feature identifier, 10 for a generator
// identity.
func (s *Scorer) traceability(doc *validation.Document, base *schema.Schema) int {
	points := 0

	if id, ok := doc.Field("workorder_id"); ok {
		re := base.PatternFor("workorder_id")
		if re != nil && re.MatchString(id) {
			points += 20
		}
	}
	if id, ok := doc.Field("feature_id"); ok && id != "" {
		points += 10
	}
	if agent, ok := doc.Field("agent"); ok && agent != "" {
		points += 10
	}
	return points
}

// completeness scores structure: 20 when every required section (or record
// key) is present, 10 when at least one worked example exists.
func (s *Scorer) completeness(doc *validation.Document, typeSchema *schema.Schema) int {
	points := 0

	if doc.Type.IsStructured() {
		if doc.Record != nil && allKeysPresent(doc.Record, typeSchema.Required) {
			points += 20
		}
		if recordHasContent(doc.Record) {
			points += 10
		}
		return points
	}

	if len(typeSchema.MissingSections(doc.Headings())) == 0 {
		points += 20
	}
	if doc.HasExample() {
		points += 10
	}
	return points
}

// freshness scores the declared timestamp field, not the file-system
// modification time.
func (s *Scorer) freshness(doc *validation.Document) int {
	ts, ok := declaredTimestamp(doc)
	if !ok {
		return 0
	}

	age := s.now().Sub(ts)
	switch {
	case age < 7*24*time.Hour:
		return MaxFreshness
	case age < 30*24*time.Hour:
		return 10
	case age < 90*24*time.Hour:
		return 5
	default:
		return 0
	}
}

// timestampFields is the precedence order for the declared timestamp.
var timestampFields = []string{"updated", "date", "timestamp", "started", "created"}

func declaredTimestamp(doc *validation.Document) (time.Time, bool) {
	for _, field := range timestampFields {
		raw, ok := doc.Field(field)
		if !ok || raw == "" {
			continue
		}
		if ts, err := parseTimestamp(raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp: %s", raw)
}

func allKeysPresent(record map[string]any, required []string) bool {
	for _, key := range required {
		if _, ok := record[key]; !ok {
			return false
		}
	}
	return true
}

// recordHasContent reports whether a structured record carries at least one
// substantive entry, the record analogue of a worked example.
func recordHasContent(record map[string]any) bool {
	for _, key := range []string{"entries", "phases", "findings"} {
		if list, ok := record[key].([]any); ok && len(list) > 0 {
			return true
		}
	}
	return false
}
