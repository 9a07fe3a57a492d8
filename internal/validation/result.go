package validation

import (
	"fmt"
	"strings"

	"github.com/srwlli/docaudit/internal/doctype"
)

// Issue is a single validation finding. Immutable once created.
type Issue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Field    string   `json:"field,omitempty"`
}

// Error implements the error interface.
func (i *Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(string(i.Severity))
	sb.WriteString(": ")
	if i.Field != "" {
		sb.WriteString(i.Field)
		sb.WriteString(": ")
	}
	sb.WriteString(i.Message)
	return sb.String()
}

// Result is the complete validation outcome for one document.
// Valid is true if and only if Errors contains zero CRITICAL issues; Score is
// always clamped to [0, 100]. WARNING-severity findings are reported as plain
// strings in Warnings rather than as error entries.
type Result struct {
	Valid    bool            `json:"valid"`
	Score    int             `json:"score"`
	DocType  doctype.DocType `json:"doc_type"`
	Errors   []*Issue        `json:"errors"`
	Warnings []string        `json:"warnings"`

	counts map[Severity]int
}

// NewResult returns an empty result for the given document type.
func NewResult(dt doctype.DocType) *Result {
	return &Result{
		Valid:    true,
		Score:    100,
		DocType:  dt,
		Errors:   []*Issue{},
		Warnings: []string{},
		counts:   make(map[Severity]int),
	}
}

// Add records an issue and recomputes the score and validity.
func (r *Result) Add(sev Severity, field, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.counts[sev]++

	if sev == SeverityWarning {
		if field != "" {
			msg = field + ": " + msg
		}
		r.Warnings = append(r.Warnings, msg)
	} else {
		r.Errors = append(r.Errors, &Issue{Severity: sev, Message: msg, Field: field})
	}

	r.Score = ComputeScore(
		r.counts[SeverityCritical],
		r.counts[SeverityMajor],
		r.counts[SeverityMinor],
		r.counts[SeverityWarning],
	)
	r.Valid = r.counts[SeverityCritical] == 0
}

// Count returns how many issues of the given severity were recorded.
func (r *Result) Count(sev Severity) int {
	return r.counts[sev]
}

// HasErrors reports whether any non-warning issue was recorded.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}
