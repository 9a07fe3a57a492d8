package validation

import (
	"github.com/srwlli/docaudit/internal/doctype"
	"github.com/srwlli/docaudit/internal/schema"
)

// AnalysisValidator validates cross-artifact analysis records.
type AnalysisValidator struct {
	baseValidator
}

// NewAnalysisValidator constructs an analysis record validator.
func NewAnalysisValidator(reg *schema.Registry, reader FileReader) (*AnalysisValidator, error) {
	base, err := newBase(doctype.DocTypeAnalysis, reg, reader)
	if err != nil {
		return nil, err
	}
	v := &AnalysisValidator{baseValidator: base}
	v.specific = v.checkConsistency
	return v, nil
}

// checkConsistency flags a PASS status carried alongside CRITICAL findings.
func (v *AnalysisValidator) checkConsistency(doc *Document, res *Result) {
	summary, ok := doc.Record["summary"].(map[string]any)
	if !ok {
		return
	}
	status, _ := summary["overall_status"].(string)
	if status != "PASS" {
		return
	}

	findings, ok := doc.Record["findings"].([]any)
	if !ok {
		return
	}
	for _, raw := range findings {
		finding, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if sev, _ := finding["severity"].(string); sev == "CRITICAL" {
			res.Add(SeverityMajor, "summary.overall_status", "overall_status is PASS but findings include CRITICAL entries")
			return
		}
	}
}
