package validation

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/srwlli/docaudit/internal/doctype"
	"github.com/srwlli/docaudit/internal/metadata"
	"github.com/srwlli/docaudit/internal/schema"
)

// knownFilenames maps fixed document names to their types. Checked first,
// before any pattern.
var knownFilenames = map[string]doctype.DocType{
	"readme.md":          doctype.DocTypeReadme,
	"changelog.md":       doctype.DocTypeChangelog,
	"foundation.md":      doctype.DocTypeFoundation,
	"architecture.md":    doctype.DocTypeArchitecture,
	"index.md":           doctype.DocTypeIndex,
	"_index.md":          doctype.DocTypeIndex,
	"plan.yaml":          doctype.DocTypePlan,
	"plan.yml":           doctype.DocTypePlan,
	"execution-log.yaml": doctype.DocTypeExecution,
	"execution-log.yml":  doctype.DocTypeExecution,
	"analysis.yaml":      doctype.DocTypeAnalysis,
	"analysis.yml":       doctype.DocTypeAnalysis,
}

// PathRule maps a path pattern to a document type. Rules are tried in order,
// most specific first; the first match wins. The order is explicit
// configuration, not an implicit scan order.
type PathRule struct {
	Name    string
	Pattern *regexp.Regexp
	Type    doctype.DocType
}

// defaultPathRules is the ordered priority list for path-based detection.
func defaultPathRules() []PathRule {
	return []PathRule{
		{"workorder execution log", regexp.MustCompile(`(?i)workorder/.*execution.*\.ya?ml$`), doctype.DocTypeExecution},
		{"workorder plan", regexp.MustCompile(`(?i)workorder/.*plan.*\.ya?ml$`), doctype.DocTypePlan},
		{"execution log", regexp.MustCompile(`(?i)execution[^/]*\.ya?ml$`), doctype.DocTypeExecution},
		{"analysis record", regexp.MustCompile(`(?i)analysis[^/]*\.ya?ml$`), doctype.DocTypeAnalysis},
		{"component directory", regexp.MustCompile(`(?i)components?/[^/]+\.md$`), doctype.DocTypeComponent},
		{"component reference sheet", regexp.MustCompile(`(?i)-reference(-sheet)?\.md$`), doctype.DocTypeComponent},
		{"foundation directory", regexp.MustCompile(`(?i)foundations?/[^/]+\.md$`), doctype.DocTypeFoundation},
		{"api reference", regexp.MustCompile(`(?i)api/[^/]+\.md$`), doctype.DocTypeAPI},
		{"guide directory", regexp.MustCompile(`(?i)guides?/[^/]+\.md$`), doctype.DocTypeGuide},
		{"template directory", regexp.MustCompile(`(?i)templates?/[^/]+\.md$`), doctype.DocTypeTemplate},
		{"architecture document", regexp.MustCompile(`(?i)architecture[^/]*\.md$`), doctype.DocTypeArchitecture},
	}
}

// Factory selects the correct specialized validator for a path and optional
// content. Detection is deterministic: the same input always resolves to the
// same validator type.
type Factory struct {
	validators map[doctype.DocType]Validator
	rules      []PathRule
}

// NewFactory builds the dispatch table, constructing one validator per
// document type against the given registry.
func NewFactory(reg *schema.Registry, reader FileReader) (*Factory, error) {
	f := &Factory{
		validators: make(map[doctype.DocType]Validator),
		rules:      defaultPathRules(),
	}

	constructors := map[doctype.DocType]func(*schema.Registry, FileReader) (Validator, error){
		doctype.DocTypeFoundation:   func(r *schema.Registry, fr FileReader) (Validator, error) { return NewFoundationValidator(r, fr) },
		doctype.DocTypeComponent:    func(r *schema.Registry, fr FileReader) (Validator, error) { return NewComponentValidator(r, fr) },
		doctype.DocTypeExecution:    func(r *schema.Registry, fr FileReader) (Validator, error) { return NewExecutionValidator(r, fr) },
		doctype.DocTypePlan:         func(r *schema.Registry, fr FileReader) (Validator, error) { return NewPlanValidator(r, fr) },
		doctype.DocTypeAnalysis:     func(r *schema.Registry, fr FileReader) (Validator, error) { return NewAnalysisValidator(r, fr) },
		doctype.DocTypeArchitecture: func(r *schema.Registry, fr FileReader) (Validator, error) { return NewArchitectureValidator(r, fr) },
		doctype.DocTypeAPI:          func(r *schema.Registry, fr FileReader) (Validator, error) { return NewAPIValidator(r, fr) },
		doctype.DocTypeGuide:        func(r *schema.Registry, fr FileReader) (Validator, error) { return NewGuideValidator(r, fr) },
		doctype.DocTypeReadme:       func(r *schema.Registry, fr FileReader) (Validator, error) { return NewReadmeValidator(r, fr) },
		doctype.DocTypeChangelog:    func(r *schema.Registry, fr FileReader) (Validator, error) { return NewChangelogValidator(r, fr) },
		doctype.DocTypeTemplate:     func(r *schema.Registry, fr FileReader) (Validator, error) { return NewTemplateValidator(r, fr) },
		doctype.DocTypeIndex:        func(r *schema.Registry, fr FileReader) (Validator, error) { return NewIndexValidator(r, fr) },
		doctype.DocTypeGeneral:      func(r *schema.Registry, fr FileReader) (Validator, error) { return NewGeneralValidator(r, fr) },
	}

	for dt, construct := range constructors {
		v, err := construct(reg, reader)
		if err != nil {
			return nil, fmt.Errorf("constructing %s validator: %w", dt, err)
		}
		f.validators[dt] = v
	}
	return f, nil
}

// ForType returns the validator for an explicitly requested type.
func (f *Factory) ForType(dt doctype.DocType) (Validator, error) {
	v, ok := f.validators[dt]
	if !ok {
		return nil, fmt.Errorf("no validator for document type: %s", dt)
	}
	return v, nil
}

// ValidatorFor resolves the validator for a path and optional content using
// the ordered detection steps: exact filename, path patterns, metadata
// sniffing, then the general fallback.
func (f *Factory) ValidatorFor(path string, content []byte) Validator {
	return f.validators[f.DetectType(path, content)]
}

// DetectType resolves the document type for a path and optional content.
func (f *Factory) DetectType(path string, content []byte) doctype.DocType {
	name := strings.ToLower(filepath.Base(path))
	if dt, ok := knownFilenames[name]; ok {
		return dt
	}

	normalized := filepath.ToSlash(path)
	for _, rule := range f.rules {
		if rule.Pattern.MatchString(normalized) {
			return rule.Type
		}
	}

	if dt, ok := sniffMetadata(content); ok {
		return dt
	}

	return doctype.DocTypeGeneral
}

// sniffMetadata inspects a document's metadata block for type hints: an
// explicit doc_type tag first, then characteristic field combinations.
func sniffMetadata(content []byte) (doctype.DocType, bool) {
	if len(content) == 0 {
		return "", false
	}
	block, _, err := metadata.Extract(content)
	if err != nil {
		return "", false
	}

	if tag := block.GetString("doc_type"); tag != "" {
		if dt, err := doctype.Parse(tag); err == nil {
			return dt, true
		}
	}

	// An agent plus a task classification implies a component reference sheet.
	if block.Has("agent") && block.Has("task") {
		return doctype.DocTypeComponent, true
	}
	// A work-item identifier plus a feature identifier implies a foundation doc.
	if block.Has("workorder_id") && block.Has("feature_id") {
		return doctype.DocTypeFoundation, true
	}

	return "", false
}
