package validation

import (
	"github.com/srwlli/docaudit/internal/doctype"
	"github.com/srwlli/docaudit/internal/schema"
)

// ExecutionValidator validates execution log records. Task entries reference
// identifiers owned by a companion plan document, so execution records are
// eligible for cross-validation.
type ExecutionValidator struct {
	baseValidator
	cross *CrossValidator
}

// NewExecutionValidator constructs an execution record validator.
func NewExecutionValidator(reg *schema.Registry, reader FileReader) (*ExecutionValidator, error) {
	base, err := newBase(doctype.DocTypeExecution, reg, reader)
	if err != nil {
		return nil, err
	}
	v := &ExecutionValidator{
		baseValidator: base,
		cross:         NewCrossValidator(reader),
	}
	v.specific = v.checkEntries
	return v, nil
}

func (v *ExecutionValidator) checkEntries(doc *Document, res *Result) {
	refs := v.taskRefs(doc)
	if len(refs) == 0 {
		return
	}
	// Content-only validation has no location to search for a companion.
	if doc.Path == "" {
		return
	}
	v.cross.CheckTaskRefs(doc.Path, v.declaredPlanPath(doc), refs, res)
}

// taskRefs collects the task identifiers referenced by the record's entries.
func (v *ExecutionValidator) taskRefs(doc *Document) []string {
	entries, ok := doc.Record["entries"].([]any)
	if !ok {
		return nil
	}

	var refs []string
	seen := make(map[string]bool)
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		id, ok := entry["task_id"].(string)
		if !ok || id == "" || seen[id] {
			continue
		}
		seen[id] = true
		refs = append(refs, id)
	}
	return refs
}

// declaredPlanPath returns the plan path the record declares, if any.
func (v *ExecutionValidator) declaredPlanPath(doc *Document) string {
	header, ok := doc.Record["execution"].(map[string]any)
	if !ok {
		return ""
	}
	path, _ := header["plan_path"].(string)
	return path
}
