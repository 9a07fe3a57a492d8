package validation

import (
	"fmt"

	"github.com/srwlli/docaudit/internal/doctype"
	"github.com/srwlli/docaudit/internal/schema"
)

// PlanValidator validates implementation plan records. All ten canonical
// top-level keys must be present, and every task identifier across all phases
// must be unique.
type PlanValidator struct {
	baseValidator
}

// NewPlanValidator constructs a plan record validator.
func NewPlanValidator(reg *schema.Registry, reader FileReader) (*PlanValidator, error) {
	base, err := newBase(doctype.DocTypePlan, reg, reader)
	if err != nil {
		return nil, err
	}
	v := &PlanValidator{baseValidator: base}
	v.specific = v.checkTasks
	return v, nil
}

// checkTasks enforces task identifier uniqueness across all phases.
func (v *PlanValidator) checkTasks(doc *Document, res *Result) {
	phases, ok := doc.Record["phases"].([]any)
	if !ok {
		return
	}

	seen := make(map[string]string) // task ID -> first location
	for pi, rawPhase := range phases {
		phase, ok := rawPhase.(map[string]any)
		if !ok {
			continue
		}
		tasks, ok := phase["tasks"].([]any)
		if !ok {
			continue
		}
		for ti, rawTask := range tasks {
			task, ok := rawTask.(map[string]any)
			if !ok {
				continue
			}
			id, ok := task["id"].(string)
			if !ok || id == "" {
				continue
			}
			location := fmt.Sprintf("phases[%d].tasks[%d]", pi, ti)
			if first, dup := seen[id]; dup {
				res.Add(SeverityMajor, location+".id", "duplicate task identifier %s (first declared at %s)", id, first)
				continue
			}
			seen[id] = location
		}
	}
}
