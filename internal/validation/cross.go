package validation

import (
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// planFilename is the canonical name of a companion plan document.
const planFilename = "plan.yaml"

// CrossValidator checks referential integrity between a document and a
// companion document that owns the referenced identifiers. It re-reads the
// companion on demand; nothing is cached across calls.
type CrossValidator struct {
	reader FileReader
}

// NewCrossValidator returns a cross-document validator using the given
// byte-read capability.
func NewCrossValidator(reader FileReader) *CrossValidator {
	return &CrossValidator{reader: reader}
}

// CheckTaskRefs confirms that every referenced task identifier exists in the
// companion plan. A missing companion degrades to a single WARNING: the plan
// may legitimately not exist yet. A reference absent from a found companion
// is MAJOR.
func (c *CrossValidator) CheckTaskRefs(docPath, planPath string, refs []string, res *Result) {
	resolved := c.locatePlan(docPath, planPath)
	if resolved == "" {
		res.Add(SeverityWarning, "", "companion plan not found; task references not checked")
		return
	}

	taskIDs, err := c.planTaskIDs(resolved)
	if err != nil {
		res.Add(SeverityWarning, "", "companion plan %s could not be parsed; task references not checked", filepath.Base(resolved))
		return
	}

	for _, ref := range refs {
		if !taskIDs[ref] {
			res.Add(SeverityMajor, "task_id", "Unknown task identifier reference: %s", ref)
		}
	}
}

// locatePlan resolves the companion plan path: an explicit declared path
// first, then plan.yaml in the document's directory, then its parent.
func (c *CrossValidator) locatePlan(docPath, declared string) string {
	dir := filepath.Dir(docPath)

	candidates := []string{}
	if declared != "" {
		if filepath.IsAbs(declared) {
			candidates = append(candidates, declared)
		} else {
			candidates = append(candidates, filepath.Join(dir, declared))
		}
	}
	candidates = append(candidates,
		filepath.Join(dir, planFilename),
		filepath.Join(filepath.Dir(dir), planFilename),
	)

	for _, path := range candidates {
		if _, err := c.reader.ReadFile(path); err == nil {
			return path
		}
	}
	return ""
}

// planTaskIDs extracts the set of task identifiers a plan owns.
func (c *CrossValidator) planTaskIDs(path string) (map[string]bool, error) {
	data, err := c.reader.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var plan struct {
		Phases []struct {
			Tasks []struct {
				ID string `yaml:"id"`
			} `yaml:"tasks"`
		} `yaml:"phases"`
	}
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, err
	}

	ids := make(map[string]bool)
	for _, phase := range plan.Phases {
		for _, task := range phase.Tasks {
			if task.ID != "" {
				ids[task.ID] = true
			}
		}
	}
	return ids, nil
}
