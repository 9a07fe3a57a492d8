package validation

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// parseRecord decodes a structured-record document. The entire body is the
// record; there is no metadata-block extraction step. Returns false when
// parsing failed and no further checks are feasible.
func (b *baseValidator) parseRecord(doc *Document, content []byte, res *Result) bool {
	var record map[string]any
	if err := yaml.Unmarshal(content, &record); err != nil {
		res.Add(SeverityCritical, "", "failed to parse record: %v", err)
		return false
	}
	if record == nil {
		res.Add(SeverityCritical, "", "record is empty")
		return false
	}
	doc.Record = record
	return true
}

// checkRecord validates a parsed record: required top-level keys from the
// schema artifact, then shape constraints from the compiled JSON Schema.
func (b *baseValidator) checkRecord(doc *Document, res *Result) {
	for _, field := range b.schema.Required {
		if _, ok := doc.Record[field]; !ok {
			res.Add(SeverityCritical, field, "Missing required field: %s", field)
		}
	}

	if b.record == nil {
		return
	}
	if err := b.record.Validate(normalize(doc.Record)); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			reportCauses(ve, res)
		} else {
			res.Add(SeverityMajor, "", "record shape invalid: %v", err)
		}
	}
}

// reportCauses flattens a jsonschema validation error tree into issues.
// Required-key violations at the document root are skipped because the
// registry schema already reported them as CRITICAL.
func reportCauses(ve *jsonschema.ValidationError, res *Result) {
	if len(ve.Causes) == 0 {
		if ve.InstanceLocation == "" && strings.HasPrefix(ve.Message, "missing propert") {
			return
		}
		field := instancePath(ve.InstanceLocation)
		res.Add(SeverityMajor, field, "%s", ve.Message)
		return
	}
	for _, cause := range ve.Causes {
		reportCauses(cause, res)
	}
}

// instancePath converts a JSON pointer like /phases/0/tasks/1/id into the
// dotted form phases[0].tasks[1].id used in issue fields.
func instancePath(ptr string) string {
	if ptr == "" || ptr == "/" {
		return ""
	}
	parts := strings.Split(strings.TrimPrefix(ptr, "/"), "/")
	var sb strings.Builder
	for _, p := range parts {
		if isDigits(p) {
			sb.WriteString("[" + p + "]")
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(".")
		}
		sb.WriteString(p)
	}
	return sb.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// normalize rewrites YAML-decoded values into the shapes the JSON Schema
// library expects: map[string]any keys and no map[any]any.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			key, ok := k.(string)
			if !ok {
				continue
			}
			out[key] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}
