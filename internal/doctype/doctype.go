// Package doctype defines the closed set of document types recognized by the
// validation engine. Every supported type appears here so the factory's
// dispatch behavior stays enumerable and testable.
package doctype

import "fmt"

// DocType identifies the category of a documentation artifact.
type DocType string

const (
	// DocTypeFoundation represents foundation documents produced per work order.
	DocTypeFoundation DocType = "foundation"
	// DocTypeComponent represents component reference sheets.
	DocTypeComponent DocType = "component"
	// DocTypeExecution represents execution log records (structured YAML).
	DocTypeExecution DocType = "execution"
	// DocTypePlan represents implementation plan records (structured YAML).
	DocTypePlan DocType = "plan"
	// DocTypeAnalysis represents cross-artifact analysis records (structured YAML).
	DocTypeAnalysis DocType = "analysis"
	// DocTypeArchitecture represents architecture documents.
	DocTypeArchitecture DocType = "architecture"
	// DocTypeAPI represents API reference documents.
	DocTypeAPI DocType = "api"
	// DocTypeGuide represents usage guides and how-tos.
	DocTypeGuide DocType = "guide"
	// DocTypeReadme represents README files.
	DocTypeReadme DocType = "readme"
	// DocTypeChangelog represents changelog files.
	DocTypeChangelog DocType = "changelog"
	// DocTypeTemplate represents document templates.
	DocTypeTemplate DocType = "template"
	// DocTypeIndex represents directory index documents.
	DocTypeIndex DocType = "index"
	// DocTypeGeneral is the fallback when no specific type matches.
	DocTypeGeneral DocType = "general"
)

// All returns every recognized document type, the general fallback last.
func All() []DocType {
	return []DocType{
		DocTypeFoundation,
		DocTypeComponent,
		DocTypeExecution,
		DocTypePlan,
		DocTypeAnalysis,
		DocTypeArchitecture,
		DocTypeAPI,
		DocTypeGuide,
		DocTypeReadme,
		DocTypeChangelog,
		DocTypeTemplate,
		DocTypeIndex,
		DocTypeGeneral,
	}
}

// Parse converts a string into a DocType.
func Parse(s string) (DocType, error) {
	for _, dt := range All() {
		if string(dt) == s {
			return dt, nil
		}
	}
	return "", fmt.Errorf("invalid document type: %s (valid types: %s)", s, validTypeList())
}

// IsStructured reports whether documents of this type are parsed entirely as
// structured data rather than frontmatter plus prose.
func (d DocType) IsStructured() bool {
	switch d {
	case DocTypeExecution, DocTypePlan, DocTypeAnalysis:
		return true
	}
	return false
}

func validTypeList() string {
	list := ""
	for i, dt := range All() {
		if i > 0 {
			list += ", "
		}
		list += string(dt)
	}
	return list
}
