package validation

import (
	"regexp"
	"strings"

	"github.com/srwlli/docaudit/internal/doctype"
	"github.com/srwlli/docaudit/internal/schema"
)

// ArchitectureValidator validates architecture documents: universal metadata
// checks plus the overview, components, and data-flow sections.
type ArchitectureValidator struct {
	baseValidator
}

// NewArchitectureValidator constructs an architecture document validator.
func NewArchitectureValidator(reg *schema.Registry, reader FileReader) (*ArchitectureValidator, error) {
	base, err := newBase(doctype.DocTypeArchitecture, reg, reader)
	if err != nil {
		return nil, err
	}
	return &ArchitectureValidator{baseValidator: base}, nil
}

// APIValidator validates API reference documents.
type APIValidator struct {
	baseValidator
}

// NewAPIValidator constructs an API reference validator.
func NewAPIValidator(reg *schema.Registry, reader FileReader) (*APIValidator, error) {
	base, err := newBase(doctype.DocTypeAPI, reg, reader)
	if err != nil {
		return nil, err
	}
	return &APIValidator{baseValidator: base}, nil
}

// GuideValidator validates usage guides.
type GuideValidator struct {
	baseValidator
}

// NewGuideValidator constructs a guide validator.
func NewGuideValidator(reg *schema.Registry, reader FileReader) (*GuideValidator, error) {
	base, err := newBase(doctype.DocTypeGuide, reg, reader)
	if err != nil {
		return nil, err
	}
	return &GuideValidator{baseValidator: base}, nil
}

// ReadmeValidator validates README documents.
type ReadmeValidator struct {
	baseValidator
}

// NewReadmeValidator constructs a README validator.
func NewReadmeValidator(reg *schema.Registry, reader FileReader) (*ReadmeValidator, error) {
	base, err := newBase(doctype.DocTypeReadme, reg, reader)
	if err != nil {
		return nil, err
	}
	return &ReadmeValidator{baseValidator: base}, nil
}

// ChangelogValidator validates changelog documents. Each release needs a
// version heading so downstream tooling can extract release notes.
type ChangelogValidator struct {
	baseValidator
}

// NewChangelogValidator constructs a changelog validator.
func NewChangelogValidator(reg *schema.Registry, reader FileReader) (*ChangelogValidator, error) {
	base, err := newBase(doctype.DocTypeChangelog, reg, reader)
	if err != nil {
		return nil, err
	}
	v := &ChangelogValidator{baseValidator: base}
	v.specific = v.checkVersionHeadings
	return v, nil
}

var versionHeading = regexp.MustCompile(`^\[?v?\d+\.\d+(\.\d+)?\]?`)

func (v *ChangelogValidator) checkVersionHeadings(doc *Document, res *Result) {
	for _, h := range doc.Headings() {
		if versionHeading.MatchString(strings.TrimSpace(h)) {
			return
		}
	}
	res.Add(SeverityMinor, "", "no version headings found (expected headings like 1.2.0)")
}

// TemplateValidator validates document templates, which must carry at least
// one substitution placeholder.
type TemplateValidator struct {
	baseValidator
}

// NewTemplateValidator constructs a template validator.
func NewTemplateValidator(reg *schema.Registry, reader FileReader) (*TemplateValidator, error) {
	base, err := newBase(doctype.DocTypeTemplate, reg, reader)
	if err != nil {
		return nil, err
	}
	v := &TemplateValidator{baseValidator: base}
	v.specific = v.checkPlaceholders
	return v, nil
}

func (v *TemplateValidator) checkPlaceholders(doc *Document, res *Result) {
	if !strings.Contains(doc.Body, "{{") {
		res.Add(SeverityMinor, "", "template contains no {{placeholder}} markers")
	}
}

// IndexValidator validates directory index documents.
type IndexValidator struct {
	baseValidator
}

// NewIndexValidator constructs an index document validator.
func NewIndexValidator(reg *schema.Registry, reader FileReader) (*IndexValidator, error) {
	base, err := newBase(doctype.DocTypeIndex, reg, reader)
	if err != nil {
		return nil, err
	}
	return &IndexValidator{baseValidator: base}, nil
}

// GeneralValidator is the fallback when no specific type matches. It performs
// only the universal metadata checks.
type GeneralValidator struct {
	baseValidator
}

// NewGeneralValidator constructs the fallback validator.
func NewGeneralValidator(reg *schema.Registry, reader FileReader) (*GeneralValidator, error) {
	base, err := newBase(doctype.DocTypeGeneral, reg, reader)
	if err != nil {
		return nil, err
	}
	return &GeneralValidator{baseValidator: base}, nil
}
