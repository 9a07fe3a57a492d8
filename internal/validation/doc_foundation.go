package validation

import (
	"github.com/srwlli/docaudit/internal/doctype"
	"github.com/srwlli/docaudit/internal/schema"
)

// FoundationValidator validates per-work-order foundation documents. The
// schema requires a work-item identifier, generator identity, feature
// identifier and type tag, plus an overview section and at least one of the
// architecture/components and API/usage section groups.
type FoundationValidator struct {
	baseValidator
}

// NewFoundationValidator constructs a foundation document validator.
func NewFoundationValidator(reg *schema.Registry, reader FileReader) (*FoundationValidator, error) {
	base, err := newBase(doctype.DocTypeFoundation, reg, reader)
	if err != nil {
		return nil, err
	}
	v := &FoundationValidator{baseValidator: base}
	v.specific = v.checkBody
	return v, nil
}

// checkBody applies foundation-specific semantic rules.
func (v *FoundationValidator) checkBody(doc *Document, res *Result) {
	if doc.Body == "" {
		res.Add(SeverityMajor, "", "document body is empty")
	}
}
