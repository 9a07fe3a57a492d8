package validation

import (
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/srwlli/docaudit/internal/doctype"
	"github.com/srwlli/docaudit/internal/metadata"
	"github.com/srwlli/docaudit/internal/schema"
)

// Validator validates one category of documentation artifact.
type Validator interface {
	// Type returns the document type this validator handles.
	Type() doctype.DocType
	// ValidateFile validates the document at the given path. Per-document
	// problems are aggregated into the result, never returned as errors.
	ValidateFile(path string) *Result
	// ValidateContent validates already-read content. The path is used for
	// filename conventions and companion lookups only.
	ValidateContent(path string, content []byte) *Result
}

// specificFunc is the subtype hook for body-structure and semantic rules.
type specificFunc func(doc *Document, res *Result)

// baseValidator implements the shared pipeline: read, extract metadata,
// check metadata against the resolved schema, check required sections, then
// invoke the subtype hook.
type baseValidator struct {
	docType  doctype.DocType
	schema   *schema.Schema
	record   *jsonschema.Schema
	reader   FileReader
	specific specificFunc
}

// newBase resolves the schema for a document type. Schema resolution failures
// are configuration errors raised at construction time.
func newBase(dt doctype.DocType, reg *schema.Registry, reader FileReader) (baseValidator, error) {
	s, err := reg.ForType(dt)
	if err != nil {
		return baseValidator{}, err
	}
	b := baseValidator{docType: dt, schema: s, reader: reader}
	if rec, ok := reg.Record(dt); ok {
		b.record = rec
	}
	return b, nil
}

// Type returns the document type.
func (b *baseValidator) Type() doctype.DocType {
	return b.docType
}

// ValidateFile reads and validates the document at path. An unreadable file
// yields a CRITICAL issue and score 0; no further checks are possible.
func (b *baseValidator) ValidateFile(path string) *Result {
	content, err := b.reader.ReadFile(path)
	if err != nil {
		res := NewResult(b.docType)
		res.Add(SeverityCritical, "", "unreadable file: %v", err)
		res.Score = 0
		return res
	}
	return b.ValidateContent(path, content)
}

// ValidateContent runs the validation pipeline on content.
func (b *baseValidator) ValidateContent(path string, content []byte) *Result {
	res := NewResult(b.docType)
	doc := &Document{Path: path, Type: b.docType}

	if b.docType.IsStructured() {
		if !b.parseRecord(doc, content, res) {
			return res
		}
		b.checkRecord(doc, res)
	} else {
		b.parseProse(doc, content, res)
		b.checkMetadata(doc, res)
		b.checkSections(doc, res)
	}

	if b.specific != nil {
		b.specific(doc, res)
	}
	return res
}

// parseProse extracts the leading metadata block. A missing or malformed
// block is CRITICAL, but structural checks on the body still proceed: partial
// validation is more useful than an early abort.
func (b *baseValidator) parseProse(doc *Document, content []byte, res *Result) {
	block, body, err := metadata.Extract(content)
	doc.Body = body
	if err != nil {
		res.Add(SeverityCritical, "", "%v", err)
		return
	}
	doc.Meta = block
}

// checkMetadata validates the metadata block against the resolved schema:
// required fields, value types, enumerations, and pattern constraints.
func (b *baseValidator) checkMetadata(doc *Document, res *Result) {
	if doc.Meta == nil {
		return
	}

	for _, field := range b.schema.Required {
		if !doc.Meta.Has(field) {
			res.Add(SeverityCritical, field, "Missing required field: %s", field)
		}
	}

	names := make([]string, 0, len(b.schema.Properties))
	for name := range b.schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value, ok := doc.Meta[name]
		if !ok {
			continue
		}
		prop := b.schema.Properties[name]

		if !typeMatches(prop.Type, value) {
			res.Add(SeverityMajor, name, "wrong type: expected %s", prop.Type)
			continue
		}

		str, isString := value.(string)
		if !isString {
			continue
		}

		if len(prop.Enum) > 0 && !containsString(prop.Enum, str) {
			res.Add(SeverityMajor, name, "invalid value %q (allowed: %s)", str, joinStrings(prop.Enum))
		}

		if re := b.schema.PatternFor(name); re != nil && !re.MatchString(str) {
			res.Add(SeverityCritical, name, "value %q does not match required format %s", str, re.String())
		}
	}

	// The declared type tag should agree with the dispatched validator.
	if tag := doc.Meta.GetString("doc_type"); tag != "" && tag != string(b.docType) {
		res.Add(SeverityMinor, "doc_type", "declared type %q does not match detected type %q", tag, b.docType)
	}
}

// checkSections verifies the type's required document sections, matched by
// heading pattern rather than exact text.
func (b *baseValidator) checkSections(doc *Document, res *Result) {
	headings := doc.Headings()
	for _, title := range b.schema.MissingSections(headings) {
		res.Add(SeverityMajor, "", "missing required section: %s", title)
	}
}

func typeMatches(expected string, value any) bool {
	switch expected {
	case "", "any":
		return true
	case "string":
		_, ok := value.(string)
		return ok
	case "int":
		switch value.(type) {
		case int, int64:
			return true
		}
		return false
	case "bool":
		_, ok := value.(bool)
		return ok
	case "list":
		_, ok := value.([]any)
		return ok
	case "map":
		_, ok := value.(map[string]any)
		return ok
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func joinStrings(list []string) string {
	out := ""
	for i, s := range list {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
