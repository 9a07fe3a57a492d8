package validation

import (
	"gopkg.in/yaml.v3"

	"github.com/srwlli/docaudit/internal/doctype"
	"github.com/srwlli/docaudit/internal/metadata"
)

// ParseDocument builds a best-effort Document without recording issues. Used
// by callers that need the parsed form outside a validation run, such as the
// health scorer. A malformed metadata block leaves Meta nil; a malformed
// record leaves Record nil.
func ParseDocument(dt doctype.DocType, path string, content []byte) *Document {
	doc := &Document{Path: path, Type: dt}

	if dt.IsStructured() {
		var record map[string]any
		if err := yaml.Unmarshal(content, &record); err == nil {
			doc.Record = record
		}
		return doc
	}

	block, body, err := metadata.Extract(content)
	doc.Body = body
	if err == nil {
		doc.Meta = block
	}
	return doc
}

// Field looks up a metadata field regardless of document shape: the metadata
// block for prose documents, or the record header object for structured
// records.
func (d *Document) Field(key string) (string, bool) {
	if d.Meta != nil {
		if v, ok := d.Meta[key]; ok {
			s, isStr := v.(string)
			return s, isStr
		}
	}
	if d.Record != nil {
		header, ok := d.Record[string(d.Type)].(map[string]any)
		if ok {
			if v, found := header[key]; found {
				s, isStr := v.(string)
				return s, isStr
			}
		}
	}
	return "", false
}
